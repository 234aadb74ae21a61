package processor

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/pkg/logger"
	"github.com/kako-jun/photo-returns/pkg/naming"
	"github.com/kako-jun/photo-returns/pkg/orientation"
)

// CopyAll 把已解析的记录复制到目标日期层级
// 先按记录顺序预定目标路径，让冲突计数与扫描顺序一致，
// 之后的字节复制才交给工作池并行执行。
// 单个文件失败只记入错误列表，不影响其他文件；失败的记录保留
// 在切片里，NewPath 为空，只有计数和错误列表反映失败。
func (p *Processor) CopyAll(records []*internal.MediaRecord) []string {
	if len(records) == 0 {
		return nil
	}

	dests := p.reservePaths(records)

	var (
		mu   sync.Mutex
		errs []string
	)

	process := func(i int) {
		rec := records[i]
		if err := p.copyOne(rec, dests[i]); err != nil {
			logger.Get().Error().Err(err).Str("file", rec.OriginalPath).Msg("复制文件失败")
			mu.Lock()
			errs = append(errs, fmt.Sprintf("%s: %v", rec.OriginalPath, err))
			mu.Unlock()
		}
	}

	if p.opts.Parallel && len(records) > 1 {
		pool, err := ants.NewPool(p.opts.Workers)
		if err != nil {
			return []string{fmt.Sprintf("创建 goroutine 池失败: %v", err)}
		}
		defer pool.Release()

		var wg sync.WaitGroup
		for i := range records {
			i := i
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				process(i)
			}); err != nil {
				wg.Done()
				mu.Lock()
				errs = append(errs, fmt.Sprintf("%s: 提交复制任务失败: %v", records[i].OriginalPath, err))
				mu.Unlock()
			}
		}
		wg.Wait()
	} else {
		for i := range records {
			process(i)
		}
	}

	// 成功复制的记录在 copyOne 里写入了 NewPath
	for _, rec := range records {
		if rec.NewPath != "" {
			p.Stats.ProcessedFiles++
			if p.Stats.ProcessedFiles%10 == 0 || p.Stats.ProcessedFiles == p.Stats.TotalFiles {
				logger.Progress(p.Stats.ProcessedFiles, p.Stats.TotalFiles, "复制进度")
			}
		}
	}
	p.Stats.Errors = len(errs)

	return errs
}

// reservePaths 按顺序为每条记录确定最终目标路径
// 目标已存在（磁盘上或本批次内）时从 _01 起追加冲突计数
func (p *Processor) reservePaths(records []*internal.MediaRecord) []string {
	claimed := make(map[string]struct{}, len(records))
	dests := make([]string, len(records))

	for i, rec := range records {
		dir := naming.HierarchyDir(p.opts.OutputDir, rec.DateTaken)
		base := filepath.Join(dir, rec.NewName)

		dst := base
		counter := 0
		for {
			if _, taken := claimed[dst]; !taken {
				if exists, _ := afero.Exists(p.fs, dst); !exists {
					break
				}
			}
			counter++
			dst = naming.WithCounter(base, counter)
		}

		if counter > 0 {
			logger.Get().Debug().
				Str("original_path", base).
				Str("new_path", dst).
				Msg("文件名冲突，追加计数后缀")
		}

		claimed[dst] = struct{}{}
		dests[i] = dst
	}

	return dests
}

// copyOne 复制单条记录：可选备份、建目录、带哈希复制、可选转正
func (p *Processor) copyOne(rec *internal.MediaRecord, dst string) error {
	if p.opts.BackupDir != "" {
		if err := p.backup(rec); err != nil {
			return fmt.Errorf("备份原始文件失败: %w", err)
		}
	}

	if err := p.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("创建目标目录失败: %w", err)
	}

	hashStr, err := p.copyFile(rec.OriginalPath, dst)
	if err != nil {
		return fmt.Errorf("复制文件失败: %w", err)
	}
	rec.Hash = hashStr
	rec.NewPath = dst

	if p.opts.AutoCorrectOrientation && rec.MediaType == internal.MediaPhoto &&
		rec.Orientation != nil && *rec.Orientation != 1 {
		rotated, err := orientation.CorrectFile(dst)
		if err != nil {
			// 转正失败不算复制失败，文件本身已经就位
			logger.Get().Warn().Err(err).Str("file", dst).Msg("自动转正失败")
		} else {
			rec.RotationApplied = rotated
		}
	}

	logger.Get().Debug().
		Str("source", rec.OriginalPath).
		Str("destination", dst).
		Str("hash", hashStr).
		Msg("文件复制完成")

	return nil
}

// backup 把原始文件平铺复制到备份目录，同名文件直接覆盖
func (p *Processor) backup(rec *internal.MediaRecord) error {
	if err := p.fs.MkdirAll(p.opts.BackupDir, 0755); err != nil {
		return err
	}
	_, err := p.copyFile(rec.OriginalPath, filepath.Join(p.opts.BackupDir, rec.FileName))
	return err
}

// copyFile 复制字节流并在同一遍中计算 xxHash
func (p *Processor) copyFile(src, dst string) (string, error) {
	in, err := p.fs.Open(src)
	if err != nil {
		return "", fmt.Errorf("打开源文件失败: %w", err)
	}
	defer in.Close()

	out, err := p.fs.Create(dst)
	if err != nil {
		return "", fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer out.Close()

	h := xxhash.New()
	if _, err := io.Copy(out, io.TeeReader(in, h)); err != nil {
		return "", fmt.Errorf("复制文件内容失败: %w", err)
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}
