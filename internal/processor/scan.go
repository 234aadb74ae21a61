package processor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/pkg/burst"
	"github.com/kako-jun/photo-returns/pkg/logger"
	"github.com/kako-jun/photo-returns/pkg/metadata"
	"github.com/kako-jun/photo-returns/pkg/naming"
	"github.com/kako-jun/photo-returns/pkg/scanner"
)

// Scan 扫描源目录并为每个文件解析拍摄时间
// 解析阶段在工作池中并行执行，每个任务只写自己的切片槽位，
// 汇合后压缩、按拍摄时间排序，再做连拍检测和命名。
func (p *Processor) Scan(sourceDir string) ([]*internal.MediaRecord, error) {
	walker := scanner.NewFileWalker(p.opts.IncludeVideos)
	entries, err := walker.Scan(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("扫描源目录失败: %w", err)
	}

	p.Stats.TotalFiles = len(entries)
	logger.Get().Info().
		Int("count", len(entries)).
		Str("dir", sourceDir).
		Msg("扫描到媒体文件")

	records := make([]*internal.MediaRecord, len(entries))

	if p.opts.Parallel && len(entries) > 1 {
		pool, err := ants.NewPool(p.opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("创建 goroutine 池失败: %w", err)
		}
		defer pool.Release()

		var wg sync.WaitGroup
		for i, entry := range entries {
			i, entry := i, entry
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				if rec, ok := metadata.Resolve(entry.Path, entry.MediaType); ok {
					records[i] = rec
				}
			}); err != nil {
				wg.Done()
				logger.Get().Error().Err(err).Str("file", entry.Path).Msg("提交解析任务失败")
			}
		}
		wg.Wait()
	} else {
		for i, entry := range entries {
			if rec, ok := metadata.Resolve(entry.Path, entry.MediaType); ok {
				records[i] = rec
			}
		}
	}

	resolved := make([]*internal.MediaRecord, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			resolved = append(resolved, rec)
		}
	}

	// 按拍摄时间排序，时间相同时按原始路径保证顺序稳定
	sort.SliceStable(resolved, func(a, b int) bool {
		ta, tb := resolved[a].TakenAt(), resolved[b].TakenAt()
		if ta.Equal(tb) {
			return resolved[a].OriginalPath < resolved[b].OriginalPath
		}
		return ta.Before(tb)
	})

	p.annotateBursts(resolved)

	for _, rec := range resolved {
		rec.NewName = naming.FileName(rec.DateTaken, rec.SubSecond, rec.BurstIndex, rec.OriginalPath)
	}

	logger.Get().Info().
		Int("resolved", len(resolved)).
		Int("skipped", len(entries)-len(resolved)).
		Msg("拍摄时间解析完成")

	return resolved, nil
}

// annotateBursts 在时间有序的记录上做连拍检测并回填分组信息
// 组内序号从 1 开始
func (p *Processor) annotateBursts(records []*internal.MediaRecord) {
	if len(records) == 0 {
		return
	}

	dates := make([]time.Time, len(records))
	for i, rec := range records {
		dates[i] = rec.TakenAt()
	}

	groups := burst.Detect(dates, p.opts.Burst)
	for _, g := range groups {
		for j, idx := range g.Indices {
			id := g.ID
			pos := j + 1
			records[idx].BurstGroupID = &id
			records[idx].BurstIndex = &pos
		}
	}

	if len(groups) > 0 {
		logger.Get().Info().Int("groups", len(groups)).Msg("检测到连拍分组")
	}
}
