package processor

import (
	"time"

	"github.com/spf13/afero"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/pkg/burst"
	"github.com/kako-jun/photo-returns/pkg/logger"
	"github.com/kako-jun/photo-returns/pkg/manifest"
)

// Options 处理流水线的运行参数
type Options struct {
	OutputDir              string
	BackupDir              string
	IncludeVideos          bool
	Parallel               bool
	Workers                int
	AutoCorrectOrientation bool
	Burst                  burst.Config
}

// Processor 媒体整理流水线
// 先扫描并解析拍摄时间，再按日期层级复制到目标目录
type Processor struct {
	opts  Options
	fs    afero.Fs
	Stats internal.ProcessStats
}

// New 创建新的处理器实例
func New(opts Options) *Processor {
	if opts.Workers <= 0 {
		opts.Workers = internal.DefaultWorkers
	}
	if opts.Burst.MaxIntervalSeconds <= 0 {
		opts.Burst.MaxIntervalSeconds = internal.DefaultBurstMaxInterval
	}
	if opts.Burst.MinCount <= 0 {
		opts.Burst.MinCount = internal.DefaultBurstMinCount
	}

	return &Processor{
		opts: opts,
		fs:   afero.NewOsFs(),
	}
}

// Run 执行完整流水线：扫描、解析、连拍检测、命名、复制
func (p *Processor) Run(sourceDir string) (*internal.ProcessResult, error) {
	p.Stats.StartTime = time.Now()

	records, err := p.Scan(sourceDir)
	if err != nil {
		return nil, err
	}

	errs := p.CopyAll(records)
	p.Stats.EndTime = time.Now()

	p.writeManifest(records)

	// 结果携带全部已解析的记录，复制失败的条目 NewPath 为空，
	// 失败本身只体现在计数和错误列表里
	return &internal.ProcessResult{
		Success:        p.Stats.ProcessedFiles > 0,
		TotalFiles:     p.Stats.TotalFiles,
		ProcessedFiles: p.Stats.ProcessedFiles,
		Records:        records,
		Errors:         errs,
	}, nil
}

// writeManifest 把本次复制成功的记录追加到输出目录的清单文件
// 清单只是运行记录，写入失败不影响整理结果
func (p *Processor) writeManifest(records []*internal.MediaRecord) {
	if p.Stats.ProcessedFiles == 0 {
		return
	}

	w, err := manifest.NewWriter(p.opts.OutputDir)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("创建清单文件失败")
		return
	}
	defer w.Close()

	for _, rec := range records {
		if rec.NewPath == "" {
			continue
		}
		if err := w.Append(rec); err != nil {
			logger.Get().Warn().Err(err).Str("file", rec.NewPath).Msg("写入清单失败")
			return
		}
	}

	logger.Get().Debug().Int("count", w.Count()).Str("path", w.Path()).Msg("清单写入完成")
}
