package app

import (
	"fmt"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/internal/processor"
	"github.com/kako-jun/photo-returns/pkg/burst"
	"github.com/kako-jun/photo-returns/pkg/logger"
)

type ScanOptions struct {
	SourceDir        string
	IncludeVideos    bool
	Parallel         bool
	Workers          int
	BurstMaxInterval int64
	BurstMinCount    int
	Verbose          bool
	LogLevel         string
	LogFile          string
}

// RunScan 只执行扫描和解析阶段，不复制文件
func RunScan(opts *ScanOptions) ([]*internal.MediaRecord, error) {
	if err := initLogger(opts.Verbose, opts.LogLevel, opts.LogFile); err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("扫描目录: %s", opts.SourceDir)

	p := processor.New(processor.Options{
		IncludeVideos: opts.IncludeVideos,
		Parallel:      opts.Parallel,
		Workers:       opts.Workers,
		Burst: burst.Config{
			MaxIntervalSeconds: opts.BurstMaxInterval,
			MinCount:           opts.BurstMinCount,
		},
	})

	records, err := p.Scan(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("扫描失败: %w", err)
	}

	return records, nil
}
