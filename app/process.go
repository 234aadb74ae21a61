package app

import (
	"fmt"

	"github.com/kako-jun/photo-returns/internal"
	"github.com/kako-jun/photo-returns/internal/processor"
	"github.com/kako-jun/photo-returns/pkg/burst"
	"github.com/kako-jun/photo-returns/pkg/logger"
)

type ProcessOptions struct {
	SourceDir              string
	OutputDir              string
	BackupDir              string
	IncludeVideos          bool
	Parallel               bool
	Workers                int
	AutoCorrectOrientation bool
	BurstMaxInterval       int64
	BurstMinCount          int
	Verbose                bool
	LogLevel               string
	LogFile                string
}

// RunProcess 执行完整的媒体整理流水线
func RunProcess(opts *ProcessOptions) (*internal.ProcessResult, error) {
	if err := initLogger(opts.Verbose, opts.LogLevel, opts.LogFile); err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("源目录: %s", opts.SourceDir)
	logger.Get().Info().Msgf("目标目录: %s", opts.OutputDir)
	if opts.BackupDir != "" {
		logger.Get().Info().Msgf("备份目录: %s", opts.BackupDir)
	}

	p := processor.New(processor.Options{
		OutputDir:              opts.OutputDir,
		BackupDir:              opts.BackupDir,
		IncludeVideos:          opts.IncludeVideos,
		Parallel:               opts.Parallel,
		Workers:                opts.Workers,
		AutoCorrectOrientation: opts.AutoCorrectOrientation,
		Burst: burst.Config{
			MaxIntervalSeconds: opts.BurstMaxInterval,
			MinCount:           opts.BurstMinCount,
		},
	})

	result, err := p.Run(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("媒体整理失败: %w", err)
	}

	return result, nil
}
