package app

import (
	"fmt"

	"github.com/kako-jun/photo-returns/pkg/logger"
	"github.com/kako-jun/photo-returns/pkg/orientation"
)

type RotateOptions struct {
	Files    []string
	Verbose  bool
	LogLevel string
	LogFile  string
}

// RunRotate 对指定文件执行自动转正
// 返回实际旋转的文件数和每个失败文件的错误描述
func RunRotate(opts *RotateOptions) (int, []string, error) {
	if err := initLogger(opts.Verbose, opts.LogLevel, opts.LogFile); err != nil {
		return 0, nil, err
	}

	rotated := 0
	var errs []string

	for _, file := range opts.Files {
		applied, err := orientation.CorrectFile(file)
		if err != nil {
			logger.Get().Error().Err(err).Str("file", file).Msg("转正失败")
			errs = append(errs, fmt.Sprintf("%s: %v", file, err))
			continue
		}
		if applied {
			rotated++
			logger.Get().Info().Str("file", file).Msg("已转正")
		} else {
			logger.Get().Debug().Str("file", file).Msg("无需转正")
		}
	}

	return rotated, errs, nil
}
