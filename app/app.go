package app

import (
	"github.com/kako-jun/photo-returns/pkg/logger"
)

// initLogger 初始化日志，verbose 时强制 debug 级别
func initLogger(verbose bool, level, file string) error {
	if verbose {
		level = "debug"
	}
	return logger.Init(level, file)
}
