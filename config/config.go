package config

import (
	"runtime"

	"github.com/spf13/viper"

	"github.com/kako-jun/photo-returns/internal"
)

type Config struct {
	Process struct {
		Parallel               bool
		IncludeVideos          bool   `mapstructure:"include_videos"`
		BackupDir              string `mapstructure:"backup_dir"`
		AutoCorrectOrientation bool   `mapstructure:"auto_correct_orientation"`
		// TimezoneOffset 和 CleanupTemp 为保留项，读取但暂不生效
		TimezoneOffset *int `mapstructure:"timezone_offset"`
		CleanupTemp    bool `mapstructure:"cleanup_temp"`
	}
	Burst struct {
		MaxIntervalSeconds int64 `mapstructure:"max_interval_seconds"`
		MinCount           int   `mapstructure:"min_count"`
	}
	Performance struct {
		Workers int
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.photo-returns")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/photo-returns")

	viper.SetDefault("process.parallel", true)
	viper.SetDefault("process.include_videos", true)
	viper.SetDefault("process.auto_correct_orientation", false)
	viper.SetDefault("process.cleanup_temp", false)
	viper.SetDefault("burst.max_interval_seconds", internal.DefaultBurstMaxInterval)
	viper.SetDefault("burst.min_count", internal.DefaultBurstMinCount)
	viper.SetDefault("performance.workers", runtime.NumCPU())
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
