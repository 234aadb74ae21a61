package burst

import (
	"time"

	"github.com/kako-jun/photo-returns/internal"
)

// Config 连拍检测的配置
type Config struct {
	// MaxIntervalSeconds 同组相邻照片的最大时间间隔（秒）
	MaxIntervalSeconds int64
	// MinCount 构成连拍组的最小张数
	MinCount int
}

// DefaultConfig 返回默认配置（3 秒以内、3 张以上）
func DefaultConfig() Config {
	return Config{
		MaxIntervalSeconds: internal.DefaultBurstMaxInterval,
		MinCount:           internal.DefaultBurstMinCount,
	}
}

// Group 一个连拍组
type Group struct {
	// ID 按产出顺序从 0 开始编号
	ID int
	// Indices 组内成员在输入序列中的下标（连续）
	Indices []int
	// StartTime 组内第一张的时间
	StartTime time.Time
	// EndTime 组内最后一张的时间
	EndTime time.Time
	// Count 组内张数
	Count int
}

// Detect 根据拍摄时间序列检测连拍组
// 输入序列需要已按时间排序；相邻时间差在 [0, MaxIntervalSeconds]
// 内的照片归入同一组，组内张数达到 MinCount 才会产出。
// 时间差为负（序列未排序）同样会切断当前组。
func Detect(dates []time.Time, cfg Config) []Group {
	maxInterval := time.Duration(cfg.MaxIntervalSeconds) * time.Second

	var groups []Group
	var current []int
	var last time.Time

	flush := func() {
		if len(current) >= cfg.MinCount {
			groups = append(groups, Group{
				ID:        len(groups),
				Indices:   current,
				StartTime: dates[current[0]],
				EndTime:   dates[current[len(current)-1]],
				Count:     len(current),
			})
		}
	}

	for i, date := range dates {
		if current == nil {
			current = []int{i}
			last = date
			continue
		}

		diff := date.Sub(last)
		if diff >= 0 && diff <= maxInterval {
			current = append(current, i)
			last = date
		} else {
			flush()
			current = []int{i}
			last = date
		}
	}

	// 收尾：最后一个未关闭的组
	if current != nil {
		flush()
	}

	return groups
}

// GroupIndex 构建「照片下标 → 连拍组 ID」的映射
func GroupIndex(groups []Group) map[int]int {
	index := make(map[int]int)
	for _, group := range groups {
		for _, i := range group.Indices {
			index[i] = group.ID
		}
	}
	return index
}
