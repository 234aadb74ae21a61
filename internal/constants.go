package internal

const (
	// 并发工作线程数的默认值
	DefaultWorkers = 8

	// 连拍检测：同组相邻照片的最大时间间隔（秒）
	DefaultBurstMaxInterval = 3

	// 连拍检测：构成连拍组的最小张数
	DefaultBurstMinCount = 3
)
