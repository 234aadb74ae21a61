//go:build linux

package metadata

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// creationTime Linux 上没有可移植的出生时间，使用 inode 变更时间近似
func creationTime(info os.FileInfo) (time.Time, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, fmt.Errorf("无法获取文件创建时间")
	}
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec), nil
}
