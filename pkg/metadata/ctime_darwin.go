//go:build darwin

package metadata

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

func creationTime(info os.FileInfo) (time.Time, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, fmt.Errorf("无法获取文件创建时间")
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), nil
}
