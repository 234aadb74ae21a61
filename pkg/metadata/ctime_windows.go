//go:build windows

package metadata

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

func creationTime(info os.FileInfo) (time.Time, error) {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, fmt.Errorf("无法获取文件创建时间")
	}
	return time.Unix(0, stat.CreationTime.Nanoseconds()), nil
}
