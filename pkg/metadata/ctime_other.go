//go:build !linux && !darwin && !windows

package metadata

import (
	"fmt"
	"os"
	"time"
)

func creationTime(info os.FileInfo) (time.Time, error) {
	return time.Time{}, fmt.Errorf("当前平台不支持获取文件创建时间")
}
