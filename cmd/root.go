package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "photo-returns",
	Short: "按拍摄时间整理照片和视频的工具",
	Long: `Photo Returns 是一个命令行工具，用于按拍摄时间把照片和视频整理到日期目录。

主要功能:
- 递归扫描源目录中的照片和视频
- 按 EXIF / 视频容器 / 文件名 / 文件时间的优先级解析拍摄时间
- 检测连拍分组并在文件名中编号
- 以 年/年-月/年-月-日 的层次复制到目标目录
- 自动处理文件名冲突，原始文件保持不变
- 可选地根据 EXIF Orientation 把照片转正`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
