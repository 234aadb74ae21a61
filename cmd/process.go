package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kako-jun/photo-returns/app"
	"github.com/kako-jun/photo-returns/config"
)

var processCmd = &cobra.Command{
	Use:   "process <source> <destination>",
	Short: "按拍摄时间整理媒体文件",
	Long: `扫描源目录中的所有照片和视频，解析每个文件的拍摄时间，
检测连拍分组，然后按 年/年-月/年-月-日 的目录层次复制到目标目录。
文件名由拍摄时间生成，冲突时自动追加序号，原始文件保持不变。`,
	Args: cobra.ExactArgs(2),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	backupDir, _ := cmd.Flags().GetString("backup")
	noVideos, _ := cmd.Flags().GetBool("no-videos")
	sequential, _ := cmd.Flags().GetBool("sequential")
	rotate, _ := cmd.Flags().GetBool("rotate")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if backupDir == "" {
		backupDir = cfg.Process.BackupDir
	}

	opts := &app.ProcessOptions{
		SourceDir:              args[0],
		OutputDir:              args[1],
		BackupDir:              backupDir,
		IncludeVideos:          cfg.Process.IncludeVideos && !noVideos,
		Parallel:               cfg.Process.Parallel && !sequential,
		Workers:                cfg.Performance.Workers,
		AutoCorrectOrientation: cfg.Process.AutoCorrectOrientation || rotate,
		BurstMaxInterval:       cfg.Burst.MaxIntervalSeconds,
		BurstMinCount:          cfg.Burst.MinCount,
		Verbose:                verbose,
		LogLevel:               cfg.Logging.Level,
		LogFile:                cfg.Logging.File,
	}

	result, err := app.RunProcess(opts)
	if err != nil {
		return err
	}

	fmt.Printf("总计: %d  已整理: %d  失败: %d\n",
		result.TotalFiles, result.ProcessedFiles, len(result.Errors))
	for _, e := range result.Errors {
		fmt.Printf("  错误: %s\n", e)
	}

	if !result.Success {
		return fmt.Errorf("没有整理任何文件")
	}

	return nil
}

func init() {
	processCmd.Flags().String("backup", "", "备份目录，复制前把原始文件平铺备份到这里")
	processCmd.Flags().Bool("no-videos", false, "跳过视频文件")
	processCmd.Flags().Bool("sequential", false, "禁用并行处理")
	processCmd.Flags().Bool("rotate", false, "复制后根据 EXIF Orientation 自动转正照片")
	processCmd.Flags().Bool("verbose", false, "显示详细日志")

	rootCmd.AddCommand(processCmd)
}
