package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kako-jun/photo-returns/app"
	"github.com/kako-jun/photo-returns/config"
)

var scanCmd = &cobra.Command{
	Use:   "scan <source>",
	Short: "扫描并解析拍摄时间，不复制文件",
	Long: `扫描源目录中的所有照片和视频，解析每个文件的拍摄时间并
检测连拍分组，打印将要使用的目标文件名。只做预览，不写任何文件。`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	noVideos, _ := cmd.Flags().GetBool("no-videos")
	sequential, _ := cmd.Flags().GetBool("sequential")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.ScanOptions{
		SourceDir:        args[0],
		IncludeVideos:    cfg.Process.IncludeVideos && !noVideos,
		Parallel:         cfg.Process.Parallel && !sequential,
		Workers:          cfg.Performance.Workers,
		BurstMaxInterval: cfg.Burst.MaxIntervalSeconds,
		BurstMinCount:    cfg.Burst.MinCount,
		Verbose:          verbose,
		LogLevel:         cfg.Logging.Level,
		LogFile:          cfg.Logging.File,
	}

	records, err := app.RunScan(opts)
	if err != nil {
		return err
	}

	bursts := 0
	for _, rec := range records {
		burstMark := ""
		if rec.BurstGroupID != nil {
			burstMark = fmt.Sprintf("  [连拍 %d-%d]", *rec.BurstGroupID, *rec.BurstIndex)
			bursts++
		}
		fmt.Printf("%s  →  %s  (%s)%s\n", rec.OriginalPath, rec.NewName, rec.DateSource, burstMark)
	}
	fmt.Printf("共 %d 个文件，其中 %d 个属于连拍\n", len(records), bursts)

	return nil
}

func init() {
	scanCmd.Flags().Bool("no-videos", false, "跳过视频文件")
	scanCmd.Flags().Bool("sequential", false, "禁用并行处理")
	scanCmd.Flags().Bool("verbose", false, "显示详细日志")

	rootCmd.AddCommand(scanCmd)
}
