package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kako-jun/photo-returns/app"
	"github.com/kako-jun/photo-returns/config"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <files...>",
	Short: "根据 EXIF Orientation 把照片转正",
	Long: `读取每个文件的 EXIF Orientation 标签，按其指示旋转像素数据并
把标签重置为 1。方向已经正常或无法识别的文件保持不变。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRotate,
}

func runRotate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := &app.RotateOptions{
		Files:    args,
		Verbose:  verbose,
		LogLevel: cfg.Logging.Level,
		LogFile:  cfg.Logging.File,
	}

	rotated, errs, err := app.RunRotate(opts)
	if err != nil {
		return err
	}

	fmt.Printf("共 %d 个文件，转正 %d 个，失败 %d 个\n", len(args), rotated, len(errs))
	for _, e := range errs {
		fmt.Printf("  错误: %s\n", e)
	}

	if len(errs) > 0 {
		return fmt.Errorf("部分文件转正失败")
	}

	return nil
}

func init() {
	rotateCmd.Flags().Bool("verbose", false, "显示详细日志")

	rootCmd.AddCommand(rotateCmd)
}
