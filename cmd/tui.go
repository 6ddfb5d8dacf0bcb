package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/organized-file/config"
	"github.com/moyu-x/organized-file/pkg/logger"
	"github.com/moyu-x/organized-file/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "启动交互式整理界面",
	Long: `以终端交互界面的方式运行整理操作：选择运行模式、是否删除重复
文件和目标目录，处理过程中实时显示进度和统计信息。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// TUI 模式下日志只写文件，避免干扰界面
		if cfg.Logging.File != "" {
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
				return err
			}
		}

		return tui.Run(&tui.Config{Version: Version})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
