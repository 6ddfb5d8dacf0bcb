package app

import (
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/config"
	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/logger"
	"github.com/moyu-x/organized-file/pkg/organizer"
)

type OrganizeOptions struct {
	SourceDir        string
	DryRun           bool
	RemoveDuplicates bool
	Verbose          bool
	// Progress 可选的进度通道，供 TUI 监听
	Progress chan<- internal.ProgressUpdate
}

// RunOrganize 加载配置、初始化日志并执行一次整理运行
func RunOrganize(opts *OrganizeOptions) (*internal.RunStats, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
		return nil, err
	}

	log := logger.WithRun(uuid.NewString())
	log.Info().Msgf("源目录: %s", opts.SourceDir)
	log.Info().Msgf("预览模式: %v", opts.DryRun)
	log.Info().Msgf("删除重复文件: %v", opts.RemoveDuplicates)

	org := organizer.New(afero.NewOsFs(), classifier.Default(), organizer.Options{
		DryRun:           opts.DryRun,
		RemoveDuplicates: opts.RemoveDuplicates,
		Progress:         opts.Progress,
	})

	stats, err := org.Organize(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
