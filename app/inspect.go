package app

import (
	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/config"
	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/inspector"
	"github.com/moyu-x/organized-file/pkg/logger"
)

type InspectOptions struct {
	Dir     string
	Verbose bool
}

// RunInspect 只读预检：列出目录中每个文件的归档分类和探测到的实际类型
func RunInspect(opts *InspectOptions) ([]inspector.Result, error) {
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

	logger.Get().Info().Msgf("预检目录: %s", opts.Dir)

	insp := inspector.New(afero.NewOsFs(), classifier.Default(), cfg.Inspector.Workers)
	return insp.Inspect(opts.Dir)
}
