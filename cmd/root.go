package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moyu-x/organized-file/app"
	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/reporter"
)

// Version 版本标识，构建时可通过 -ldflags 注入
var Version = "1.0.0"

var (
	dryRun           bool
	removeDuplicates bool
	verbose          bool
)

// rootCmd 根命令本身就是整理操作
var rootCmd = &cobra.Command{
	Use:   "organized-file [目录]",
	Short: "按扩展名整理单个目录中的文件",
	Long: `Organized File 是一个命令行工具，扫描单个目录（不递归）并把其中的
文件移动到按分类命名的子目录中。

主要功能:
- 枚举目标目录的直接子文件，跳过子目录
- 按扩展名将文件归入 Documents、Images、Archives 等分类目录
- 可选地计算内容哈希并删除本次运行中发现的重复文件
- 预览模式下报告将要执行的操作，但不修改文件系统

不给出目录参数时整理当前工作目录。`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runOrganize,
	// 参数错误时不重复打印用法
	SilenceUsage: true,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	sourceDir := "."
	if len(args) > 0 {
		sourceDir = args[0]
	}

	stats, err := app.RunOrganize(&app.OrganizeOptions{
		SourceDir:        sourceDir,
		DryRun:           dryRun,
		RemoveDuplicates: removeDuplicates,
		Verbose:          verbose,
	})
	if err != nil {
		return err
	}

	rep := reporter.New(classifier.Default().Names())
	fmt.Println(rep.Summary(stats))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "预览模式，不实际修改文件")
	rootCmd.Flags().BoolVar(&removeDuplicates, "remove-duplicates", false, "检测并删除内容重复的文件")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")
}
