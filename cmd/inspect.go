package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moyu-x/organized-file/app"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [目录]",
	Short: "预检目录中的文件类型",
	Long: `列出目录中每个文件整理时会使用的分类，同时按文件头探测实际的
MIME 类型，便于在整理前发现扩展名与内容不符的文件。只读操作，
不会修改任何文件。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	results, err := app.RunInspect(&app.InspectOptions{
		Dir:     dir,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-30s  读取失败: %v\n", filepath.Base(r.Path), r.Err)
			continue
		}
		fmt.Printf("%-30s  分类: %-10s  内容类型: %s\n", filepath.Base(r.Path), r.Category, r.MIME)
	}

	fmt.Printf("共 %d 个文件\n", len(results))
	return nil
}

func init() {
	inspectCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(inspectCmd)
}
