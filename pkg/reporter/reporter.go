package reporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/logger"
)

// Reporter 把一次运行的 RunStats 投影为可读的汇总，除输出外没有副作用
type Reporter struct {
	// categoryOrder 分类输出顺序，来自分类表的声明顺序
	categoryOrder []string
}

func New(categoryOrder []string) *Reporter {
	return &Reporter{categoryOrder: categoryOrder}
}

// Summary 渲染汇总文本，计数为零的分类不输出
func (r *Reporter) Summary(stats *internal.RunStats) string {
	var b strings.Builder

	b.WriteString("========== 整理完成 ==========\n")
	b.WriteString(fmt.Sprintf("总文件数: %d\n", stats.TotalFiles))
	b.WriteString(fmt.Sprintf("已移动: %d\n", stats.Moved))
	b.WriteString(fmt.Sprintf("重复删除: %d\n", stats.Duplicates))
	b.WriteString(fmt.Sprintf("错误: %d\n", stats.Errors))

	if stats.Duplicates > 0 {
		b.WriteString(fmt.Sprintf("释放空间: %s\n", FormatBytes(stats.FreedSpace)))
	}

	if stats.Moved > 0 {
		b.WriteString("分类明细:\n")
		for _, name := range r.categoryOrder {
			if count := stats.Categories[name]; count > 0 {
				b.WriteString(fmt.Sprintf("  %s: %d\n", name, count))
			}
		}
	}

	if !stats.EndTime.IsZero() {
		b.WriteString(fmt.Sprintf("总耗时: %v\n", stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond)))
	}

	b.WriteString("============================")
	return b.String()
}

// Report 把汇总逐行写入日志
func (r *Reporter) Report(stats *internal.RunStats) {
	for _, line := range strings.Split(r.Summary(stats), "\n") {
		logger.Get().Info().Msg(line)
	}
}

// FormatBytes 人类可读的字节数
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
