package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/reporter"
)

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StateCounting:
		return m.countingView()
	case StateProcessing:
		return m.processingView()
	case StateComplete:
		return m.completeView()
	default:
		return "未知状态"
	}
}

func (m *model) configView() string {
	var b strings.Builder

	title := "📦 文件整理工具"
	if cfg != nil && cfg.Version != "" {
		title += " v" + cfg.Version
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	b.WriteString(labelStyle.Render("1. 选择运行模式：") + "\n")
	if m.focus == FocusRunMode {
		b.WriteString(focusedStyle.Render(m.runModeList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.runModeList.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("2. 选择重复文件处理方式：") + "\n")
	if m.focus == FocusDedupMode {
		b.WriteString(focusedStyle.Render(m.dedupModeList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.dedupModeList.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("3. 输入要整理的目录：") + "\n")
	if m.focus == FocusDirInput {
		b.WriteString(focusedStyle.Render(m.dirInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.dirInput.View()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点\n")
	b.WriteString("  • Enter 确认选择/开始整理\n")
	b.WriteString("  • Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) countingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔍 正在统计文件数量...") + "\n\n")
	b.WriteString(m.spinner.View() + "\n")
	b.WriteString("  正在枚举目录中的文件...\n")
	b.WriteString("  目标目录: " + m.sourceDir)

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) processingView() string {
	var b strings.Builder

	if m.dryRun {
		b.WriteString(titleStyle.Render("🔄 正在预览整理操作...") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("🔄 正在整理文件...") + "\n\n")
	}

	b.WriteString(labelStyle.Render("处理进度：") + "\n")
	b.WriteString(m.progressBar.View() + "\n\n")

	b.WriteString(statsBoxStyle.Render(m.renderStats()) + "\n\n")

	b.WriteString(labelStyle.Render("当前文件：") + "\n")
	b.WriteString(filePathStyle.Render(m.currentFile) + "\n\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("❌ 整理失败") + "\n\n")
		b.WriteString(m.err.Error() + "\n\n")
		b.WriteString(hintStyle.Render("Ctrl+C 退出") + "\n")
		return lipgloss.NewStyle().Padding(2).Render(b.String())
	}

	b.WriteString(successTitleStyle.Render("✅ 整理完成！") + "\n\n")

	b.WriteString(statsBoxStyle.Render(m.renderFinalStats()) + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderStats() string {
	var b strings.Builder
	b.WriteString("📊 实时统计：\n\n")
	b.WriteString(fmt.Sprintf("  总文件数：    %d\n", m.totalFiles))
	b.WriteString(fmt.Sprintf("  已处理：      %d / %d\n", m.processed, m.totalFiles))
	b.WriteString(fmt.Sprintf("  已移动：      %d 个文件\n", m.moved))
	b.WriteString(fmt.Sprintf("  重复删除：    %d 个文件\n", m.duplicates))
	b.WriteString(fmt.Sprintf("  错误：        %d 个\n", m.errors))
	return b.String()
}

func (m *model) renderFinalStats() string {
	if m.stats == nil {
		return ""
	}

	rep := reporter.New(classifier.Default().Names())
	return rep.Summary(m.stats)
}
