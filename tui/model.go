package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/organized-file/internal"
)

type State int

const (
	StateConfig State = iota
	StateCounting
	StateProcessing
	StateComplete
)

type Focus int

const (
	FocusRunMode Focus = iota
	FocusDedupMode
	FocusDirInput
)

// organizeResult 后台整理 goroutine 的最终结果
type organizeResult struct {
	stats *internal.RunStats
	err   error
}

type model struct {
	state State
	focus Focus

	dryRun           bool
	removeDuplicates bool
	sourceDir        string

	totalFiles  int
	processed   int
	moved       int
	duplicates  int
	errors      int
	currentFile string
	stats       *internal.RunStats

	progressCh chan internal.ProgressUpdate
	doneCh     chan organizeResult

	runModeList   list.Model
	dedupModeList list.Model
	dirInput      textinput.Model
	progressBar   progress.Model
	spinner       spinner.Model
	err           error
}

func initialModel() model {
	runModeList := list.New([]list.Item{
		optionItem{title: "正式整理", desc: "移动文件到分类目录"},
		optionItem{title: "预览模式", desc: "只报告将要执行的操作，不修改文件"},
	}, list.NewDefaultDelegate(), 0, 2)

	runModeList.Title = "选择运行模式"
	runModeList.SetShowStatusBar(false)
	runModeList.SetFilteringEnabled(false)
	runModeList.Styles.Title = titleStyle
	runModeList.Styles.TitleBar = titleStyle

	dedupModeList := list.New([]list.Item{
		optionItem{title: "保留重复文件", desc: "所有文件按分类移动"},
		optionItem{title: "删除重复文件", desc: "按内容哈希检测并删除重复文件"},
	}, list.NewDefaultDelegate(), 0, 2)

	dedupModeList.Title = "选择重复文件处理方式"
	dedupModeList.SetShowStatusBar(false)
	dedupModeList.SetFilteringEnabled(false)
	dedupModeList.Styles.Title = titleStyle
	dedupModeList.Styles.TitleBar = titleStyle

	dirInput := textinput.New()
	dirInput.Placeholder = "请输入要整理的目录（按回车开始）"
	dirInput.Prompt = "> "
	dirInput.PromptStyle = focusedPromptStyle
	dirInput.TextStyle = textStyle

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Width(4)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:         StateConfig,
		focus:         FocusRunMode,
		runModeList:   runModeList,
		dedupModeList: dedupModeList,
		dirInput:      dirInput,
		progressBar:   progressBar,
		spinner:       s,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type optionItem struct {
	title string
	desc  string
}

func (o optionItem) Title() string       { return o.title }
func (o optionItem) Description() string { return o.desc }
func (o optionItem) FilterValue() string { return o.title }
