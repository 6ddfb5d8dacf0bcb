package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/organizer"
	"github.com/moyu-x/organized-file/pkg/scanner"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.state == StateConfig {
			return m.updateConfigPhase(msg)
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case countFilesMsg:
		m.totalFiles = msg.total
		m.state = StateProcessing
		return m, m.startOrganize()

	case progressMsg:
		m.processed = msg.Processed
		m.moved = msg.Moved
		m.duplicates = msg.Duplicates
		m.errors = msg.Errors
		m.currentFile = msg.CurrentFile

		if m.totalFiles > 0 {
			percent := float64(m.processed) / float64(m.totalFiles)
			cmds = append(cmds, m.progressBar.SetPercent(percent))
		}

		cmds = append(cmds, m.waitForProgress())
		return m, tea.Batch(cmds...)

	case organizeCompleteMsg:
		m.state = StateComplete
		m.stats = msg.stats
		return m, nil

	case errMsg:
		m.err = msg
		m.state = StateComplete
		return m, nil

	case spinnerTickMsg:
		if m.state == StateCounting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.state == StateConfig {
		var cmd tea.Cmd
		m.runModeList, cmd = m.runModeList.Update(msg)
		cmds = append(cmds, cmd)

		m.dedupModeList, cmd = m.dedupModeList.Update(msg)
		cmds = append(cmds, cmd)

		m.dirInput, cmd = m.dirInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == StateProcessing {
		model, cmd := m.progressBar.Update(msg)
		m.progressBar = model.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.nextFocus()
		m.updateFocusState()
		return m, nil
	}

	if msg.String() == "enter" {
		return m.handleEnterKey()
	}

	return m, nil
}

func (m *model) nextFocus() {
	switch m.focus {
	case FocusRunMode:
		m.focus = FocusDedupMode
	case FocusDedupMode:
		m.focus = FocusDirInput
	case FocusDirInput:
		m.focus = FocusRunMode
	}
}

func (m *model) updateFocusState() {
	m.runModeList.KeyMap.CursorUp.SetEnabled(m.focus == FocusRunMode)
	m.runModeList.KeyMap.CursorDown.SetEnabled(m.focus == FocusRunMode)

	m.dedupModeList.KeyMap.CursorUp.SetEnabled(m.focus == FocusDedupMode)
	m.dedupModeList.KeyMap.CursorDown.SetEnabled(m.focus == FocusDedupMode)

	if m.focus == FocusDirInput {
		m.dirInput.Focus()
	} else {
		m.dirInput.Blur()
	}
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusRunMode:
		m.dryRun = m.runModeList.Index() == 1
		return m, nil

	case FocusDedupMode:
		m.removeDuplicates = m.dedupModeList.Index() == 1
		return m, nil

	case FocusDirInput:
		dirPath := m.dirInput.Value()
		if dirPath != "" {
			m.sourceDir = dirPath
			m.state = StateCounting
			return m, tea.Batch(
				spinnerTick(),
				countFilesCmd(dirPath),
			)
		}
		return m, nil
	}

	return m, nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width := msg.Width

	m.runModeList.SetWidth(width - 4)
	m.dedupModeList.SetWidth(width - 4)
	m.dirInput.Width = width - 10
	m.progressBar.Width = width - 10
}

func countFilesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		s := scanner.NewFileScanner(afero.NewOsFs())
		total, err := s.CountFiles(dir)
		if err != nil {
			return errMsg(err)
		}
		return countFilesMsg{total: total}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// startOrganize 在后台 goroutine 中执行整理，进度通过通道回传
// 整理流水线本身仍是单线程顺序处理
func (m *model) startOrganize() tea.Cmd {
	progressCh := make(chan internal.ProgressUpdate, internal.DefaultBufferSize)
	doneCh := make(chan organizeResult, 1)

	m.progressCh = progressCh
	m.doneCh = doneCh

	org := organizer.New(afero.NewOsFs(), classifier.Default(), organizer.Options{
		DryRun:           m.dryRun,
		RemoveDuplicates: m.removeDuplicates,
		Progress:         progressCh,
	})

	sourceDir := m.sourceDir
	go func() {
		stats, err := org.Organize(sourceDir)
		close(progressCh)
		doneCh <- organizeResult{stats: stats, err: err}
	}()

	return m.waitForProgress()
}

// waitForProgress 等待下一条进度更新；通道关闭时取最终结果
func (m *model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.progressCh
		if !ok {
			result := <-m.doneCh
			if result.err != nil {
				return errMsg(result.err)
			}
			return organizeCompleteMsg{stats: result.stats}
		}
		return progressMsg(update)
	}
}
