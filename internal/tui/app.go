// Package tui provides the interactive session browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flowtrace/internal/cli"
	"flowtrace/internal/extract"
	"flowtrace/internal/model"
	"flowtrace/internal/source"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(cli.ColorText)
	labelStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	errStyle      = lipgloss.NewStyle().Foreground(cli.ColorRed)
	helpStyle     = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

// callsLoadedMsg is sent when a session file has been extracted.
type callsLoadedMsg struct {
	sessionID string
	calls     []model.ToolCall
	err       error
}

// App is the root Bubble Tea model: a session list with a per-session tool
// call detail view.
type App struct {
	logsDir  string
	sessions []source.DiscoveredFile

	cursor  int
	viewing bool
	loading bool

	sessionID string
	calls     []model.ToolCall
	vp        viewport.Model
	loadErr   error

	width  int
	height int
}

// New builds the browser over a set of discovered session files.
func New(logsDir string, sessions []source.DiscoveredFile) App {
	return App{logsDir: logsDir, sessions: sessions}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// loadCalls extracts a session file off the Update loop.
func loadCalls(f source.DiscoveredFile) tea.Cmd {
	return func() tea.Msg {
		calls, err := extract.File(f.Path)
		return callsLoadedMsg{sessionID: f.SessionID, calls: calls, err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.vp.Width = msg.Width - 4
		a.vp.Height = msg.Height - 6
		return a, nil

	case callsLoadedMsg:
		a.loading = false
		a.viewing = true
		a.sessionID = msg.sessionID
		a.calls = msg.calls
		a.loadErr = msg.err
		a.vp.SetContent(a.renderCalls())
		a.vp.GotoTop()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit

		case "esc":
			if a.viewing {
				a.viewing = false
				return a, nil
			}
			return a, tea.Quit

		case "enter":
			if !a.viewing && len(a.sessions) > 0 {
				a.loading = true
				return a, loadCalls(a.sessions[a.cursor])
			}

		case "up", "k":
			if a.viewing {
				a.vp.ScrollUp(1)
			} else if a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case "down", "j":
			if a.viewing {
				a.vp.ScrollDown(1)
			} else if a.cursor < len(a.sessions)-1 {
				a.cursor++
			}
			return a, nil

		case "pgup":
			if a.viewing {
				a.vp.HalfPageUp()
			}
			return a, nil

		case "pgdown":
			if a.viewing {
				a.vp.HalfPageDown()
			}
			return a, nil
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.viewing {
		return a.viewDetail()
	}
	return a.viewList()
}

func (a App) viewList() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(selectedStyle.Render("flowtrace"))
	b.WriteString(labelStyle.Render("  session logs in " + a.logsDir))
	b.WriteString("\n\n")

	if len(a.sessions) == 0 {
		b.WriteString(labelStyle.Render("  No session files found."))
		b.WriteString("\n")
		return b.String()
	}

	for i, f := range a.sessions {
		line := fmt.Sprintf("%s  %s  %s",
			f.SessionID,
			cli.FormatSize(f.SizeBytes),
			cli.FormatTime(f.ModTime),
		)
		if i == a.cursor {
			b.WriteString("  " + selectedStyle.Render("> "+line))
		} else {
			b.WriteString("    " + normalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if a.loading {
		b.WriteString(labelStyle.Render("  Extracting..."))
	} else {
		b.WriteString(helpStyle.Render("  enter: open  ·  j/k: move  ·  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (a App) viewDetail() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(selectedStyle.Render("session " + a.sessionID))

	if a.loadErr == nil {
		sum := model.Summarize(a.calls)
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d calls · %s ok · %s failed",
			sum.TotalCalls,
			cli.OKStyle.Render(fmt.Sprintf("%d", sum.Succeeded)),
			cli.FailStyle.Render(fmt.Sprintf("%d", sum.Failed)),
		)))
	}
	b.WriteString("\n\n")

	if a.loadErr != nil {
		b.WriteString(errStyle.Render("  " + a.loadErr.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(a.vp.View())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  esc: back  ·  j/k: scroll  ·  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCalls builds the scrollable detail content. Unlike the YAML
// report, the browser shows each call's output and success status.
func (a App) renderCalls() string {
	if len(a.calls) == 0 {
		return labelStyle.Render("  No tool calls in this session.")
	}

	var b strings.Builder
	for i, c := range a.calls {
		status := labelStyle.Render("pending")
		if c.HasOutput {
			if c.Success {
				status = cli.OKStyle.Render("ok")
			} else {
				status = cli.FailStyle.Render("failed")
			}
		}

		b.WriteString(fmt.Sprintf("  %d. %s  %s  %s\n",
			i+1,
			normalStyle.Render(c.DisplayName()),
			labelStyle.Render(cli.FormatMs(c.DurationMs)),
			status,
		))
		if c.StartTime != "" {
			b.WriteString(labelStyle.Render("     started " + c.StartTime))
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render("     input  " + cli.Truncate(fmt.Sprintf("%v", c.Input), 100)))
		b.WriteString("\n")
		if c.HasOutput {
			b.WriteString(labelStyle.Render("     output " + cli.Truncate(fmt.Sprintf("%v", c.Output), 100)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run scans logsDir and starts the browser.
func Run(logsDir string) error {
	sessions, err := source.ScanDir(logsDir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", logsDir, err)
	}

	_, err = tea.NewProgram(New(logsDir, sessions), tea.WithAltScreen()).Run()
	return err
}
