package output

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Progress reports the state of a running operation.
// Start and Update set the in-flight text; Succeed, Fail, Info and Warn end
// the operation with a final line; Stop ends it without one.
type Progress interface {
	Start(text string)
	Update(text string)
	Succeed(text string)
	Fail(text string)
	Info(text string)
	Warn(text string)
	Stop()
}

// Final-state markers, rendered at call time so the active color profile applies
func symbolSucceed() string { return ClassSuccess.Render("✔") }
func symbolFail() string    { return ClassAlert.Render("✖") }
func symbolInfo() string    { return ClassNeutral.Render("ℹ") }
func symbolWarn() string    { return ClassWarning.Render("⚠") }

// NewProgress returns a spinner on interactive terminals and line output otherwise
func NewProgress(splog *Splog, interactive bool) Progress {
	if interactive {
		return newSpinnerProgress(splog)
	}
	return NewLineProgress(splog)
}

// lineProgress writes each final state as a line. In-flight text is only
// shown as debug output; warnings and failures go out at their own level.
type lineProgress struct {
	splog *Splog
}

// NewLineProgress returns a Progress that writes through splog
func NewLineProgress(splog *Splog) Progress {
	return &lineProgress{splog: splog}
}

func (p *lineProgress) Start(text string)   { p.splog.Debug("%s", text) }
func (p *lineProgress) Update(text string)  { p.splog.Debug("%s", text) }
func (p *lineProgress) Succeed(text string) { p.splog.Info("%s %s", symbolSucceed(), text) }
func (p *lineProgress) Fail(text string)    { p.splog.Error("%s", text) }
func (p *lineProgress) Info(text string)    { p.splog.Info("%s %s", symbolInfo(), text) }
func (p *lineProgress) Warn(text string)    { p.splog.Warn("%s", text) }
func (p *lineProgress) Stop()               {}

// spinnerTextMsg replaces the in-flight text
type spinnerTextMsg string

// spinnerDoneMsg ends the program, leaving line on screen
type spinnerDoneMsg struct {
	line string
}

// spinnerModel is the bubbletea model behind spinnerProgress
type spinnerModel struct {
	spinner spinner.Model
	text    string
	final   string
	done    bool
}

func newSpinnerModel(text string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, text: text}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case spinnerTextMsg:
		m.text = string(msg)
	case spinnerDoneMsg:
		m.final = msg.line
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		if m.final == "" {
			return ""
		}
		return m.final + "\n"
	}
	return m.spinner.View() + " " + m.text
}

// spinnerProgress animates a spinner while an operation runs.
// The bubbletea program renders on its own goroutine; callers stay sequential.
// Final lines are also recorded in the log file.
type spinnerProgress struct {
	out     io.Writer
	splog   *Splog
	program *tea.Program
	done    chan struct{}
}

func newSpinnerProgress(splog *Splog) *spinnerProgress {
	return &spinnerProgress{out: splog.Writer(), splog: splog}
}

func (p *spinnerProgress) Start(text string) {
	if p.program != nil {
		p.Update(text)
		return
	}
	p.program = tea.NewProgram(newSpinnerModel(text), tea.WithOutput(p.out), tea.WithInput(nil))
	p.done = make(chan struct{})
	go func(program *tea.Program, done chan struct{}) {
		_, _ = program.Run()
		close(done)
	}(p.program, p.done)
}

func (p *spinnerProgress) Update(text string) {
	if p.program == nil {
		p.Start(text)
		return
	}
	p.program.Send(spinnerTextMsg(text))
}

// finish ends the spinner with marker and text; a nil marker clears it
func (p *spinnerProgress) finish(level slog.Level, marker func() string, text string) {
	line := ""
	if marker != nil {
		line = marker() + " " + text
		p.splog.Record(level, text)
	}
	if p.program == nil {
		if line != "" {
			_, _ = fmt.Fprintln(p.out, line)
		}
		return
	}
	p.program.Send(spinnerDoneMsg{line: line})
	<-p.done
	p.program = nil
}

func (p *spinnerProgress) Succeed(text string) { p.finish(slog.LevelInfo, symbolSucceed, text) }
func (p *spinnerProgress) Fail(text string)    { p.finish(slog.LevelError, symbolFail, text) }
func (p *spinnerProgress) Info(text string)    { p.finish(slog.LevelInfo, symbolInfo, text) }
func (p *spinnerProgress) Warn(text string)    { p.finish(slog.LevelWarn, symbolWarn, text) }
func (p *spinnerProgress) Stop()               { p.finish(slog.LevelInfo, nil, "") }
