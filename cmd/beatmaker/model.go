package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/caffeinepub/thunderlab/beat"
	"github.com/caffeinepub/thunderlab/beat/render"
	"github.com/caffeinepub/thunderlab/beat/sequencer"
	"github.com/caffeinepub/thunderlab/internal/backend"
	"github.com/caffeinepub/thunderlab/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const helpText = "hjkl/arrows:move  space:toggle  enter:play/stop  +/-:tempo  c:clear  e:export  a:add to project  y/p:copy/paste  q:quit"

type modelOption func(*model)

func withOutDir(dir string) modelOption {
	return func(m *model) { m.outDir = dir }
}

func withLogger(l *slog.Logger) modelOption {
	return func(m *model) { m.logger = l }
}

func withClipboard(write func(string) error, read func() (string, error)) modelOption {
	return func(m *model) { m.copyText, m.pasteText = write, read }
}

func withNow(now func() time.Time) modelOption {
	return func(m *model) { m.now = now }
}

func withRenderOptions(opts ...render.Option) modelOption {
	return func(m *model) { m.renderOpts = opts }
}

type model struct {
	sched   *sequencer.Scheduler
	backend backend.Backend
	steps   <-chan int

	outDir     string
	logger     *slog.Logger
	now        func() time.Time
	renderOpts []render.Option
	copyText   func(string) error
	pasteText  func() (string, error)

	row, col int
	status   string
	busy     bool
	quitting bool
}

type stepMsg int

// exportMsg reports a finished export; project is set when it was also
// added to the backend.
type exportMsg struct {
	path    string
	project *backend.Project
	err     error
}

func newModel(sched *sequencer.Scheduler, b backend.Backend, steps <-chan int, opts ...modelOption) model {
	m := model{
		sched:     sched,
		backend:   b,
		steps:     steps,
		outDir:    ".",
		logger:    logging.Discard(),
		now:       time.Now,
		copyText:  clipboard.WriteAll,
		pasteText: clipboard.ReadAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func listenForSteps(steps <-chan int) tea.Cmd {
	if steps == nil {
		return nil
	}
	return func() tea.Msg {
		step, ok := <-steps
		if !ok {
			return nil
		}
		return stepMsg(step)
	}
}

func (m model) Init() tea.Cmd {
	return listenForSteps(m.steps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case stepMsg:
		return m, listenForSteps(m.steps)

	case exportMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.status = "export failed: " + msg.err.Error()
		case msg.project != nil:
			m.status = fmt.Sprintf("added project #%d %s", msg.project.ID, msg.project.Name)
		default:
			m.status = "exported " + msg.path
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sounds := beat.Sounds()
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.sched.Stop()
		return m, tea.Quit

	case "left", "h":
		m.col = (m.col + beat.StepCount - 1) % beat.StepCount
	case "right", "l":
		m.col = (m.col + 1) % beat.StepCount
	case "up", "k":
		m.row = (m.row + len(sounds) - 1) % len(sounds)
	case "down", "j":
		m.row = (m.row + 1) % len(sounds)

	case " ", "x":
		if _, err := m.sched.ToggleStep(sounds[m.row], m.col); err != nil {
			m.status = err.Error()
		}

	case "enter":
		if m.sched.IsPlaying() {
			m.sched.Stop()
			m.status = "stopped"
		} else if err := m.sched.Play(); err != nil {
			m.status = "play: " + err.Error()
		} else {
			m.status = "playing"
		}

	case "+", "=":
		m.setTempo(m.sched.Tempo() + 1)
	case "-", "_":
		m.setTempo(m.sched.Tempo() - 1)

	case "c":
		m.sched.ClearPattern()
		m.status = "cleared"

	case "e", "a":
		if m.busy {
			return m, nil
		}
		m.busy = true
		addToProject := msg.String() == "a"
		if addToProject {
			m.status = "rendering for project..."
		} else {
			m.status = "rendering..."
		}
		return m, m.exportCmd(addToProject)

	case "y":
		if err := m.copyText(m.sched.Pattern().String()); err != nil {
			m.status = "copy: " + err.Error()
		} else {
			m.status = "pattern copied"
		}
	case "p":
		m.status = m.paste()
	}
	return m, nil
}

func (m *model) setTempo(bpm float64) {
	bpm = beat.ClampBPM(bpm)
	if err := m.sched.SetTempo(bpm); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("tempo %g BPM", bpm)
}

func (m model) paste() string {
	text, err := m.pasteText()
	if err != nil {
		return "paste: " + err.Error()
	}
	p, err := beat.ParsePattern(text)
	if err != nil {
		return "paste: " + err.Error()
	}
	m.sched.ClearPattern()
	for _, s := range beat.Sounds() {
		steps, _ := p.Steps(s)
		for i, on := range steps {
			if on {
				if err := m.sched.SetStep(s, i, true); err != nil {
					return "paste: " + err.Error()
				}
			}
		}
	}
	return "pattern pasted"
}

// exportCmd renders a snapshot of the current pattern and tempo, writes it
// to the output directory and, for addToProject, registers it as a project
// named after the file.
func (m model) exportCmd(addToProject bool) tea.Cmd {
	pattern, bpm, at := m.sched.Pattern(), m.sched.Tempo(), m.now()
	opts := append([]render.Option{render.WithLogger(m.logger)}, m.renderOpts...)
	return func() tea.Msg {
		f, err := render.Export(pattern, bpm, at, opts...)
		if err != nil {
			return exportMsg{err: err}
		}
		if err := os.MkdirAll(m.outDir, 0o755); err != nil {
			return exportMsg{err: err}
		}
		path := filepath.Join(m.outDir, f.Filename)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return exportMsg{err: err}
		}
		m.logger.Info("exported beat", "path", path, "bpm", bpm, "bytes", len(f.Data))
		if !addToProject {
			return exportMsg{path: path}
		}
		p, err := m.backend.CreateProject(context.Background(), strings.TrimSuffix(f.Filename, ".wav"))
		if err != nil {
			return exportMsg{path: path, err: err}
		}
		return exportMsg{path: path, project: &p}
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	onStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	offStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	playheadStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	playing := m.sched.IsPlaying()
	state := "STOP"
	if playing {
		state = "PLAY"
	}
	playhead := -1
	if playing {
		playhead = m.sched.CurrentStep()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("thunderlab  %s  %3g BPM", state, m.sched.Tempo())))
	b.WriteString("\n\n")

	pattern := m.sched.Pattern()
	for r, s := range beat.Sounds() {
		b.WriteString(fmt.Sprintf("%-6s", s))
		for step := 0; step < beat.StepCount; step++ {
			if step > 0 && step%beat.StepsPerBeat == 0 {
				b.WriteString(" ")
			}
			cell := offStyle.Render("·")
			if pattern.IsActive(s, step) {
				cell = onStyle.Render("■")
			}
			switch {
			case r == m.row && step == m.col:
				cell = cursorStyle.Render(cell)
			case step == playhead:
				cell = playheadStyle.Render(cell)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}
