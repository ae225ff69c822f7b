// Package viz renders running models in the terminal. The live view
// steps a model a few grid points per frame and charts one variable as
// it evolves.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/climstep/climstep/internal/engine"
)

const (
	graphWidth    = 80
	graphHeight   = 14
	stepsPerFrame = 2
)

type TickMsg time.Time

// Live is the bubbletea model driving the live run view.
type Live struct {
	model    *engine.Model
	scenario string
	variable string
	units    string
	history  []float64
	running  bool
	err      error
}

// NewLive prepares a live view stepping the given model and charting
// one of its variables.
func NewLive(model *engine.Model, scenario, variable string) (*Live, error) {
	series := model.Collection().GetTimeseriesByName(variable)
	if series == nil {
		return nil, fmt.Errorf("viz: model has no variable %q", variable)
	}
	return &Live{
		model:    model,
		scenario: scenario,
		variable: variable,
		units:    series.Units(),
		history:  make([]float64, 0, model.TimeAxis().Len()),
		running:  true,
	}, nil
}

func (l *Live) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (l *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return l, tea.Quit
		case " ":
			l.running = !l.running
		}
	case TickMsg:
		if l.running && l.err == nil && !l.model.Finished() {
			l.advance()
		}
		return l, tick()
	}
	return l, nil
}

// advance steps the model and records the charted variable.
func (l *Live) advance() {
	for i := 0; i < stepsPerFrame && !l.model.Finished(); i++ {
		if err := l.model.Step(); err != nil {
			l.err = err
			return
		}
		value, ok, err := l.model.Collection().AtTime(l.variable, l.model.CurrentTime())
		if !ok || err != nil {
			continue
		}
		l.history = append(l.history, value)
	}
}

func (l *Live) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("climstep  %s", l.scenario)))
	b.WriteString("\n")

	switch {
	case l.err != nil:
		b.WriteString(StatusFailed.Render("FAILED"))
	case l.model.Finished():
		b.WriteString(StatusRunning.Render("DONE"))
	case l.running:
		b.WriteString(StatusRunning.Render("RUNNING"))
	default:
		b.WriteString(StatusPaused.Render("PAUSED"))
	}
	b.WriteString("\n\n")

	if len(l.history) >= 2 {
		graph := asciigraph.Plot(l.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(fmt.Sprintf("%s [%s]", l.variable, l.units)),
		)
		b.WriteString(GraphStyle.Render(graph))
		b.WriteString("\n\n")
	} else {
		b.WriteString(Subtle.Render("waiting for data..."))
		b.WriteString("\n\n")
	}

	total := l.model.TimeAxis().Len() - 1
	progress := 0.0
	if total > 0 {
		progress = float64(l.model.StepIndex()) / float64(total)
	}
	b.WriteString(ProgressBar(progress, graphWidth/2))
	b.WriteString("\n\n")

	b.WriteString(MetricLabel.Render("time"))
	b.WriteString(MetricValue.Render(fmt.Sprintf("%.2f", l.model.CurrentTime())))
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("step"))
	b.WriteString(MetricValue.Render(fmt.Sprintf("%d / %d", l.model.StepIndex(), total)))
	b.WriteString("\n")
	if len(l.history) > 0 {
		b.WriteString(MetricLabel.Render(l.variable))
		b.WriteString(MetricValue.Render(fmt.Sprintf("%.4f %s", l.history[len(l.history)-1], l.units)))
		b.WriteString("\n")
	}

	if l.err != nil {
		b.WriteString("\n")
		b.WriteString(StatusFailed.Render(l.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(KeyHint.Render("space pause/resume  q quit"))
	b.WriteString("\n")

	return b.String()
}

// Err reports the failure that stopped the run, if any.
func (l *Live) Err() error {
	return l.err
}
