package engine

import (
	"fmt"

	"github.com/climstep/climstep/internal/interpolate"
	"github.com/climstep/climstep/internal/timeseries"
)

type registeredComponent struct {
	name      string
	component Component
}

// ModelBuilder assembles a Model from a time axis, exogenous forcing
// series, and an ordered set of components. All wiring validation
// happens in Build; a Model that builds successfully cannot fail a run
// with a missing variable.
type ModelBuilder struct {
	axis       *timeseries.TimeAxis
	exogenous  []timeseries.Item
	components []registeredComponent
	initial    map[string]float64
}

// NewModelBuilder returns an empty builder.
func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{initial: make(map[string]float64)}
}

// WithTimeAxis sets the axis that drives the step loop. Endogenous
// series are allocated on this axis.
func (b *ModelBuilder) WithTimeAxis(axis *timeseries.TimeAxis) *ModelBuilder {
	b.axis = axis
	return b
}

// WithExogenous registers an externally supplied forcing series. The
// series may live on its own time grid; reads interpolate onto the
// model axis.
func (b *ModelBuilder) WithExogenous(name string, series *timeseries.Timeseries) *ModelBuilder {
	b.exogenous = append(b.exogenous, timeseries.Item{
		Name:       name,
		Timeseries: series,
		Type:       timeseries.Exogenous,
	})
	return b
}

// WithComponent registers a component under a diagnostic name.
// Components are solved in registration order.
func (b *ModelBuilder) WithComponent(name string, c Component) *ModelBuilder {
	b.components = append(b.components, registeredComponent{name: name, component: c})
	return b
}

// WithInitialValue assigns a starting value (written at the first grid
// point) to an endogenous variable. Components that declare a variable
// as InputAndOutput need one to be resolvable at the first step.
func (b *ModelBuilder) WithInitialValue(name string, value float64) *ModelBuilder {
	b.initial[name] = value
	return b
}

// Build validates the wiring and produces a ready-to-run Model.
//
// Validation covers, in order: a present time axis, unique output
// declarations, no component writing an exogenous variable, every
// input resolvable (exogenous or some component's output), and unit
// equality between each requirement and the series it resolved to.
func (b *ModelBuilder) Build() (*Model, error) {
	if b.axis == nil {
		return nil, fmt.Errorf("%w: no time axis", ErrInvalidModel)
	}

	collection := timeseries.NewCollection()
	for _, item := range b.exogenous {
		collection.AddTimeseries(item.Name, item.Timeseries, timeseries.Exogenous)
	}

	// Allocate an endogenous series for every declared output.
	producers := make(map[string]string)
	for _, rc := range b.components {
		for _, def := range rc.component.Definitions() {
			if !def.Type.IsOutput() {
				continue
			}
			if vtype, ok := collection.VariableType(def.Name); ok && vtype == timeseries.Exogenous {
				return nil, fmt.Errorf("%w: component %q writes %q which is exogenous forcing",
					ErrInvalidModel, rc.name, def.Name)
			}
			if first, ok := producers[def.Name]; ok {
				return nil, &DuplicateOutputError{Variable: def.Name, First: first, Second: rc.name}
			}
			producers[def.Name] = rc.name
			collection.AddTimeseries(def.Name,
				timeseries.NewEmpty(b.axis, def.Units, interpolate.Linear{}),
				timeseries.Endogenous)
		}
	}

	// Every input must now be present, with matching units.
	for _, rc := range b.components {
		for _, def := range rc.component.Definitions() {
			if def.Type.IsInput() && !collection.Has(def.Name) {
				return nil, &UnsatisfiedRequirementError{Component: rc.name, Variable: def.Name}
			}
			series := collection.GetTimeseriesByName(def.Name)
			if series.Units() != def.Units {
				return nil, &UnitMismatchError{
					Component: rc.name,
					Variable:  def.Name,
					Expected:  def.Units,
					Actual:    series.Units(),
				}
			}
		}
	}

	for name, value := range b.initial {
		vtype, ok := collection.VariableType(name)
		if !ok || vtype != timeseries.Endogenous {
			return nil, fmt.Errorf("%w: initial value for %q does not match any endogenous variable",
				ErrInvalidModel, name)
		}
		if err := collection.SetValue(name, 0, value); err != nil {
			return nil, err
		}
	}

	return &Model{
		axis:       b.axis,
		collection: collection,
		components: b.components,
	}, nil
}

// Model owns a time axis, a timeseries collection, and an ordered list
// of components, and drives the step loop between them.
type Model struct {
	axis       *timeseries.TimeAxis
	collection *timeseries.TimeseriesCollection
	components []registeredComponent
	timeIndex  int
}

// TimeAxis returns the axis driving the run.
func (m *Model) TimeAxis() *timeseries.TimeAxis {
	return m.axis
}

// Collection returns the model's timeseries collection. Reads hand out
// clones; the model remains the only writer during a run.
func (m *Model) Collection() *timeseries.TimeseriesCollection {
	return m.collection
}

// CurrentTime returns the time value at the current step index.
func (m *Model) CurrentTime() float64 {
	t, err := m.axis.At(m.timeIndex)
	if err != nil {
		// Finished runs sit on the last grid point.
		return m.axis.Last()
	}
	return t
}

// StepIndex returns the number of completed steps.
func (m *Model) StepIndex() int {
	return m.timeIndex
}

// Finished reports whether the run has reached the end of the axis.
func (m *Model) Finished() bool {
	return m.timeIndex >= m.axis.Len()-1
}

// Step advances the simulation by one step: inputs are resolved at
// t_current for each component in registration order, the component is
// solved over [t_current, t_next), and declared outputs are written at
// t_next. The first failure aborts the step; no retry, no rollback.
func (m *Model) Step() error {
	if m.Finished() {
		return fmt.Errorf("%w: model already ran to %v", ErrInvalidModel, m.axis.Last())
	}

	tCurrent, err := m.axis.At(m.timeIndex)
	if err != nil {
		return err
	}
	tNext, err := m.axis.At(m.timeIndex + 1)
	if err != nil {
		return err
	}

	for _, rc := range m.components {
		input, err := m.gatherInputs(rc, tCurrent)
		if err != nil {
			return err
		}

		output, err := rc.component.Solve(tCurrent, tNext, input)
		if err != nil {
			return &SolveError{Component: rc.name, TCurrent: tCurrent, TNext: tNext, Wrapped: err}
		}

		for _, def := range rc.component.Definitions() {
			if !def.Type.IsOutput() {
				continue
			}
			value, ok := output[def.Name]
			if !ok {
				return &SolveError{
					Component: rc.name,
					TCurrent:  tCurrent,
					TNext:     tNext,
					Wrapped:   fmt.Errorf("output state is missing declared output %q", def.Name),
				}
			}
			if err := m.collection.SetValue(def.Name, m.timeIndex+1, value); err != nil {
				return err
			}
		}
	}

	m.timeIndex++
	return nil
}

// Run steps the model until the end of the time axis, stopping at the
// first error.
func (m *Model) Run() error {
	for !m.Finished() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) gatherInputs(rc registeredComponent, tCurrent float64) (InputState, error) {
	input := make(InputState)
	for _, def := range rc.component.Definitions() {
		if !def.Type.IsInput() {
			continue
		}
		value, ok, err := m.collection.AtTime(def.Name, tCurrent)
		if !ok {
			// Build validation guarantees presence; reaching this is an
			// internal invariant violation.
			return nil, &UnsatisfiedRequirementError{Component: rc.name, Variable: def.Name}
		}
		if err != nil {
			return nil, fmt.Errorf("engine: resolving %q for component %q at t=%v: %w",
				def.Name, rc.name, tCurrent, err)
		}
		input[def.Name] = value
	}
	return input, nil
}
