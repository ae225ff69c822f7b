package engine

// RequirementType describes the role a variable plays for a component.
type RequirementType int

const (
	// Input variables are read at the start of each step.
	Input RequirementType = iota
	// Output variables are written at the end of each step.
	Output
	// InputAndOutput variables are both read and written; this is how a
	// component carries its own state forward between steps.
	InputAndOutput
)

func (rt RequirementType) String() string {
	switch rt {
	case Input:
		return "input"
	case Output:
		return "output"
	case InputAndOutput:
		return "input and output"
	default:
		return "unknown"
	}
}

// IsInput reports whether the variable is read by the component.
func (rt RequirementType) IsInput() bool {
	return rt == Input || rt == InputAndOutput
}

// IsOutput reports whether the variable is written by the component.
func (rt RequirementType) IsOutput() bool {
	return rt == Output || rt == InputAndOutput
}

// RequirementDefinition declares a variable a component reads and/or
// writes, with its expected unit. Units are free-form strings compared
// for equality only; a mismatch at model build time is an error, never
// an automatic conversion.
type RequirementDefinition struct {
	Name  string
	Units string
	Type  RequirementType
}

// NewRequirement builds a RequirementDefinition.
func NewRequirement(name, units string, rt RequirementType) RequirementDefinition {
	return RequirementDefinition{Name: name, Units: units, Type: rt}
}

// InputState carries the resolved input values for one solve step.
type InputState map[string]float64

// Get returns the value for name, or zero if absent. Use Has when a
// variable may legitimately be missing.
func (s InputState) Get(name string) float64 {
	return s[name]
}

// Has reports whether name was resolved into the state.
func (s InputState) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// OutputState carries the values a component produced for one step.
type OutputState map[string]float64

// Component is a unit of model physics. Implementations must be pure
// functions of (tCurrent, tNext, input): they hold parameters but no
// reference to the model's collection, and must not retain input between
// calls.
type Component interface {
	// Definitions declares every variable the component reads or writes.
	Definitions() []RequirementDefinition

	// Solve advances the component from tCurrent to tNext. The returned
	// state must contain a value for every declared output.
	Solve(tCurrent, tNext float64, input InputState) (OutputState, error)
}

// InputNames returns the names a component reads, in declaration order.
func InputNames(c Component) []string {
	var names []string
	for _, def := range c.Definitions() {
		if def.Type.IsInput() {
			names = append(names, def.Name)
		}
	}
	return names
}

// OutputNames returns the names a component writes, in declaration order.
func OutputNames(c Component) []string {
	var names []string
	for _, def := range c.Definitions() {
		if def.Type.IsOutput() {
			names = append(names, def.Name)
		}
	}
	return names
}

// SolveFunc is the signature user-supplied solve logic must satisfy.
type SolveFunc func(tCurrent, tNext float64, input InputState) (OutputState, error)

// ComponentFunc adapts externally defined solve logic to the Component
// contract. It is the supported way to plug custom physics into a model
// without implementing a full component type.
type ComponentFunc struct {
	defs  []RequirementDefinition
	solve SolveFunc
}

// NewComponentFunc wraps defs and fn as a Component.
func NewComponentFunc(defs []RequirementDefinition, fn SolveFunc) *ComponentFunc {
	return &ComponentFunc{defs: defs, solve: fn}
}

func (c *ComponentFunc) Definitions() []RequirementDefinition {
	defs := make([]RequirementDefinition, len(c.defs))
	copy(defs, c.defs)
	return defs
}

func (c *ComponentFunc) Solve(tCurrent, tNext float64, input InputState) (OutputState, error) {
	return c.solve(tCurrent, tNext, input)
}
