// Package components provides the native physical components that ship
// with the engine.
//
// Each component implements [engine.Component], owns an immutable
// parameter set validated at construction, and solves its physics over
// one model step:
//
//   - [TwoLayer]: two-layer energy-balance model (surface and deep
//     ocean temperature response to radiative forcing)
//   - [CO2ERF]: logarithmic CO2 effective-radiative-forcing relation
//   - [CarbonCycle]: one-box carbon cycle with temperature-sensitive
//     uptake
//
// Components that integrate ODEs use [ivp] internally with an RK4
// stepper; the internal step size is decoupled from the model's time
// axis, so coarse scenario grids still get accurate physics.
//
// State variables (temperatures, concentrations, cumulative stocks) are
// declared InputAndOutput: the component reads its own previous value at
// t_current and writes the advanced value at t_next. Models must provide
// initial values for them.
package components
