// Package engine couples independently authored model components into a
// single time-stepped simulation.
//
// The package defines the contract between a model and its parts:
//
//   - [RequirementDefinition]: a named, unit-tagged declaration of what a
//     component reads (Input), writes (Output), or both
//   - [Component]: anything that can declare requirements and solve one
//     time step
//   - [ComponentFunc]: adapter turning a plain solve function into a
//     Component, the seam for user-supplied physics
//   - [ModelBuilder] / [Model]: wiring validation and the step loop
//
// # Example
//
//	model, err := engine.NewModelBuilder().
//	    WithTimeAxis(axis).
//	    WithExogenous("Effective Radiative Forcing", forcing).
//	    WithComponent("two layer", twoLayer).
//	    Build()
//	if err != nil { ... }
//	err = model.Run()
//
// # Ordering
//
// Components are solved in registration order within each step. A
// component may consume another's output in the same step only if that
// component was registered earlier; no topological ordering is computed.
// This keeps evaluation order under the caller's explicit control.
//
// # Thread safety
//
// A Model is not safe for concurrent use. Series handed out by its
// collection are clones, so reading them from other goroutines while a
// run is in progress is safe but observes a snapshot.
package engine
