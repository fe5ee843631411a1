// Package errors provides structured error types for the task bridge.
//
// The relay functions themselves (bridge.Forward and the wasm host
// trampoline) define no errors. Errors come from the supporting layers:
// registering callbacks, binding the host module, loading configuration.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category):
//
//	err := errors.New(errors.PhaseInstantiate, errors.KindInstantiation).
//		Module("env").
//		Func("task_callback_bridge").
//		Cause(werr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseConfig, "module name cannot be empty")
//	err := errors.NotFound(errors.PhaseRelay, "callback", "17")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
