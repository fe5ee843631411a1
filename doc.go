// Package taskbridge relays asynchronous task completions from native code
// into Go.
//
// Go cannot call a C function pointer it receives at run time. Native async
// runtimes (uniffi-generated bindings among them) report completion by
// handing out exactly such a pointer together with a task token and a status
// code. The packages here supply the one fixed-signature entry point Go can
// call, and forward to the real callback.
//
// # Architecture Overview
//
//	taskbridge/
//	├── bridge/        C trampoline task_callback_bridge and Forward (cgo)
//	├── callbacks/     Handle table for Go completion functions
//	├── wasmbridge/    The same trampoline as a wazero host function
//	├── config/        YAML/env configuration for the relay command
//	├── errors/        Structured error types for the supporting layers
//	└── cmd/relay/     Diagnostic CLI driving completions through a backend
//
// # Quick Start
//
// Forward a completion received from native code:
//
//	bridge.Forward(bridge.Callback(cb), bridge.Token(taskData), bridge.StatusSuccess)
//
// Or let a wasm guest report completions to Go functions:
//
//	table := callbacks.NewTable()
//	if _, err := wasmbridge.New(table).Instantiate(ctx, rt); err != nil {
//	    log.Fatal(err)
//	}
//	h, _ := table.Once(func(token bridge.Token, status bridge.Status) {
//	    done <- status
//	})
//	// pass h to the guest with the async request
package taskbridge
