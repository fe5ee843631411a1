// Package bridge relays task completion notifications from a native async
// runtime back into Go.
//
// # Why a trampoline
//
// A native library reports that a task finished by handing Go a completion
// callback: a C function pointer plus the task token and a status code. cgo
// can call C functions by name but cannot call a function pointer value, so
// Go has no direct way to invoke that callback.
//
// This package links a single C function with a fixed signature,
//
//	void task_callback_bridge(TaskCallback cb, const void *token, int8_t status);
//
// whose only job is to call cb(token, status). Go calls it by name through
// Forward and passes the real destination as an argument:
//
//	// cb, token and status arrive from the native runtime
//	bridge.Forward(bridge.Callback(cb), bridge.Token(token), bridge.StatusSuccess)
//
// The declaration lives in bridge.h so generated bindings can reference the
// same symbol and TaskCallback typedef.
//
// # Guarantees
//
// Forward calls the callback exactly once, synchronously, on the calling
// thread, with the token and status bit-for-bit unchanged. It keeps no state
// and may be called concurrently from any number of goroutines or native
// threads. It never logs, retries, validates or deduplicates. Cancellation is
// just another Status value.
//
// Forward is only available when cgo is enabled. The Callback, Token and
// Status types are always available so that code running without cgo (such
// as the wasmbridge host trampoline) can share them.
package bridge
