// Package callbacks keeps Go completion functions behind integer handles.
//
// bridge.Forward covers native code that hands Go a C function pointer. Some
// callers can only carry an integer instead: a wasm guest calling the
// wasmbridge host trampoline, or a C API with a numeric userdata slot. For
// those, the bindings layer registers the Go function here and passes the
// handle along with the async request:
//
//	table := callbacks.NewTable()
//	h, err := table.Once(func(token bridge.Token, status bridge.Status) {
//	    results <- status
//	})
//
//	// later, from the relay:
//	if fn, ok := table.Get(h); ok {
//	    fn(token, status)
//	}
//
// Handle 0 is never issued. Released handles are reused. Once wraps a
// function so that its handle is released before the first call, which
// makes a duplicated notification a no-op.
//
// Observers receive EventRegistered and EventReleased. Metrics is an
// Observer that feeds Prometheus.
package callbacks
