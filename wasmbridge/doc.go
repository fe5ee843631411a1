// Package wasmbridge provides the task callback trampoline for WebAssembly
// guests run by wazero.
//
// A guest cannot hand the host a Go function any more than C can. It can
// pass an integer. The bindings layer registers the Go completion function
// in a callbacks.Table and gives the handle to the guest together with the
// async request. When the task completes the guest calls one fixed host
// import:
//
//	(import "env" "task_callback_bridge" (func (param i32 i64 i32)))
//
// with (cb handle, token, status). The host resolves the handle and calls the
// function exactly once, synchronously, with the token and the low 8 bits of
// status unchanged. It neither logs nor validates on this path; an unknown
// handle traps the guest.
//
// # Usage
//
//	rt := wazero.NewRuntime(ctx)
//	defer rt.Close(ctx)
//
//	table := callbacks.NewTable()
//	if _, err := wasmbridge.New(table).Instantiate(ctx, rt); err != nil {
//	    return err
//	}
//
//	guest, err := rt.Instantiate(ctx, guestWasm)
//
// RelayGuest builds a minimal guest exporting a forwarder for the import,
// useful for exercising the bridge without a real library.
package wasmbridge
