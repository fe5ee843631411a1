//go:build cgo

// Package probe provides native completion callbacks for exercising
// bridge.Forward without a real async runtime.
//
// Deliver returns a C callback that hands every (token, status) pair to the
// installed Go Sink. Tally returns a C callback that never enters Go: it
// counts invocations and keeps the last pair in C atomics.
package probe

/*
#include <stdint.h>

typedef void (*probe_cb)(const void *token, int8_t status);

void probe_deliver(const void *token, int8_t status);
void probe_tally(const void *token, int8_t status);
int64_t probe_tally_count(void);
uintptr_t probe_tally_token(void);
int8_t probe_tally_status(void);
void probe_tally_reset(void);
*/
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/task-bridge/bridge"
)

// Sink receives pairs delivered through the Deliver callback.
type Sink func(token bridge.Token, status bridge.Status)

var sink atomic.Pointer[Sink]

// SetSink installs s as the receiver for Deliver and returns a function
// restoring the previous sink. A nil sink drops deliveries.
func SetSink(s Sink) (restore func()) {
	var next *Sink
	if s != nil {
		next = &s
	}
	prev := sink.Swap(next)
	return func() { sink.Store(prev) }
}

// Deliver returns the native callback that forwards into the current Sink.
func Deliver() bridge.Callback {
	return bridge.Callback(unsafe.Pointer(C.probe_cb(C.probe_deliver)))
}

// Tally returns the native callback that only counts.
func Tally() bridge.Callback {
	return bridge.Callback(unsafe.Pointer(C.probe_cb(C.probe_tally)))
}

// TallyCount returns how many times the Tally callback ran since the last
// ResetTally.
func TallyCount() int64 {
	return int64(C.probe_tally_count())
}

// TallyLast returns the most recent pair seen by the Tally callback.
func TallyLast() (bridge.Token, bridge.Status) {
	return bridge.Token(C.probe_tally_token()), bridge.Status(C.probe_tally_status())
}

// ResetTally zeroes the Tally counters.
func ResetTally() {
	C.probe_tally_reset()
}

//export goProbeDeliver
func goProbeDeliver(token C.uintptr_t, status C.int8_t) {
	if s := sink.Load(); s != nil {
		(*s)(bridge.Token(token), bridge.Status(status))
	}
}
