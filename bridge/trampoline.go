//go:build cgo

package bridge

/*
#include "bridge.h"

static inline void task_callback_forward(TaskCallback cb, uintptr_t token, int8_t status) {
	task_callback_bridge(cb, (const void *)token, status);
}
*/
import "C"

import "unsafe"

// Forward invokes cb(token, status) exactly once on the calling thread and
// returns after cb returns. Arguments are passed through unmodified.
//
// cb must be a live function matching the TaskCallback signature. Forward
// does not check it; a nil or stale callback is undefined behavior.
func Forward(cb Callback, token Token, status Status) {
	C.task_callback_forward(C.TaskCallback(unsafe.Pointer(cb)), C.uintptr_t(token), C.int8_t(status))
}
