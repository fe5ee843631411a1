package bridge

import (
	"strconv"
	"unsafe"
)

// Callback is the address of native code with the signature
//
//	void (*)(const void *token, int8_t status)
//
// It is owned by the bindings layer for the lifetime of one outstanding
// call. Nothing in this module stores or frees it.
type Callback unsafe.Pointer

// Token is an opaque, pointer-sized task identifier. It is never
// dereferenced or retained.
type Token uintptr

// Status is the completion code reported for a task. Its meaning belongs to
// the native async runtime; the relay never inspects it.
type Status int8

// Codes used by the uniffi foreign-executor ABI. Any other value is relayed
// the same way.
const (
	StatusSuccess   Status = 0
	StatusCancelled Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusCancelled:
		return "cancelled"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

func (t Token) String() string {
	return "0x" + strconv.FormatUint(uint64(t), 16)
}
