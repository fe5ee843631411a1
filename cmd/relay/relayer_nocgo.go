//go:build !cgo

package main

import (
	"github.com/wippyai/task-bridge/callbacks"
	"github.com/wippyai/task-bridge/errors"
)

func newCgoRelayer(callbacks.Func) (relayer, error) {
	return nil, errors.Unsupported(errors.PhaseRelay, "cgo backend requires CGO_ENABLED=1")
}
