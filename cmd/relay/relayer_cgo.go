//go:build cgo

package main

import (
	"context"

	"github.com/wippyai/task-bridge/bridge"
	"github.com/wippyai/task-bridge/callbacks"
	"github.com/wippyai/task-bridge/internal/probe"
)

type cgoRelayer struct {
	restore func()
}

func newCgoRelayer(sink callbacks.Func) (*cgoRelayer, error) {
	return &cgoRelayer{restore: probe.SetSink(probe.Sink(sink))}, nil
}

func (r *cgoRelayer) Notify(_ context.Context, token bridge.Token, status bridge.Status) error {
	bridge.Forward(probe.Deliver(), token, status)
	return nil
}

func (r *cgoRelayer) Close(context.Context) error {
	r.restore()
	return nil
}
