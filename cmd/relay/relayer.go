package main

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/task-bridge/bridge"
	"github.com/wippyai/task-bridge/callbacks"
	"github.com/wippyai/task-bridge/config"
	"github.com/wippyai/task-bridge/errors"
	"github.com/wippyai/task-bridge/wasmbridge"
)

// relayer pushes one completion through a backend. Every delivery reaches
// the sink the relayer was created with.
type relayer interface {
	Notify(ctx context.Context, token bridge.Token, status bridge.Status) error
	Close(ctx context.Context) error
}

func newRelayer(ctx context.Context, cfg config.Config, sink callbacks.Func, reg prometheus.Registerer) (relayer, error) {
	switch cfg.Backend {
	case config.BackendCgo:
		return newCgoRelayer(sink)
	case config.BackendWasm:
		return newWasmRelayer(ctx, cfg, sink, reg)
	default:
		return nil, errors.InvalidConfig("backend", cfg.Backend, "must be cgo or wasm")
	}
}

type wasmRelayer struct {
	rt       wazero.Runtime
	table    *callbacks.Table
	complete api.Function
	handle   callbacks.Handle
	mu       sync.Mutex
}

func newWasmRelayer(ctx context.Context, cfg config.Config, sink callbacks.Func, reg prometheus.Registerer) (*wasmRelayer, error) {
	table := callbacks.NewTable()
	metrics, err := callbacks.NewMetrics(reg)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRelay, errors.KindRegistration, err, "register metrics")
	}
	table.Subscribe(metrics)

	handle, err := table.Register(sink)
	if err != nil {
		return nil, err
	}

	rt := wazero.NewRuntime(ctx)
	b := wasmbridge.New(table,
		wasmbridge.WithModuleName(cfg.Module),
		wasmbridge.WithFuncName(cfg.Func))
	if _, err := b.Instantiate(ctx, rt); err != nil {
		rt.Close(ctx)
		return nil, err
	}

	guest, err := rt.InstantiateWithConfig(ctx,
		wasmbridge.RelayGuest(b.Config(), wasmbridge.DefaultGuestExport),
		wazero.NewModuleConfig().WithName("guest"))
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Instantiation("guest", err)
	}

	return &wasmRelayer{
		rt:       rt,
		table:    table,
		complete: guest.ExportedFunction(wasmbridge.DefaultGuestExport),
		handle:   handle,
	}, nil
}

func (r *wasmRelayer) Notify(ctx context.Context, token bridge.Token, status bridge.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.complete.Call(ctx, uint64(r.handle), uint64(token), api.EncodeI32(int32(status)))
	if err != nil {
		return errors.Wrap(errors.PhaseRelay, errors.KindInvalidInput, err, "guest complete")
	}
	return nil
}

func (r *wasmRelayer) Close(ctx context.Context) error {
	r.table.Close()
	return r.rt.Close(ctx)
}
