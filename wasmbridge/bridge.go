package wasmbridge

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/task-bridge/bridge"
	"github.com/wippyai/task-bridge/callbacks"
	"github.com/wippyai/task-bridge/errors"
)

// Signature of the relay: (cb i32, token i64, status i32) -> ().
var relayParams = []api.ValueType{api.ValueTypeI32, api.ValueTypeI64, api.ValueTypeI32}

// Bridge is the host side of the wasm trampoline. It resolves callback
// handles against a callbacks.Table.
type Bridge struct {
	table *callbacks.Table
	cfg   Config
}

// New creates a bridge dispatching into table.
func New(table *callbacks.Table, opts ...Option) *Bridge {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bridge{table: table, cfg: cfg}
}

// Config returns the bridge configuration.
func (b *Bridge) Config() Config {
	return b.cfg
}

// Instantiate defines the host module in rt. Guests must be instantiated
// afterwards so their import resolves.
func (b *Bridge) Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	if b.table == nil {
		return nil, errors.InvalidInput(errors.PhaseBind, "callback table cannot be nil")
	}
	if b.cfg.ModuleName == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "module name cannot be empty")
	}
	if b.cfg.FuncName == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "function name cannot be empty")
	}
	if rt.Module(b.cfg.ModuleName) != nil {
		return nil, errors.New(errors.PhaseInstantiate, errors.KindInstantiation).
			Module(b.cfg.ModuleName).
			Detail("module already instantiated").
			Build()
	}

	mod, err := rt.NewHostModuleBuilder(b.cfg.ModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(b.relay), relayParams, nil).
		WithParameterNames("cb", "token", "status").
		Export(b.cfg.FuncName).
		Instantiate(ctx)
	if err != nil {
		return nil, errors.Instantiation(b.cfg.ModuleName, err)
	}

	Logger().Debug("task bridge instantiated",
		zap.String("module", b.cfg.ModuleName),
		zap.String("func", b.cfg.FuncName))
	return mod, nil
}

// relay calls the function registered under cb exactly once with the token
// and status unchanged. The status is the low 8 bits of the i32. An unknown
// handle panics, which wazero surfaces to the guest as a trap.
func (b *Bridge) relay(_ context.Context, _ api.Module, stack []uint64) {
	fn, _ := b.table.Get(callbacks.Handle(api.DecodeU32(stack[0])))
	fn(bridge.Token(stack[1]), bridge.Status(int8(api.DecodeI32(stack[2]))))
}
