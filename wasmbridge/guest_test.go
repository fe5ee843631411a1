package wasmbridge

import (
	"bytes"
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

var testMagicVersion = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestRelayGuest_Header(t *testing.T) {
	wasm := RelayGuest(DefaultConfig(), DefaultGuestExport)
	if !bytes.HasPrefix(wasm, testMagicVersion) {
		t.Fatal("expected valid WASM header")
	}
}

func TestRelayGuest_ImportsAndExports(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, RelayGuest(DefaultConfig(), "notify"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	defer compiled.Close(ctx)

	imports := compiled.ImportedFunctions()
	if len(imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(imports))
	}
	mod, name, ok := imports[0].Import()
	if !ok || mod != DefaultModuleName || name != DefaultFuncName {
		t.Errorf("import = %s.%s", mod, name)
	}

	exp, ok := compiled.ExportedFunctions()["notify"]
	if !ok {
		t.Fatal("expected notify export")
	}
	want := []api.ValueType{api.ValueTypeI32, api.ValueTypeI64, api.ValueTypeI32}
	got := exp.ParamTypes()
	if len(got) != len(want) {
		t.Fatalf("params = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(exp.ResultTypes()) != 0 {
		t.Errorf("unexpected results %v", exp.ResultTypes())
	}
}

func TestEncodeULEB128(t *testing.T) {
	tests := []struct {
		expected []byte
		input    uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
	}

	for _, tt := range tests {
		if got := encodeULEB128(tt.input); !bytes.Equal(got, tt.expected) {
			t.Errorf("encodeULEB128(%d) = %x, want %x", tt.input, got, tt.expected)
		}
	}
}

func TestEncodeName(t *testing.T) {
	got := encodeName("env")
	want := []byte{0x03, 'e', 'n', 'v'}
	if !bytes.Equal(got, want) {
		t.Errorf("encodeName(env) = %x, want %x", got, want)
	}
}
