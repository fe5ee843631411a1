package wasmbridge

import (
	"github.com/tetratelabs/wazero/api"
)

// encodeULEB128 encodes an unsigned value in LEB128 format.
func encodeULEB128(v uint32) []byte {
	var result []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		result = append(result, b)
		if v == 0 {
			break
		}
	}
	return result
}

// encodeName encodes a length-prefixed UTF-8 name.
func encodeName(s string) []byte {
	out := encodeULEB128(uint32(len(s)))
	return append(out, s...)
}

// valTypeToWasm converts a wazero value type to its binary encoding.
func valTypeToWasm(t api.ValueType) byte {
	switch t {
	case api.ValueTypeI32:
		return 0x7f
	case api.ValueTypeI64:
		return 0x7e
	case api.ValueTypeF32:
		return 0x7d
	case api.ValueTypeF64:
		return 0x7c
	default:
		return 0x7f
	}
}

func appendSection(wasm []byte, id byte, content []byte) []byte {
	wasm = append(wasm, id)
	wasm = append(wasm, encodeULEB128(uint32(len(content)))...)
	return append(wasm, content...)
}
