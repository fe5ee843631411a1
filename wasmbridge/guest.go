package wasmbridge

const (
	sectionType     = 0x01
	sectionImport   = 0x02
	sectionFunction = 0x03
	sectionExport   = 0x07
	sectionCode     = 0x0a

	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b
)

// DefaultGuestExport is the forwarder exported by RelayGuest.
const DefaultGuestExport = "complete"

// RelayGuest builds a core wasm module that imports cfg's relay function
// and exports a function named export with the same signature which calls
// the import with its own arguments. It stands in for a native library
// compiled to wasm when driving the bridge from inside a guest.
func RelayGuest(cfg Config, export string) []byte {
	var wasm []byte

	// Magic and version
	wasm = append(wasm, 0x00, 0x61, 0x73, 0x6d)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00)

	// One type shared by the import and the forwarder
	var types []byte
	types = append(types, 0x01, 0x60)
	types = append(types, encodeULEB128(uint32(len(relayParams)))...)
	for _, t := range relayParams {
		types = append(types, valTypeToWasm(t))
	}
	types = append(types, 0x00)
	wasm = appendSection(wasm, sectionType, types)

	var imports []byte
	imports = append(imports, 0x01)
	imports = append(imports, encodeName(cfg.ModuleName)...)
	imports = append(imports, encodeName(cfg.FuncName)...)
	imports = append(imports, 0x00, 0x00) // func, type 0
	wasm = appendSection(wasm, sectionImport, imports)

	wasm = appendSection(wasm, sectionFunction, []byte{0x01, 0x00})

	var exports []byte
	exports = append(exports, 0x01)
	exports = append(exports, encodeName(export)...)
	exports = append(exports, 0x00, 0x01) // func, index 1 (after the import)
	wasm = appendSection(wasm, sectionExport, exports)

	var body []byte
	body = append(body, 0x00) // no locals
	for i := range relayParams {
		body = append(body, opLocalGet)
		body = append(body, encodeULEB128(uint32(i))...)
	}
	body = append(body, opCall, 0x00, opEnd)

	var code []byte
	code = append(code, 0x01)
	code = append(code, encodeULEB128(uint32(len(body)))...)
	code = append(code, body...)
	wasm = appendSection(wasm, sectionCode, code)

	return wasm
}
