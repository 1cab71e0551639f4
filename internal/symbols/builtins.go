package symbols

import (
	"slices"
	"sync"
)

// BuiltinKind describes what an ambient global is.
type BuiltinKind uint8

const (
	BuiltinValue BuiltinKind = iota + 1
	BuiltinFunction
	BuiltinConstructor
)

// BuiltinTable is the fixed set of ambient global names. It is built once
// per process and never modified afterwards, so it can be shared by
// concurrent resolutions.
type BuiltinTable struct {
	kinds map[string]BuiltinKind
	names []string
}

var (
	builtinsOnce sync.Once
	builtins     *BuiltinTable
)

// Builtins returns the process-wide ambient table. The first call
// initialises it; callers that analyse files concurrently should call it
// before starting workers.
func Builtins() *BuiltinTable {
	builtinsOnce.Do(func() {
		builtins = newBuiltinTable()
	})
	return builtins
}

// Has reports whether name is an ambient global.
func (b *BuiltinTable) Has(name string) bool {
	_, ok := b.kinds[name]
	return ok
}

// Kind returns the kind of an ambient global (0 if unknown).
func (b *BuiltinTable) Kind(name string) BuiltinKind { return b.kinds[name] }

// Names returns the sorted ambient names. The slice must not be modified.
func (b *BuiltinTable) Names() []string { return b.names }

func (b *BuiltinTable) Len() int { return len(b.names) }

func newBuiltinTable() *BuiltinTable {
	b := &BuiltinTable{kinds: make(map[string]BuiltinKind, 128)}
	add := func(kind BuiltinKind, names ...string) {
		for _, n := range names {
			b.kinds[n] = kind
		}
	}

	// ECMAScript 2015
	add(BuiltinValue, "Infinity", "NaN", "undefined", "Math", "JSON", "Reflect", "arguments")
	add(BuiltinFunction, "eval", "isFinite", "isNaN", "parseFloat", "parseInt",
		"decodeURI", "decodeURIComponent", "encodeURI", "encodeURIComponent", "escape", "unescape")
	add(BuiltinConstructor, "Object", "Function", "Array", "String", "Boolean", "Number",
		"Date", "RegExp", "Error", "EvalError", "RangeError", "ReferenceError", "SyntaxError",
		"TypeError", "URIError", "Symbol", "Map", "Set", "WeakMap", "WeakSet", "Promise",
		"Proxy", "ArrayBuffer", "DataView", "Int8Array", "Uint8Array", "Uint8ClampedArray",
		"Int16Array", "Uint16Array", "Int32Array", "Uint32Array", "Float32Array", "Float64Array")

	// браузер
	add(BuiltinValue, "window", "document", "navigator", "location", "history", "screen",
		"console", "localStorage", "sessionStorage", "self", "top", "parent", "frames", "opener")
	add(BuiltinFunction, "alert", "confirm", "prompt", "setTimeout", "clearTimeout",
		"setInterval", "clearInterval", "requestAnimationFrame", "cancelAnimationFrame",
		"atob", "btoa", "fetch", "addEventListener", "removeEventListener", "getComputedStyle")
	add(BuiltinConstructor, "XMLHttpRequest", "Image", "Event", "CustomEvent", "Element",
		"HTMLElement", "Node", "Blob", "File", "FileReader", "FormData", "URL", "WebSocket",
		"Worker", "Option", "Audio")

	b.names = make([]string, 0, len(b.kinds))
	for n := range b.kinds {
		b.names = append(b.names, n)
	}
	slices.Sort(b.names)
	return b
}
