package fuzztests

import (
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для корпуса
)

// languageSeeds покрывают каждую группу грамматики хотя бы одним примером.
var languageSeeds = []string{
	"",
	"var a = 1, b = 'two', c = \"three\";\n",
	"function f(a, b = 2, ...rest) { return a + b + rest.length }\n",
	"let [x, , ...ys] = list; const {p, q: {r = 1}} = obj;\n",
	"class A extends B { constructor() { super(); } static s() {} get v() { return 1 } set v(x) {} *g() { yield* [] } }\n",
	"const add = (a, b) => a + b; const id = x => ({x});\n",
	"for (let i = 0; i < 10; i++) { continue } for (k in o) {} for (v of xs) {}\n",
	"label: while (true) { break label }\ndo { x-- } while (x)\n",
	"switch (k) { case 1: case 2: f(); break; default: g() }\n",
	"try { risky() } catch (e) { log(e) } finally { done() }\n",
	"var re = /a[/]b\\/c/gi, d = a / b / c;\n",
	"var t = `a ${b + `${c}`} d`, u = tag`x${y}z`;\n",
	"var n = [0x1F, 0o17, 0b101, 1e10, .5, 5., 012];\n",
	"a\n++b\nx = y\n(z)\n",
	"import d, {a as b, c} from 'm'; import * as ns from 'n';\nexport default function () {}\nexport {a, b as c}; export * from 'o';\n",
	"with (o) { debugger; }\nif (a == b) {} else if (c != d) {}\n",
	"var \\u0061bc = '\\u{1F600}', s = 'line\\\ncontinued';\n",
	"new new X()(); a?.b; x = function* () { yield }\n",
	"/* unterminated",
	"'unterminated",
	"`unterminated ${",
	"var x = ;",
	"{{{{{{{{{{",
	"((((((((((a))))))))))",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
