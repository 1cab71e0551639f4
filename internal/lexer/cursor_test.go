package lexer

import (
	"testing"
	"unicode/utf8"

	"sable/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	// Читаем первый символ 'a'
	if cursor.EOF() {
		t.Error("Expected not EOF at start")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("Expected peek 'a', got %c", cursor.Peek())
	}
	b := cursor.Bump()
	if b != 'a' {
		t.Errorf("Expected bump 'a', got %c", b)
	}

	// Читаем символ новой строки '\n'
	if cursor.EOF() {
		t.Error("Expected not EOF after 'a'")
	}
	if cursor.Peek() != '\n' {
		t.Errorf("Expected peek '\\n', got %c", cursor.Peek())
	}
	b = cursor.Bump()
	if b != '\n' {
		t.Errorf("Expected bump '\\n', got %c", b)
	}

	// Читаем последний символ 'b'
	if cursor.EOF() {
		t.Error("Expected not EOF after '\\n'")
	}
	if cursor.Peek() != 'b' {
		t.Errorf("Expected peek 'b', got %c", cursor.Peek())
	}
	b = cursor.Bump()
	if b != 'b' {
		t.Errorf("Expected bump 'b', got %c", b)
	}

	// Проверяем EOF
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("Expected peek 0 at EOF, got %c", cursor.Peek())
	}
	b = cursor.Bump()
	if b != 0 {
		t.Errorf("Expected bump 0 at EOF, got %c", b)
	}
}

// TestPeek2 проверяет Peek2 на середине и конце файла
func TestPeek2(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	// Peek2 в начале файла
	b0, b1, ok := cursor.Peek2()
	if !ok {
		t.Error("Expected Peek2 to succeed at start")
	}
	if b0 != 'a' || b1 != 'b' {
		t.Errorf("Expected Peek2('a', 'b'), got ('%c', '%c')", b0, b1)
	}

	// Перемещаемся на середину
	cursor.Bump() // 'a'

	// Peek2 в середине файла
	b0, b1, ok = cursor.Peek2()
	if !ok {
		t.Error("Expected Peek2 to succeed in middle")
	}
	if b0 != 'b' || b1 != 'c' {
		t.Errorf("Expected Peek2('b', 'c'), got ('%c', '%c')", b0, b1)
	}

	// Перемещаемся к концу
	cursor.Bump() // 'b'

	// Peek2 в конце файла (должен вернуть false)
	b0, b1, ok = cursor.Peek2()
	if ok {
		t.Error("Expected Peek2 to fail at end")
	}
	if b0 != 0 || b1 != 0 {
		t.Errorf("Expected Peek2(0, 0) at end, got ('%c', '%c')", b0, b1)
	}
}

// TestSpanFromResolve проверяет SpanFrom и Resolve с UTF-8
func TestSpanFromResolve(t *testing.T) {
	// "α\nβ" (α=2 байта, \n=1 байт, β=2 байта)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte("α\nβ")))

	cursor := NewCursor(file)
	mark := cursor.Mark()
	cursor.Bump() // первый байт α
	cursor.Bump() // второй байт α

	span := cursor.SpanFrom(mark)
	if span.Start != 0 || span.End != 2 {
		t.Errorf("Expected span (0,2), got (%d,%d)", span.Start, span.End)
	}

	start, end := fs.Resolve(span)
	if want := (source.LineCol{Line: 1, Col: 1}); start != want {
		t.Errorf("Expected start %+v, got %+v", want, start)
	}
	// конец указывает на сам '\n', он ещё принадлежит первой строке;
	// α занимает два байта, но одну колонку
	if want := (source.LineCol{Line: 1, Col: 2}); end != want {
		t.Errorf("Expected end %+v, got %+v", want, end)
	}

	mark2 := cursor.Mark()
	cursor.Bump() // '\n'
	span2 := cursor.SpanFrom(mark2)
	if span2.Start != 2 || span2.End != 3 {
		t.Errorf("Expected span2 (2,3), got (%d,%d)", span2.Start, span2.End)
	}
	_, end2 := fs.Resolve(span2)
	if want := (source.LineCol{Line: 2, Col: 1}); end2 != want {
		t.Errorf("Expected end2 %+v, got %+v", want, end2)
	}
}

// TestHasPrefixSkip проверяет HasPrefix и Skip у границы файла
func TestHasPrefixSkip(t *testing.T) {
	cursor := NewCursor(createFile("/*x*/"))
	if !cursor.HasPrefix("/*") || cursor.HasPrefix("//") {
		t.Fatal("HasPrefix mismatch at start")
	}
	cursor.Skip(3)
	if !cursor.HasPrefix("*/") {
		t.Fatal("expected */ after skipping 3 bytes")
	}
	cursor.Skip(10)
	if !cursor.EOF() || cursor.HasPrefix("") {
		t.Fatal("Skip must stop at the limit")
	}
}

func TestEatMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	m := cursor.Mark()
	if cursor.Eat('x') || !cursor.Eat('a') || !cursor.Eat('b') || cursor.Eat('b') {
		t.Fatalf("Eat sequence mismatch at offset %d", cursor.Off)
	}
	if !cursor.EOF() {
		t.Fatalf("want EOF after eating the input")
	}
	cursor.Reset(m)
	if cursor.Peek() != 'a' {
		t.Fatalf("Reset: peek = %q, want 'a'", cursor.Peek())
	}
	cursor.Skip(100)
	if !cursor.EOF() || cursor.Off != 2 {
		t.Fatalf("Skip past end: off = %d", cursor.Off)
	}
}

// Терминаторы JS: LF, CR, CRLF как один, LS и PS.
func TestTerminator(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"\n", 1},
		{"\r", 1},
		{"\r\n", 2},
		{"\u2028", 3},
		{"\u2029", 3},
		{"\u2027", 0},
		{"x", 0},
		{"", 0},
	}
	for _, tt := range tests {
		cursor := NewCursor(createFile(tt.src))
		if got := cursor.Terminator(); got != tt.want {
			t.Errorf("Terminator(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}

func TestPeekRune(t *testing.T) {
	cursor := NewCursor(createFile("aж\xff"))
	want := []struct {
		r    rune
		size int
	}{{'a', 1}, {'ж', 2}, {utf8.RuneError, 1}, {utf8.RuneError, 0}}
	for i, w := range want {
		r, size := cursor.PeekRune()
		if r != w.r || size != w.size {
			t.Fatalf("step %d: PeekRune = %q/%d, want %q/%d", i, r, size, w.r, w.size)
		}
		cursor.BumpRune()
	}
}
