// Package fuzztests houses Go fuzz harnesses for the front of the analysis
// pipeline (source -> lexer -> parser -> symbols). They guard against panics,
// hangs and broken tree invariants on arbitrary input.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, парсер и резолвер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/symbols, internal/diag, internal/testkit.
package fuzztests
