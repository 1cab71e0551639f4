// Package token defines lexical token kinds and trivia for the sable front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Contextual words (let, of, get, set, from, as, static, yield, target)
//     are identifiers. The parser interprets them by Text.
//   - Comments and whitespace are leading Trivia of the next token and never
//     appear in the main token stream. Trivia after the last token belongs to EOF.
package token
