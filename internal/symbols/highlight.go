package symbols

// Occurrence describes one symbol for highlighting: the declaration range
// and the start offsets of every other occurrence.
type Occurrence struct {
	Name       string
	Kind       SymbolKind
	DeclStart  uint32
	DeclEnd    uint32
	References []uint32
}

// OccurrenceSink consumes symbol occurrences.
type OccurrenceSink interface {
	Occurrence(o Occurrence)
}

// OccurrenceFunc adapts a function to OccurrenceSink.
type OccurrenceFunc func(o Occurrence)

func (f OccurrenceFunc) Occurrence(o Occurrence) { f(o) }

// Highlight emits one Occurrence per symbol in creation order. Symbols
// without declarations (built-in and implicit globals) use their first
// usage as the declaration range; it is not repeated as a reference.
func Highlight(m *Model, sink OccurrenceSink) {
	for i := range m.Symbols.Data() {
		sym := &m.Symbols.Data()[i]
		start, end, ok := m.DeclSpan(sym)
		if !ok {
			continue
		}
		usages := sym.Usages
		if len(sym.Decls) == 0 {
			usages = usages[1:]
		}
		refs := make([]uint32, 0, len(usages))
		for _, u := range usages {
			refs = append(refs, u.Span.Start)
		}
		sink.Occurrence(Occurrence{
			Name:       sym.Name,
			Kind:       sym.Kind,
			DeclStart:  start,
			DeclEnd:    end,
			References: refs,
		})
	}
}
