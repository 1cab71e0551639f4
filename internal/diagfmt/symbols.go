package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sable/internal/source"
	"sable/internal/symbols"
)

// OccurrenceOutput is one highlighted symbol with resolved positions.
type OccurrenceOutput struct {
	Name       string           `json:"name"`
	Kind       string           `json:"kind"`
	Decl       LocationJSON     `json:"declaration"`
	References []source.LineCol `json:"references,omitempty"`
}

func buildOccurrence(f *source.File, o symbols.Occurrence) OccurrenceOutput {
	start, end := f.Position(o.DeclStart), f.LastPosition(o.DeclStart, o.DeclEnd)
	out := OccurrenceOutput{
		Name: o.Name,
		Kind: o.Kind.String(),
		Decl: LocationJSON{
			File:      f.Path,
			StartByte: o.DeclStart,
			EndByte:   o.DeclEnd,
			StartLine: start.Line,
			StartCol:  start.Col,
			EndLine:   end.Line,
			EndCol:    end.Col,
		},
	}
	for _, ref := range o.References {
		out.References = append(out.References, f.Position(ref))
	}
	return out
}

// FormatOccurrencesPretty prints one line per symbol:
// name kind line:col-line:col -> line:col, ...
func FormatOccurrencesPretty(w io.Writer, f *source.File, occ []symbols.Occurrence) error {
	for _, o := range occ {
		oc := buildOccurrence(f, o)
		refs := make([]string, len(oc.References))
		for i, r := range oc.References {
			refs[i] = fmt.Sprintf("%d:%d", r.Line, r.Col)
		}
		line := fmt.Sprintf("%-20s %-10s %d:%d-%d:%d", oc.Name, oc.Kind, oc.Decl.StartLine, oc.Decl.StartCol, oc.Decl.EndLine, oc.Decl.EndCol)
		if len(refs) > 0 {
			line += " -> " + strings.Join(refs, ", ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatOccurrencesJSON encodes the occurrences of one file.
func FormatOccurrencesJSON(w io.Writer, f *source.File, occ []symbols.Occurrence) error {
	out := make([]OccurrenceOutput, len(occ))
	for i, o := range occ {
		out[i] = buildOccurrence(f, o)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
