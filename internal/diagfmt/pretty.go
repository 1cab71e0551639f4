package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sable/internal/check"
	"sable/internal/diag"
	"sable/internal/source"
)

const tabWidth = 4

type printer struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts

	errC, warnC, infoC, issueC, dimC, noteC *color.Color
}

func newPrinter(w io.Writer, fs *source.FileSet, opts PrettyOpts) *printer {
	p := &printer{
		w:      w,
		fs:     fs,
		opts:   opts,
		errC:   color.New(color.FgRed, color.Bold),
		warnC:  color.New(color.FgYellow, color.Bold),
		infoC:  color.New(color.FgCyan, color.Bold),
		issueC: color.New(color.FgMagenta, color.Bold),
		dimC:   color.New(color.FgBlue),
		noteC:  color.New(color.FgGreen),
	}
	// цвет задаётся опцией, а не глобальным color.NoColor
	for _, c := range []*color.Color{p.errC, p.warnC, p.infoC, p.issueC, p.dimC, p.noteC} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.errC
	case diag.SevWarning:
		return p.warnC
	default:
		return p.infoC
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPrinter(w, fs, opts)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		pos := f.Position(d.Primary.Start)
		label := p.sevColor(d.Severity).Sprintf("%s %s", strings.ToUpper(d.Severity.String()), d.Code.ID())
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", formatPath(fs, f, opts.PathMode), pos.Line, pos.Col, label, d.Message) //nolint:errcheck
		if d.Code == diag.ObsTimings {
			// JSON-нагрузка в заметках нужна только JSON-выводу
			continue
		}
		p.snippet(f, d.Primary, p.sevColor(d.Severity))
		if opts.ShowNotes {
			p.notes(d.Notes)
		}
	}
}

func (p *printer) notes(notes []diag.Note) {
	for _, n := range notes {
		nf := p.fs.Get(n.Span.File)
		npos := nf.Position(n.Span.Start)
		fmt.Fprintf(p.w, "  %s %s:%d:%d: %s\n", p.noteC.Sprint("note:"), formatPath(p.fs, nf, p.opts.PathMode), npos.Line, npos.Col, n.Msg) //nolint:errcheck
	}
}

// IssuesPretty prints check issues in the same layout as Pretty, with the
// check key in place of the diagnostic code. Secondary locations follow as
// notes.
func IssuesPretty(w io.Writer, issues []check.Issue, fs *source.FileSet, opts PrettyOpts) {
	p := newPrinter(w, fs, opts)
	for _, is := range issues {
		f := fs.Get(is.Location.Span.File)
		label := p.issueC.Sprintf("ISSUE %s", is.Check)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", formatPath(fs, f, opts.PathMode), is.Location.Line, is.Location.Col, label, is.Message) //nolint:errcheck
		p.snippet(f, is.Location.Span, p.issueC)
		for _, sec := range is.Secondaries {
			sf := fs.Get(sec.Span.File)
			msg := sec.Message
			if msg == "" {
				msg = "related location"
			}
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.noteC.Sprint("note:"), formatPath(fs, sf, opts.PathMode), sec.Line, sec.Col, msg) //nolint:errcheck
		}
	}
}

// snippet печатает строку начала span с контекстом и подчёркивание.
func (p *printer) snippet(f *source.File, sp source.Span, c *color.Color) {
	if len(f.Content) == 0 {
		return
	}
	start := f.Position(sp.Start)
	ctx := uint32(max(p.opts.Context, 0))
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := min(start.Line+ctx, uint32(f.LineCount()))
	gutter := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		line := f.GetLine(ln)
		fmt.Fprintf(p.w, " %s %s\n", p.dimC.Sprintf("%*d |", gutter, ln), expandTabs(line)) //nolint:errcheck
		if ln != start.Line {
			continue
		}
		// Col считается в символах, для среза строки нужен байтовый сдвиг
		col := int(sp.Start) - int(f.LineStart(ln))
		col = min(max(col, 0), len(line))
		// подчёркиваем только до конца строки
		end := col + max(int(sp.End)-int(sp.Start), 1)
		end = min(end, len(line))
		pad := runewidth.StringWidth(expandTabs(line[:col]))
		width := max(runewidth.StringWidth(expandTabs(line[col:end])), 1)
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(p.w, " %s %s%s\n", p.dimC.Sprintf("%*s |", gutter, ""), strings.Repeat(" ", pad), c.Sprint(marker)) //nolint:errcheck
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
