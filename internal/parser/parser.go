package parser

import (
	"errors"
	"fmt"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

// Goal selects the top-level grammar.
type Goal uint8

const (
	// GoalAuto parses as a module when the file has an import or export
	// token outside of any brackets, otherwise as a script.
	GoalAuto Goal = iota
	GoalScript
	GoalModule
)

type Options struct {
	Goal     Goal
	Reporter diag.Reporter // может быть nil
	// MaxDiagnostics ограничивает Bag в ParseFile (0: без лимита).
	MaxDiagnostics int
}

// Result of ParseFile. Tree is nil when Err is set.
type Result struct {
	Tree *ast.Tree
	Bag  *diag.Bag
	Err  error
}

// Parser: состояние парсера на один файл
type Parser struct {
	file   *source.File
	toks   []token.Token
	pos    int
	b      *ast.Builder
	opts   Options
	module bool

	noIn  bool // в заголовке for: `in` не бинарный оператор
	inGen bool // внутри генератора `yield` является выражением
	depth int
}

// maxDepth bounds statement/expression nesting.
const maxDepth = 1500

// bailout несёт первую синтаксическую ошибку через panic до Parse.
type bailout struct{ err *SyntaxError }

// Parse builds the tree for an already tokenized file. The token slice must
// end with EOF. The first token sequence that matches no production aborts
// the whole file with a *SyntaxError; no tree is returned in that case.
func Parse(file *source.File, tokens []token.Token, opts Options) (tree *ast.Tree, err error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return nil, errors.New("parser: token stream must end with EOF")
	}
	p := &Parser{
		file: file,
		toks: tokens,
		b:    ast.NewBuilder(file, tokens),
		opts: opts,
	}
	switch opts.Goal {
	case GoalModule:
		p.module = true
	case GoalAuto:
		p.module = hasModuleItems(tokens)
	}

	defer func() {
		if r := recover(); r != nil {
			bo, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			tree, err = nil, bo.err
			if opts.Reporter != nil {
				d := bo.err.Diagnostic()
				diag.ReportError(opts.Reporter, d.Code, d.Primary, d.Message).Emit()
			}
		}
	}()

	root := p.parseProgram()
	return p.b.Finish(root), nil
}

// ParseFile tokenizes and parses file, collecting diagnostics into a Bag
// (and forwarding them to opts.Reporter when set).
func ParseFile(file *source.File, opts Options) Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	var rep diag.Reporter = diag.BagReporter{Bag: bag}
	if opts.Reporter != nil {
		rep = fanout{rep, opts.Reporter}
	}

	toks, err := lexer.TokenizeWith(file, lexer.Options{Reporter: rep})
	if err != nil {
		return Result{Bag: bag, Err: err}
	}
	opts.Reporter = rep
	tree, err := Parse(file, toks, opts)
	return Result{Tree: tree, Bag: bag, Err: err}
}

type fanout []diag.Reporter

func (f fanout) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	for _, r := range f {
		r.Report(code, sev, primary, msg, notes)
	}
}

// hasModuleItems ищет import/export в позиции начала инструкции верхнего
// уровня. Имена свойств (`api.import`, `{export: 1}`) не считаются.
func hasModuleItems(toks []token.Token) bool {
	depth := 0
	prev := token.EOF // EOF: начало файла
	for _, t := range toks {
		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace, token.TemplateHead:
			depth++
		case token.RParen, token.RBracket, token.RBrace, token.TemplateTail:
			depth--
		case token.KwImport, token.KwExport:
			if depth == 0 && atStatementStart(prev, t) {
				return true
			}
		}
		prev = t.Kind
	}
	return false
}

func atStatementStart(prev token.Kind, t token.Token) bool {
	switch prev {
	case token.Dot:
		return false
	case token.EOF, token.Semicolon, token.RBrace:
		return true
	}
	return t.NewlineBefore
}

// parseProgram: основной цикл верхнего уровня, item до EOF.
func (p *Parser) parseProgram() ast.NodeID {
	var items []ast.NodeID
	for !p.at(token.EOF) {
		items = append(items, p.parseModuleItem())
	}
	items = append(items, p.next()) // EOF leaf
	kind := ast.KindScript
	if p.module {
		kind = ast.KindModule
	}
	return p.b.Node(kind, items...)
}

// parseModuleItem: import/export только на верхнем уровне модуля.
func (p *Parser) parseModuleItem() ast.NodeID {
	switch p.peek().Kind {
	case token.KwImport, token.KwExport:
		if !p.module {
			p.failCode(diag.SynModuleItemInScript, fmt.Sprintf("'%s' is only allowed in a module", p.peek().Text))
		}
		if p.at(token.KwImport) {
			return p.parseImport()
		}
		return p.parseExport()
	}
	return p.parseStatement()
}
