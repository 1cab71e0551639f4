package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token, including contextual keywords.
	Ident

	// reserved words (ES2015, sloppy mode)
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDebugger
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEnum
	KwExport
	KwExtends
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwNew
	KwReturn
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTry
	KwTypeof
	KwVar
	KwVoid
	KwWhile
	KwWith
	KwNull
	KwTrue
	KwFalse

	// NumberLit represents any numeric literal (decimal, hex, octal, binary).
	NumberLit
	// StringLit represents a single or double quoted string literal.
	StringLit
	// RegExpLit represents a regular expression literal with its flags.
	RegExpLit
	// NoSubstTemplate is a template literal without substitutions: `abc`.
	NoSubstTemplate
	// TemplateHead is the part of a template up to the first `${`.
	TemplateHead
	// TemplateMiddle is the part between `}` and the next `${`.
	TemplateMiddle
	// TemplateTail is the part from the last `}` to the closing backtick.
	TemplateTail

	LBrace     // {
	RBrace     // }
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	Dot        // .
	DotDotDot  // ...
	Semicolon  // ;
	Comma      // ,
	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	EqEq       // ==
	BangEq     // !=
	EqEqEq     // ===
	BangEqEq   // !==
	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	PlusPlus   // ++
	MinusMinus // --
	Shl        // <<
	Shr        // >>
	UShr       // >>>
	Amp        // &
	Pipe       // |
	Caret      // ^
	Bang       // !
	Tilde      // ~
	AndAnd     // &&
	OrOr       // ||
	Question   // ?
	Colon      // :
	Assign     // =
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	FatArrow // =>

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "Invalid", EOF: "EOF", Ident: "Ident",
	KwBreak: "break", KwCase: "case", KwCatch: "catch", KwClass: "class", KwConst: "const",
	KwContinue: "continue", KwDebugger: "debugger", KwDefault: "default", KwDelete: "delete",
	KwDo: "do", KwElse: "else", KwEnum: "enum", KwExport: "export", KwExtends: "extends",
	KwFinally: "finally", KwFor: "for", KwFunction: "function", KwIf: "if", KwImport: "import",
	KwIn: "in", KwInstanceof: "instanceof", KwNew: "new", KwReturn: "return", KwSuper: "super",
	KwSwitch: "switch", KwThis: "this", KwThrow: "throw", KwTry: "try", KwTypeof: "typeof",
	KwVar: "var", KwVoid: "void", KwWhile: "while", KwWith: "with", KwNull: "null",
	KwTrue: "true", KwFalse: "false",
	NumberLit: "NumberLit", StringLit: "StringLit", RegExpLit: "RegExpLit",
	NoSubstTemplate: "NoSubstTemplate", TemplateHead: "TemplateHead",
	TemplateMiddle: "TemplateMiddle", TemplateTail: "TemplateTail",
	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	Dot: ".", DotDotDot: "...", Semicolon: ";", Comma: ",", Lt: "<", Gt: ">", LtEq: "<=",
	GtEq: ">=", EqEq: "==", BangEq: "!=", EqEqEq: "===", BangEqEq: "!==", Plus: "+",
	Minus: "-", Star: "*", Slash: "/", Percent: "%", PlusPlus: "++", MinusMinus: "--",
	Shl: "<<", Shr: ">>", UShr: ">>>", Amp: "&", Pipe: "|", Caret: "^", Bang: "!",
	Tilde: "~", AndAnd: "&&", OrOr: "||", Question: "?", Colon: ":", Assign: "=",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	PercentAssign: "%=", ShlAssign: "<<=", ShrAssign: ">>=", UShrAssign: ">>>=",
	AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=", FatArrow: "=>",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= KwBreak && k <= KwFalse }

// IsTemplate reports whether k is one of the template literal parts.
func (k Kind) IsTemplate() bool { return k >= NoSubstTemplate && k <= TemplateTail }

// IsPunct reports whether k is a punctuator or operator.
func (k Kind) IsPunct() bool { return k >= LBrace && k <= FatArrow }

// IsAssignOp reports whether k is `=` or a compound assignment operator.
func (k Kind) IsAssignOp() bool { return k >= Assign && k <= CaretAssign }

// RegexAllowedAfter decides whether a `/` following a token of kind prev
// starts a regular expression literal rather than a division operator.
// Only the last significant token is consulted: value-producing tokens are
// followed by division, everything else (operators, keywords, `}`, start of
// input) by a regex. Pass EOF when there is no previous token.
func RegexAllowedAfter(prev Kind) bool {
	switch prev {
	case Ident, NumberLit, StringLit, RegExpLit, NoSubstTemplate, TemplateTail,
		RParen, RBracket,
		KwThis, KwSuper, KwNull, KwTrue, KwFalse,
		PlusPlus, MinusMinus:
		return false
	default:
		return true
	}
}
