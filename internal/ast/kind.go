package ast

// Kind tags a tree node. Every grammar production has its own Kind; tokens
// are KindToken leaves. The comment on each Kind lists its children in order,
// `x?` marks a slot that holds NoNodeID when the element is absent, `...`
// a repeated group. Quoted items are token leaves.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindToken is a leaf wrapping exactly one lexical token.
	KindToken

	KindScript // items... EOF
	KindModule // items... EOF

	// statements
	KindVarStatement        // VarDeclarations ";"?
	KindVarDeclarations     // "var"|"let"|"const" VarDeclaration ("," VarDeclaration)...
	KindVarDeclaration      // target "="? init?
	KindBlock               // "{" statements... "}"
	KindEmptyStatement      // ";"
	KindExpressionStatement // expr ";"?
	KindIfStatement         // "if" "(" expr ")" stmt ElseClause?
	KindElseClause          // "else" stmt
	KindDoWhileStatement    // "do" stmt "while" "(" expr ")" ";"?
	KindWhileStatement      // "while" "(" expr ")" stmt
	KindForStatement        // "for" "(" init? ";" test? ";" update? ")" stmt
	KindForInStatement      // "for" "(" left "in" expr ")" stmt
	KindForOfStatement      // "for" "(" left "of" expr ")" stmt
	KindContinueStatement   // "continue" LabelIdentifier? ";"?
	KindBreakStatement      // "break" LabelIdentifier? ";"?
	KindReturnStatement     // "return" expr? ";"?
	KindWithStatement       // "with" "(" expr ")" stmt
	KindSwitchStatement     // "switch" "(" expr ")" "{" clauses... "}"
	KindCaseClause          // "case" expr ":" statements...
	KindDefaultClause       // "default" ":" statements...
	KindLabelledStatement   // LabelIdentifier ":" stmt
	KindThrowStatement      // "throw" expr ";"?
	KindTryStatement        // "try" Block CatchClause? FinallyClause?
	KindCatchClause         // "catch" "(" binding ")" Block
	KindFinallyClause       // "finally" Block
	KindDebuggerStatement   // "debugger" ";"?

	// functions and classes
	KindFunctionDeclaration  // "function" "*"? BindingIdentifier? ParameterList FunctionBody
	KindFunctionExpression   // same layout
	KindGeneratorDeclaration // same layout, "*" present
	KindGeneratorExpression  // same layout, "*" present
	KindArrowFunction        // (ParameterList | BindingIdentifier) "=>" (FunctionBody | expr)
	KindParameterList        // "(" param ("," param)... ")"
	KindFunctionBody         // "{" statements... "}"
	KindMethod               // "static"? "*"? name ParameterList FunctionBody
	KindGeneratorMethod      // same layout, "*" present
	KindGetter               // "static"? "get" name ParameterList FunctionBody
	KindSetter               // "static"? "set" name ParameterList FunctionBody
	KindClassDeclaration     // "class" BindingIdentifier? ClassHeritage? "{" members... "}"
	KindClassExpression      // same layout
	KindClassHeritage        // "extends" expr

	// binding patterns
	KindBindingIdentifier    // ident
	KindBindingElement       // target "=" default
	KindRestElement          // "..." target
	KindObjectBindingPattern // "{" (prop ",")... "}"
	KindArrayBindingPattern  // "[" elem? ("," elem?)... "]"
	KindBindingProperty      // name ":" element

	// identifiers
	KindIdentifierReference // ident
	KindPropertyIdentifier  // IdentifierName (reserved words allowed)
	KindLabelIdentifier     // ident

	// modules
	KindImportDeclaration // "import" ImportClause FromClause ";"?
	KindImportModule      // "import" StringLiteral ";"?
	KindImportClause      // BindingIdentifier? ","? (NamespaceImport | NamedImports)?
	KindNamedImports      // "{" (ImportSpecifier ",")... "}"
	KindImportSpecifier   // name "as"? BindingIdentifier?
	KindNamespaceImport   // "*" "as" BindingIdentifier
	KindFromClause        // "from" StringLiteral
	KindExportDefault     // "export" "default" (declaration | expr) ";"?
	KindNamedExports      // "export" ExportClause FromClause? ";"?
	KindExportAll         // "export" "*" FromClause ";"?
	KindExportDeclaration // "export" declaration
	KindExportClause      // "{" (ExportSpecifier ",")... "}"
	KindExportSpecifier   // local "as"? PropertyIdentifier?

	// expressions
	KindThis                    // "this"
	KindSuper                   // "super"
	KindNumericLiteral          // number
	KindStringLiteral           // string
	KindBooleanLiteral          // "true"|"false"
	KindNullLiteral             // "null"
	KindRegExpLiteral           // regexp
	KindTemplateLiteral         // head expr (middle expr)... tail | no-substitution
	KindTaggedTemplate          // expr TemplateLiteral
	KindArrayLiteral            // "[" elem? ("," elem?)... "]"
	KindSpread                  // "..." expr
	KindObjectLiteral           // "{" (prop ",")... "}"
	KindPairProperty            // name ":" expr
	KindInitializedName         // IdentifierReference "=" expr (cover grammar for patterns)
	KindComputedPropertyName    // "[" expr "]"
	KindParenthesizedExpression // "(" expr ")"
	KindMemberDot               // expr "." PropertyIdentifier
	KindMemberBracket           // expr "[" expr "]"
	KindCall                    // expr ArgumentList
	KindArgumentList            // "(" (arg ",")... ")"
	KindNew                     // "new" expr ArgumentList?
	KindNewTarget               // "new" "." "target"
	KindUnary                   // op expr (delete void typeof + - ~ ! ++ --)
	KindPostfix                 // expr op (++ --)
	KindBinary                  // expr op expr
	KindAssignment              // target op expr
	KindConditional             // expr "?" expr ":" expr
	KindComma                   // expr ("," expr)...
	KindYield                   // "yield" "*"? expr?

	// KindCount is the number of kinds; dispatch tables are sized by it.
	KindCount
)

var kindNames = [KindCount]string{
	KindInvalid: "Invalid", KindToken: "Token",
	KindScript: "Script", KindModule: "Module",
	KindVarStatement: "VarStatement", KindVarDeclarations: "VarDeclarations",
	KindVarDeclaration: "VarDeclaration", KindBlock: "Block",
	KindEmptyStatement: "EmptyStatement", KindExpressionStatement: "ExpressionStatement",
	KindIfStatement: "IfStatement", KindElseClause: "ElseClause",
	KindDoWhileStatement: "DoWhileStatement", KindWhileStatement: "WhileStatement",
	KindForStatement: "ForStatement", KindForInStatement: "ForInStatement",
	KindForOfStatement: "ForOfStatement", KindContinueStatement: "ContinueStatement",
	KindBreakStatement: "BreakStatement", KindReturnStatement: "ReturnStatement",
	KindWithStatement: "WithStatement", KindSwitchStatement: "SwitchStatement",
	KindCaseClause: "CaseClause", KindDefaultClause: "DefaultClause",
	KindLabelledStatement: "LabelledStatement", KindThrowStatement: "ThrowStatement",
	KindTryStatement: "TryStatement", KindCatchClause: "CatchClause",
	KindFinallyClause: "FinallyClause", KindDebuggerStatement: "DebuggerStatement",
	KindFunctionDeclaration: "FunctionDeclaration", KindFunctionExpression: "FunctionExpression",
	KindGeneratorDeclaration: "GeneratorDeclaration", KindGeneratorExpression: "GeneratorExpression",
	KindArrowFunction: "ArrowFunction", KindParameterList: "ParameterList",
	KindFunctionBody: "FunctionBody", KindMethod: "Method", KindGeneratorMethod: "GeneratorMethod",
	KindGetter: "Getter", KindSetter: "Setter",
	KindClassDeclaration: "ClassDeclaration", KindClassExpression: "ClassExpression",
	KindClassHeritage:     "ClassHeritage",
	KindBindingIdentifier: "BindingIdentifier", KindBindingElement: "BindingElement",
	KindRestElement: "RestElement", KindObjectBindingPattern: "ObjectBindingPattern",
	KindArrayBindingPattern: "ArrayBindingPattern", KindBindingProperty: "BindingProperty",
	KindIdentifierReference: "IdentifierReference", KindPropertyIdentifier: "PropertyIdentifier",
	KindLabelIdentifier:   "LabelIdentifier",
	KindImportDeclaration: "ImportDeclaration", KindImportModule: "ImportModule",
	KindImportClause: "ImportClause", KindNamedImports: "NamedImports",
	KindImportSpecifier: "ImportSpecifier", KindNamespaceImport: "NamespaceImport",
	KindFromClause: "FromClause", KindExportDefault: "ExportDefault",
	KindNamedExports: "NamedExports", KindExportAll: "ExportAll",
	KindExportDeclaration: "ExportDeclaration", KindExportClause: "ExportClause",
	KindExportSpecifier: "ExportSpecifier",
	KindThis:            "This", KindSuper: "Super", KindNumericLiteral: "NumericLiteral",
	KindStringLiteral: "StringLiteral", KindBooleanLiteral: "BooleanLiteral",
	KindNullLiteral: "NullLiteral", KindRegExpLiteral: "RegExpLiteral",
	KindTemplateLiteral: "TemplateLiteral", KindTaggedTemplate: "TaggedTemplate",
	KindArrayLiteral: "ArrayLiteral", KindSpread: "Spread", KindObjectLiteral: "ObjectLiteral",
	KindPairProperty: "PairProperty", KindInitializedName: "InitializedName",
	KindComputedPropertyName:    "ComputedPropertyName",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindMemberDot:               "MemberDot", KindMemberBracket: "MemberBracket", KindCall: "Call",
	KindArgumentList: "ArgumentList", KindNew: "New", KindNewTarget: "NewTarget",
	KindUnary: "Unary", KindPostfix: "Postfix", KindBinary: "Binary",
	KindAssignment: "Assignment", KindConditional: "Conditional", KindComma: "Comma",
	KindYield: "Yield",
}

func (k Kind) String() string {
	if k < KindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// KindByName maps a kind name ("Call", "VarStatement") back to its Kind.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// IsFunction reports whether nodes of this kind introduce a function scope.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression,
		KindGeneratorDeclaration, KindGeneratorExpression,
		KindArrowFunction, KindMethod, KindGeneratorMethod, KindGetter, KindSetter:
		return true
	}
	return false
}

// IsClass reports whether k is a class declaration or expression.
func (k Kind) IsClass() bool {
	return k == KindClassDeclaration || k == KindClassExpression
}

// IsLiteral reports whether k is a primitive literal.
func (k Kind) IsLiteral() bool {
	return k >= KindNumericLiteral && k <= KindRegExpLiteral
}

// IsStatement reports whether k can stand in a statement list.
func (k Kind) IsStatement() bool {
	switch {
	case k >= KindVarStatement && k <= KindDebuggerStatement:
		return k != KindVarDeclarations && k != KindVarDeclaration && k != KindElseClause &&
			k != KindCaseClause && k != KindDefaultClause && k != KindCatchClause && k != KindFinallyClause
	case k == KindFunctionDeclaration, k == KindGeneratorDeclaration, k == KindClassDeclaration:
		return true
	}
	return false
}
