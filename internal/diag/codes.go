package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedRegExp       Code = 1005
	LexUnterminatedTemplate     Code = 1006
	LexBadEscape                Code = 1007

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpression   Code = 2004
	SynUnclosedDelimiter  Code = 2005
	SynInvalidTarget      Code = 2006
	SynForBadHeader       Code = 2007
	SynModuleItemInScript Code = 2008
	SynRestNotLast        Code = 2009
	SynStrictMode         Code = 2010

	// Проверки (checks)
	ChkInfo    Code = 3000
	ChkIssue   Code = 3001
	ChkFailure Code = 3002
	ChkConfig  Code = 3003

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Профиль
	CfgInfo         Code = 5000
	CfgInvalidValue Code = 5001
	CfgUnknownCheck Code = 5002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Invalid character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Malformed numeric literal",
		LexUnterminatedRegExp:       "Unterminated regular expression literal",
		LexUnterminatedTemplate:     "Unterminated template literal",
		LexBadEscape:                "Malformed escape sequence",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynExpectSemicolon:          "Missing semicolon",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectExpression:         "Expected expression",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynInvalidTarget:            "Invalid assignment target",
		SynForBadHeader:             "Malformed for statement header",
		SynModuleItemInScript:       "import/export outside of a module",
		SynStrictMode:               "Not allowed in strict mode code",
		SynRestNotLast:              "Rest element must be last",
		ChkInfo:                     "Check information",
		ChkIssue:                    "Code issue",
		ChkFailure:                  "Check failed on this file",
		ChkConfig:                   "Invalid check configuration",
		IOLoadFileError:             "I/O load file error",
		IOCacheError:                "Cache error",
		CfgInfo:                     "Profile information",
		CfgInvalidValue:             "Invalid profile value",
		CfgUnknownCheck:             "Unknown check key",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CHK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
