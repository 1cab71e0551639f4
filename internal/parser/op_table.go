package parser

import "sable/internal/token"

// Приоритеты бинарных операторов; 0: не бинарный оператор.
const (
	precNone = iota
	precOrOr
	precAndAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

// binaryPrec returns the precedence of k as a binary operator. With noIn set
// `in` is not an operator (for-statement heads).
func binaryPrec(k token.Kind, noIn bool) int {
	switch k {
	case token.OrOr:
		return precOrOr
	case token.AndAnd:
		return precAndAnd
	case token.Pipe:
		return precBitOr
	case token.Caret:
		return precBitXor
	case token.Amp:
		return precBitAnd
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwInstanceof:
		return precRelational
	case token.KwIn:
		if noIn {
			return precNone
		}
		return precRelational
	case token.Shl, token.Shr, token.UShr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	}
	return precNone
}

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.KwDelete, token.KwVoid, token.KwTypeof,
		token.Plus, token.Minus, token.Tilde, token.Bang,
		token.PlusPlus, token.MinusMinus:
		return true
	}
	return false
}
