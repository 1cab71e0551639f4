package checks

import (
	"errors"
	"fmt"

	"sable/internal/check"
)

// ErrUnknownCheck is returned by New for keys not in the registry.
var ErrUnknownCheck = errors.New("unknown check")

// registry lists every rule in report order; each entry builds a fresh instance.
var registry = []func() check.Check{
	func() check.Check { return &ConditionalComment{} },
	func() check.Check { return &NewOperatorMisuse{} },
	func() check.Check { return &WithStatement{} },
	func() check.Check { return &DebuggerStatement{} },
	func() check.Check { return &EqEqEq{} },
	func() check.Check { return &RedeclaredSymbol{} },
	func() check.Check { return &UnusedVariable{} },
	func() check.Check { return &ImplicitGlobal{} },
	func() check.Check { return &UseBeforeDeclaration{} },
	func() check.Check { return NewExcessiveParameterList() },
	func() check.Check { return NewCommentRegularExpression() },
}

// All returns fresh instances of every check with default options.
func All() []check.Check {
	out := make([]check.Check, len(registry))
	for i, mk := range registry {
		out[i] = mk()
	}
	return out
}

// Keys returns the keys of all checks in registry order.
func Keys() []string {
	out := make([]string, len(registry))
	for i, mk := range registry {
		out[i] = mk().Key()
	}
	return out
}

// New returns a fresh instance of the check with the given key.
func New(key string) (check.Check, error) {
	for _, mk := range registry {
		if c := mk(); c.Key() == key {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCheck, key)
}
