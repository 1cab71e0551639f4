package check

import "sable/internal/ast"

// Check is a single diagnostic rule. Instances carry per-run state, so one
// instance must not be shared between concurrent runs.
type Check interface {
	// Key is the stable rule identifier used in profiles and reports.
	Key() string
	// Kinds lists the node kinds passed to Visit. An empty set is allowed
	// for checks that work entirely in Begin/End.
	Kinds() ast.KindSet
	Visit(ctx *Context, id ast.NodeID)
}

// Starter is implemented by checks that prepare per-file state.
type Starter interface {
	Begin(ctx *Context) error
}

// Finisher is implemented by checks that report after the traversal.
type Finisher interface {
	End(ctx *Context) error
}

// Describer supplies a one-line human description for listings.
type Describer interface {
	Description() string
}

// Describe returns the description of c or an empty string.
func Describe(c Check) string {
	if d, ok := c.(Describer); ok {
		return d.Description()
	}
	return ""
}
