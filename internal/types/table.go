package types

// CallPattern tags the result of calling a free identifier, e.g. `$(…)`.
// The callee must not be declared in the analysed file.
type CallPattern struct {
	Callee string
	Tag    Tag
}

// ExtendPattern recognises class-like declarations built with an "extend"
// call: `Base.Method(…)` yields ClassTag, and so does `X.Method(…)` when X
// already carries ClassTag. `new X(…)` on such a value yields InstanceTag.
type ExtendPattern struct {
	Base        string // точечный путь, например "Backbone.Model"
	Method      string
	ClassTag    Tag
	InstanceTag Tag
}

// Table is the declarative set of framework heuristics.
type Table struct {
	Calls   []CallPattern
	Extends []ExtendPattern
}

// DefaultTable knows jQuery selectors and Backbone models.
func DefaultTable() *Table {
	return &Table{
		Calls: []CallPattern{
			{Callee: "$", Tag: TagSelector},
			{Callee: "jQuery", Tag: TagSelector},
		},
		Extends: []ExtendPattern{
			{Base: "Backbone.Model", Method: "extend", ClassTag: TagModel, InstanceTag: TagModelObject},
		},
	}
}

func (t *Table) call(callee string) (Tag, bool) {
	for _, p := range t.Calls {
		if p.Callee == callee {
			return p.Tag, true
		}
	}
	return 0, false
}
