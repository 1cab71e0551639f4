package ast

// KindSet is a set of node kinds.
type KindSet [2]uint64

var _ [128 - int(KindCount)]struct{} // KindSet holds at most 128 kinds

// NewKindSet builds a set from kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// AllKinds contains every kind except KindInvalid.
func AllKinds() KindSet {
	var s KindSet
	for k := KindToken; k < KindCount; k++ {
		s = s.Add(k)
	}
	return s
}

func (s KindSet) Add(k Kind) KindSet {
	s[k>>6] |= 1 << (k & 63)
	return s
}

func (s KindSet) Has(k Kind) bool {
	return s[k>>6]&(1<<(k&63)) != 0
}

func (s KindSet) Union(o KindSet) KindSet {
	return KindSet{s[0] | o[0], s[1] | o[1]}
}

func (s KindSet) Empty() bool { return s[0] == 0 && s[1] == 0 }

// Kinds lists the members in ascending order.
func (s KindSet) Kinds() []Kind {
	var out []Kind
	for k := KindInvalid; k < KindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
