package model

import "strings"

// Op is a single diff operation. The set of operations is closed.
type Op uint8

const (
	OpEqual Op = iota
	OpDeleted
	OpAdded
	OpFontChanged
	OpSizeChanged
	OpStyleChanged
)

// allOps lists every operation in display order.
var allOps = [...]Op{OpEqual, OpDeleted, OpAdded, OpFontChanged, OpSizeChanged, OpStyleChanged}

// String returns the display name of the operation
func (o Op) String() string {
	switch o {
	case OpEqual:
		return "Equal"
	case OpDeleted:
		return "Deleted"
	case OpAdded:
		return "Added"
	case OpFontChanged:
		return "FontChanged"
	case OpSizeChanged:
		return "SizeChanged"
	case OpStyleChanged:
		return "StyleChanged"
	default:
		return "Unknown"
	}
}

// OpSet is a set of operations; several may apply to the same word.
type OpSet uint8

// NewOpSet returns a set containing ops.
func NewOpSet(ops ...Op) OpSet {
	var s OpSet
	for _, op := range ops {
		s = s.Add(op)
	}
	return s
}

// Add returns s with op included.
func (s OpSet) Add(op Op) OpSet {
	return s | 1<<op
}

// Union returns the union of both sets.
func (s OpSet) Union(other OpSet) OpSet {
	return s | other
}

// Has reports whether op is in s.
func (s OpSet) Has(op Op) bool {
	return s&(1<<op) != 0
}

// Empty reports whether no operation is set.
func (s OpSet) Empty() bool {
	return s == 0
}

// Ops returns the operations in s in display order.
func (s OpSet) Ops() []Op {
	var ops []Op
	for _, op := range allOps {
		if s.Has(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

// String joins the operation names with "|".
func (s OpSet) String() string {
	ops := s.Ops()
	if len(ops) == 0 {
		return "None"
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return strings.Join(names, "|")
}

// Side identifies which document of a pair something belongs to.
type Side int

const (
	Source Side = iota
	Target
)

// String returns "source" or "target"
func (s Side) String() string {
	if s == Target {
		return "target"
	}
	return "source"
}
