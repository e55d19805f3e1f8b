package gocalc

import (
	"math/big"
)

// Evaluate computes the value of the tree rooted at node. Both operands of a
// BinaryOp are always evaluated, left first.
func Evaluate(node Node) (Value, error) {
	switch n := node.(type) {
	case *Literal:
		if n == nil {
			break
		}
		return Int(n.Value), nil
	case *BinaryOp:
		if n == nil {
			break
		}
		if n.Left == nil || n.Right == nil {
			return Value{}, &RuntimeError{Type: ErrInvalidNode, Node: n}
		}
		lhs, err := Evaluate(n.Left)
		if err != nil {
			return Value{}, err
		}
		rhs, err := Evaluate(n.Right)
		if err != nil {
			return Value{}, err
		}
		return apply(n, lhs, rhs)
	}
	return Value{}, &RuntimeError{Type: ErrInvalidNode}
}

func apply(n *BinaryOp, lhs, rhs Value) (Value, error) {
	if n.Op == OpDivide {
		if rhs.isZero() {
			return Value{}, &RuntimeError{Type: ErrDivisionByZero, Node: n}
		}
		if lhs.IsInt() && rhs.IsInt() {
			// Rounded once, so operands beyond 2^53 keep their precision.
			f, _ := new(big.Rat).SetFrac64(lhs.i, rhs.i).Float64()
			return Double(f), nil
		}
		return Double(lhs.Float64() / rhs.Float64()), nil
	}

	if lhs.IsInt() && rhs.IsInt() {
		var (
			i  int64
			ok bool
		)
		switch n.Op {
		case OpAdd:
			i, ok = addInt(lhs.i, rhs.i)
		case OpSubtract:
			i, ok = subInt(lhs.i, rhs.i)
		case OpMultiply:
			i, ok = mulInt(lhs.i, rhs.i)
		default:
			return Value{}, &RuntimeError{Type: ErrInvalidNode, Node: n}
		}
		if !ok {
			return Value{}, &RuntimeError{Type: ErrIntegerOverflow, Node: n}
		}
		return Int(i), nil
	}

	a, b := lhs.Float64(), rhs.Float64()
	switch n.Op {
	case OpAdd:
		return Double(a + b), nil
	case OpSubtract:
		return Double(a - b), nil
	case OpMultiply:
		return Double(a * b), nil
	}
	return Value{}, &RuntimeError{Type: ErrInvalidNode, Node: n}
}

// Eval parses s and evaluates it.
func Eval(s string) (Value, error) {
	node, err := ParseString(s)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(node)
}
