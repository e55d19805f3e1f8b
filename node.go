package gocalc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Node is an expression tree. The set of implementations is closed: only
// *Literal and *BinaryOp satisfy it.
type Node interface {
	fmt.Stringer
	node()
}

type Literal struct {
	Value int64
}

type BinaryOp struct {
	Left  Node
	Op    Op
	Right Node
}

func (*Literal) node()  {}
func (*BinaryOp) node() {}

func (n *Literal) String() string {
	return fmt.Sprint(n.Value)
}

func (n *BinaryOp) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%v %v %v)", n.Left, n.Op, n.Right)
	return buf.String()
}

// Fprint writes an indented dump of the tree rooted at n to w.
func Fprint(w io.Writer, n Node) error {
	return fprint(w, n, 0)
}

func fprint(w io.Writer, n Node, level int) error {
	indent := strings.Repeat("  ", level)
	switch n := n.(type) {
	case *Literal:
		_, err := fmt.Fprintf(w, "%sLiteral(%d)\n", indent, n.Value)
		return err
	case *BinaryOp:
		if _, err := fmt.Fprintf(w, "%sBinaryOp(%v)\n", indent, n.Op); err != nil {
			return err
		}
		if err := fprint(w, n.Left, level+1); err != nil {
			return err
		}
		return fprint(w, n.Right, level+1)
	}
	_, err := fmt.Fprintf(w, "%s<nil>\n", indent)
	return err
}
