package rsql

import (
	"fmt"
	"strings"

	"github.com/rpattn/dinaquery/internal/domain"
)

// Operator is an RSQL comparison operator.
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpLessThan       Operator = "=lt="
	OpLessOrEqual    Operator = "=le="
	OpGreaterThan    Operator = "=gt="
	OpGreaterOrEqual Operator = "=ge="
	OpIn             Operator = "=in="
	OpNotIn          Operator = "=out="
)

// Logical separators.
const (
	AndSeparator = ';'
	OrSeparator  = ','
)

const reservedChars = " \t\r\n\"'();,=!~<>"

// Node is any renderable part of an RSQL expression.
type Node interface {
	rsql() (string, error)
}

// Comparison is a single "selector op args" constraint.
type Comparison struct {
	Selector string
	Operator Operator
	Args     []string
}

// Eq builds a "selector==arg" comparison.
func Eq(selector, arg string) Comparison {
	return Comparison{Selector: selector, Operator: OpEqual, Args: []string{arg}}
}

// In builds a "selector=in=(a,b)" comparison.
func In(selector string, args ...string) Comparison {
	return Comparison{Selector: selector, Operator: OpIn, Args: args}
}

func (c Comparison) rsql() (string, error) {
	if strings.TrimSpace(c.Selector) == "" {
		return "", fmt.Errorf("%w: comparison has no selector", domain.ErrInvalidArgument)
	}
	if len(c.Args) == 0 {
		return "", fmt.Errorf("%w: comparison on %s has no arguments", domain.ErrInvalidArgument, c.Selector)
	}

	switch c.Operator {
	case OpIn, OpNotIn:
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = Quote(a)
		}
		return c.Selector + string(c.Operator) + "(" + strings.Join(args, ",") + ")", nil
	case OpEqual, OpNotEqual, OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
		if len(c.Args) != 1 {
			return "", fmt.Errorf("%w: operator %s takes one argument, got %d", domain.ErrInvalidArgument, c.Operator, len(c.Args))
		}
		return c.Selector + string(c.Operator) + Quote(c.Args[0]), nil
	default:
		return "", fmt.Errorf("%w: unknown operator %q", domain.ErrInvalidArgument, c.Operator)
	}
}

// Group is a logical combination of nodes.
type Group struct {
	Separator rune
	Nodes     []Node
}

// And combines nodes with the RSQL AND operator.
func And(nodes ...Node) Group {
	return Group{Separator: AndSeparator, Nodes: nodes}
}

// Or combines nodes with the RSQL OR operator.
func Or(nodes ...Node) Group {
	return Group{Separator: OrSeparator, Nodes: nodes}
}

func (g Group) rsql() (string, error) {
	if len(g.Nodes) == 0 {
		return "", fmt.Errorf("%w: empty group", domain.ErrInvalidArgument)
	}

	parts := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		s, err := n.rsql()
		if err != nil {
			return "", err
		}
		if child, ok := n.(Group); ok && len(child.Nodes) > 1 && child.Separator != g.Separator {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, string(g.Separator)), nil
}

// Build renders a node into a Filter.
func Build(n Node) (Filter, error) {
	if n == nil {
		return Filter{}, fmt.Errorf("%w: nil node", domain.ErrInvalidArgument)
	}
	s, err := n.rsql()
	if err != nil {
		return Filter{}, err
	}
	return Filter{RSQL: s}, nil
}

// Quote returns arg unchanged when it has no reserved characters, otherwise
// wraps it in double quotes with '"' and '\' escaped.
func Quote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, reservedChars) {
		return arg
	}
	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	for _, r := range arg {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
