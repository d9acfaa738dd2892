// Package rewrite simplifies expression trees with local algebraic rules.
//
// Every rule is one bottom-up pass: an operator is inspected only after both
// of its operands were rewritten, and a rule that fires replaces the operator
// with one of its (already rewritten) operands. A pass never revisits a node,
// so patterns exposed by a different rule are left for that rule's own pass.
package rewrite

import (
	"errors"
	"fmt"
	"strings"

	"go.creack.net/binop/ast"
)

// ErrUnknownRule is returned by Lookup.
var ErrUnknownRule = errors.New("unknown rule")

// Rule is a named bottom-up rewrite pass.
type Rule struct {
	Name    string
	Aliases []string
	Doc     string

	// rewrite inspects a single operator whose operands are already
	// rewritten. It returns the replacement and whether the rule fired.
	rewrite func(*ast.BinaryOp) (ast.Node, bool)
}

// Apply runs the rule once over the whole tree and returns the new tree.
// The input tree is not modified; unchanged subtrees are shared.
func (r Rule) Apply(n ast.Node) ast.Node {
	return r.apply(n, nil)
}

func (r Rule) apply(n ast.Node, tr *Trace) ast.Node {
	return ast.Transform(n, func(n ast.Node) ast.Node {
		b, ok := n.(*ast.BinaryOp)
		if !ok {
			return n
		}
		out, fired := r.rewrite(b)
		if fired {
			tr.add(r.Name)
		}
		return out
	})
}

func (r Rule) String() string { return r.Name }

// Rules returns every registered rule, in Lookup order.
func Rules() []Rule {
	return []Rule{AdditiveIdentity, MultiplicativeIdentity, MultByZero, ConstantFold}
}

// Lookup finds a rule by name or alias, ignoring case.
func Lookup(name string) (Rule, error) {
	for _, r := range Rules() {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
		for _, alias := range r.Aliases {
			if strings.EqualFold(alias, name) {
				return r, nil
			}
		}
	}
	return Rule{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
}

// Trace counts how many times each rule fired.
type Trace struct {
	Counts map[string]int
	Total  int
}

func (tr *Trace) add(name string) {
	if tr == nil {
		return
	}
	if tr.Counts == nil {
		tr.Counts = map[string]int{}
	}
	tr.Counts[name]++
	tr.Total++
}

func (tr *Trace) merge(other Trace) {
	if tr.Counts == nil && len(other.Counts) > 0 {
		tr.Counts = map[string]int{}
	}
	for name, c := range other.Counts {
		tr.Counts[name] += c
	}
	tr.Total += other.Total
}
