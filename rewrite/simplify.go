package rewrite

import "go.creack.net/binop/ast"

// DefaultMaxRounds bounds fixed-point iteration when MaxRounds is 0.
const DefaultMaxRounds = 64

// Simplifier runs rule passes in a fixed order.
//
// A round applies AdditiveIdentity, MultiplicativeIdentity and MultByZero,
// each as one full pass over the result of the previous one, followed by
// ConstantFold when Fold is set. Without FixedPoint exactly one round runs,
// which can leave chained simplifications partially reduced: "+ * x 0 y"
// becomes "+ 0 y" because the zero it exposes is only produced after the
// additive pass already ran.
type Simplifier struct {
	Fold       bool
	FixedPoint bool
	MaxRounds  int // Only used with FixedPoint.
}

// Result is the outcome of Simplifier.Run.
type Result struct {
	Tree   ast.Node
	Rounds int
	Trace  Trace
}

// Rules returns the passes of one round in order.
func (s Simplifier) Rules() []Rule {
	rules := []Rule{AdditiveIdentity, MultiplicativeIdentity, MultByZero}
	if s.Fold {
		rules = append(rules, ConstantFold)
	}
	return rules
}

// Run simplifies n. The input tree is not modified.
func (s Simplifier) Run(n ast.Node) Result {
	maxRounds := 1
	if s.FixedPoint {
		maxRounds = s.MaxRounds
		if maxRounds <= 0 {
			maxRounds = DefaultMaxRounds
		}
	}

	res := Result{Tree: n}
	for res.Rounds < maxRounds {
		var round Trace
		for _, r := range s.Rules() {
			res.Tree = r.apply(res.Tree, &round)
		}
		res.Rounds++
		res.Trace.merge(round)
		// Every firing shrinks the tree, so a quiet round is a fixed point.
		if round.Total == 0 {
			break
		}
	}
	return res
}

// Simplify applies one round of the identity and zero rules.
func Simplify(n ast.Node) ast.Node {
	return Simplifier{}.Run(n).Tree
}

// SimplifyFixedPoint repeats Simplify until the tree stops changing.
func SimplifyFixedPoint(n ast.Node) ast.Node {
	return Simplifier{FixedPoint: true}.Run(n).Tree
}
