package rewrite

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/binop/ast"
	"go.creack.net/binop/parser"
)

func parse(t *testing.T, input string) ast.Node {
	t.Helper()
	tree, err := parser.Parse(strings.Fields(input))
	require.NoError(t, err)
	return tree
}

type ruleTest struct {
	input    string
	expected string
}

func testRule(t *testing.T, r Rule, tests []ruleTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := parse(t, tt.input)
			assert.Equal(t, tt.expected, ast.Prefix(r.Apply(tree)))
			assert.Equal(t, tt.input, ast.Prefix(tree), "input tree must not change")
		})
	}
}

func TestAdditiveIdentity(t *testing.T) {
	testRule(t, AdditiveIdentity, []ruleTest{
		{"+ x 0", "x"},
		{"+ 0 x", "x"},
		{"+ 0 0", "0"},
		{"+ x y", "+ x y"},
		{"* x 0", "* x 0"},
		{"+ 0 + 0 x", "x"},
		{"+ + x 0 + 0 y", "+ x y"},
		{"+ * x 1 0", "* x 1"},
		{"* + x 0 + 0 2", "* x 2"},
		{"+ 00 x", "+ 00 x"},
		{"- x 0", "- x 0"},
	})
}

func TestMultiplicativeIdentity(t *testing.T) {
	testRule(t, MultiplicativeIdentity, []ruleTest{
		{"* x 1", "x"},
		{"* 1 x", "x"},
		{"* 1 1", "1"},
		{"* x y", "* x y"},
		{"+ x 1", "+ x 1"},
		{"* * x 1 * 1 y", "* x y"},
		{"* 0 1", "0"},
		{"* 1 0", "0"},
		{"* + x 1 1", "+ x 1"},
	})
}

func TestMultByZero(t *testing.T) {
	testRule(t, MultByZero, []ruleTest{
		{"* x 0", "0"},
		{"* 0 x", "0"},
		{"* 0 0", "0"},
		{"* x y", "* x y"},
		{"+ x 0", "+ x 0"},
		{"* + x y 0", "0"},
		{"* * x 0 y", "0"},
		{"+ * x 0 * 0 y", "+ 0 0"},
	})
}

func TestConstantFold(t *testing.T) {
	testRule(t, ConstantFold, []ruleTest{
		{"+ 1 1", "2"},
		{"* 6 7", "42"},
		{"+ * 2 3 4", "10"},
		{"- 5 3", "2"},
		{"- 3 5", "- 3 5"},
		{"/ 10 5", "2"},
		{"/ 10 3", "/ 10 3"},
		{"/ 1 0", "/ 1 0"},
		{"% 10 3", "1"},
		{"% 1 0", "% 1 0"},
		{"^ 2 10", "1024"},
		{"^ 2 65", "^ 2 65"},
		{"+ x 1", "+ x 1"},
		{"?? 1 2", "?? 1 2"},
		{"* 99999999999999999999 10", "999999999999999999990"},
	})
}

// Which leaf survives a simultaneous match is observable through the node
// identity: the right operand is checked first.
func TestRightOperandFirst(t *testing.T) {
	left, right := ast.NewLeaf("0"), ast.NewLeaf("0")
	assert.Same(t, left, AdditiveIdentity.Apply(ast.NewBinaryOp("+", left, right)))
	assert.Same(t, right, MultByZero.Apply(ast.NewBinaryOp("*", left, right)))

	one1, one2 := ast.NewLeaf("1"), ast.NewLeaf("1")
	assert.Same(t, one1, MultiplicativeIdentity.Apply(ast.NewBinaryOp("*", one1, one2)))
}

func TestSimplify(t *testing.T) {
	for _, tt := range []ruleTest{
		{"+ x 0", "x"},
		{"* 1 x", "x"},
		{"* x 0", "0"},
		{"+ x y", "+ x y"},
		// Both rules fire along the same path, in pass order.
		{"+ * x 1 0", "x"},
		{"* + x 0 1", "x"},
		// The zero is exposed after the additive pass already ran.
		{"+ * x 0 y", "+ 0 y"},
		{"* + 0 1 x", "x"},
		{"* * 1 0 x", "0"},
	} {
		assert.Equal(t, tt.expected, ast.Prefix(Simplify(parse(t, tt.input))), tt.input)
	}
}

func TestSimplifyFixedPoint(t *testing.T) {
	for _, tt := range []ruleTest{
		{"+ * x 0 y", "y"},
		{"+ * x 1 0", "x"},
		{"* + * y 0 1 z", "z"},
		{"+ x y", "+ x y"},
	} {
		assert.Equal(t, tt.expected, ast.Prefix(SimplifyFixedPoint(parse(t, tt.input))), tt.input)
	}
}

func TestSimplifierRun(t *testing.T) {
	tree := parse(t, "+ * x 0 y")

	res := Simplifier{}.Run(tree)
	assert.Equal(t, "+ 0 y", ast.Prefix(res.Tree))
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 1, res.Trace.Total)
	assert.Equal(t, map[string]int{"mult_by_zero": 1}, res.Trace.Counts)

	res = Simplifier{FixedPoint: true}.Run(tree)
	assert.Equal(t, "y", ast.Prefix(res.Tree))
	assert.Equal(t, 3, res.Rounds)
	assert.Equal(t, 2, res.Trace.Total)
	assert.Equal(t, map[string]int{"mult_by_zero": 1, "additive_identity": 1}, res.Trace.Counts)

	res = Simplifier{FixedPoint: true, MaxRounds: 1}.Run(tree)
	assert.Equal(t, "+ 0 y", ast.Prefix(res.Tree))

	res = Simplifier{}.Run(parse(t, "+ x y"))
	assert.Equal(t, 1, res.Rounds)
	assert.Zero(t, res.Trace.Total)
	assert.Nil(t, res.Trace.Counts)
}

func TestSimplifierFold(t *testing.T) {
	// Folding runs after the identity rules, so "* 1 1" is reduced by the
	// multiplicative identity before folding sees it.
	res := Simplifier{Fold: true}.Run(parse(t, "+ * x * 1 1 - 3 3"))
	assert.Equal(t, "+ x 0", ast.Prefix(res.Tree))
	assert.Equal(t, 1, res.Trace.Counts["constant_fold"])

	res = Simplifier{Fold: true, FixedPoint: true}.Run(parse(t, "+ * x * 1 1 - 3 3"))
	assert.Equal(t, "x", ast.Prefix(res.Tree))

	assert.Len(t, Simplifier{}.Rules(), 3)
	assert.Equal(t, ConstantFold.Name, Simplifier{Fold: true}.Rules()[3].Name)
}

// A single rule reaches its own fixed point in one pass.
func TestRuleIdempotent(t *testing.T) {
	g := &ast.Generator{
		Rand:       rand.New(rand.NewSource(3)),
		Ops:        []string{ast.OpAdd, ast.OpMul, ast.OpSub},
		VarNames:   []string{"x", "y"},
		MaxLiteral: 2,
	}
	for i := 0; i < 300; i++ {
		tree := g.Generate(7)
		for _, r := range Rules() {
			once := r.Apply(tree)
			twice := r.Apply(once)
			require.True(t, ast.Equal(once, twice), "%s on %q: %q then %q",
				r.Name, ast.Prefix(tree), ast.Prefix(once), ast.Prefix(twice))
		}
		fixed := SimplifyFixedPoint(tree)
		assert.True(t, ast.Equal(fixed, Simplify(fixed)), "fixed point of %q", ast.Prefix(tree))
	}
}

func TestLookup(t *testing.T) {
	for name, expected := range map[string]string{
		"arith_id":                "additive_identity",
		"additive_identity":       "additive_identity",
		"mult_id":                 "multiplicative_identity",
		"MULT_BY_ZERO":            "mult_by_zero",
		"fold":                    "constant_fold",
		"multiplicative_identity": "multiplicative_identity",
	} {
		r, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, r.Name)
	}

	_, err := Lookup("distribute")
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestDeepRewrite(t *testing.T) {
	const depth = 100000
	var tree ast.Node = ast.NewLeaf("x")
	for i := 0; i < depth; i++ {
		tree = ast.NewBinaryOp("+", tree, ast.NewLeaf("0"))
	}
	assert.Equal(t, "x", ast.Prefix(AdditiveIdentity.Apply(tree)))
}
