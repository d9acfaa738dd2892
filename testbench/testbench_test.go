package testbench

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/binop/lexer"
	"go.creack.net/binop/parser"
	"go.creack.net/binop/rewrite"
)

func TestFixtures(t *testing.T) {
	fsys := os.DirFS("testdata")

	categories, err := Categories(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"arith_id", "constant_fold", "mult_by_zero", "mult_id", "simplify"}, categories)

	results, err := RunAll(fsys, parser.Strict(true))
	require.NoError(t, err)
	require.Len(t, results, 22)
	for _, res := range results {
		assert.True(t, res.OK(), res.String())
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"mult_id/inputs/b.txt":  {Data: []byte("* 1 y\n")},
		"mult_id/inputs/a.txt":  {Data: []byte("  * x 1  \n")},
		"mult_id/outputs/a.txt": {Data: []byte("x\n")},
		"mult_id/outputs/b.txt": {Data: []byte("y")},
	}
	cases, err := Load(fsys, "mult_id")
	require.NoError(t, err)
	assert.Equal(t, []Case{
		{Category: "mult_id", Name: "a.txt", Input: "* x 1", Expected: "x"},
		{Category: "mult_id", Name: "b.txt", Input: "* 1 y", Expected: "y"},
	}, cases)
}

func TestLoadMissingOutput(t *testing.T) {
	fsys := fstest.MapFS{
		"arith_id/inputs/a.txt": {Data: []byte("+ x 0")},
	}
	_, err := Load(fsys, "arith_id")
	require.Error(t, err)

	_, err = RunAll(fsys)
	require.Error(t, err)
}

func TestCategoriesSkipsOtherDirs(t *testing.T) {
	fsys := fstest.MapFS{
		"README":                 {Data: []byte("fixtures")},
		"notes/todo.txt":         {Data: []byte("")},
		"arith_id/inputs/a.txt":  {Data: []byte("+ x 0")},
		"arith_id/outputs/a.txt": {Data: []byte("x")},
	}
	categories, err := Categories(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"arith_id"}, categories)
}

func TestRun(t *testing.T) {
	res := Run(Case{Category: "arith_id", Name: "ok", Input: "+ 0 x", Expected: "x"})
	assert.True(t, res.OK())
	assert.Equal(t, "x", res.Got)
	assert.Equal(t, "ok   arith_id/ok", res.String())

	// Output comparison is whitespace sensitive.
	res = Run(Case{Category: "arith_id", Name: "spaces", Input: "+ x y", Expected: "+ x  y"})
	require.ErrorIs(t, res.Err, ErrMismatch)
	assert.Equal(t, "+ x y", res.Got)
	assert.Contains(t, res.String(), "FAIL arith_id/spaces")

	res = Run(Case{Category: "distribute", Input: "+ x y", Expected: "+ x y"})
	require.ErrorIs(t, res.Err, rewrite.ErrUnknownRule)

	res = Run(Case{Category: "mult_id", Input: "* x", Expected: "x"})
	require.ErrorIs(t, res.Err, parser.ErrUnexpectedEOF)

	res = Run(Case{Category: "mult_id", Input: "* x 1 1", Expected: "x"}, parser.Strict(true))
	require.ErrorIs(t, res.Err, parser.ErrTrailingTokens)
	assert.Contains(t, res.Err.Error(), "at offset 6")

	res = Run(Case{Category: "mult_id", Input: "* x\xfe 1", Expected: "x"})
	require.ErrorIs(t, res.Err, lexer.ErrInvalidInput)

	res = Run(Case{Category: "SIMPLIFY", Input: "+ * x 0 y", Expected: "+ 0 y"})
	assert.True(t, res.OK(), res.String())
}
