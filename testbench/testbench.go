// Package testbench runs file based rewrite fixtures.
//
// A fixture root holds one directory per category. Each category directory
// has an inputs/ and an outputs/ directory with files of the same name: the
// input holds one prefix expression, the output the expected prefix form
// after the category's rule ran once. The category name is a rule name or
// alias (see rewrite.Lookup), or "simplify" for the full driver.
package testbench

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.creack.net/binop/ast"
	"go.creack.net/binop/parser"
	"go.creack.net/binop/rewrite"
)

// SimplifyCategory names the category that runs rewrite.Simplify.
const SimplifyCategory = "simplify"

const (
	inputsDir  = "inputs"
	outputsDir = "outputs"
)

// ErrMismatch is reported by a Result whose output differs from the fixture.
var ErrMismatch = errors.New("output mismatch")

// Case is a single fixture.
type Case struct {
	Category string
	Name     string
	Input    string
	Expected string
}

// Result is the outcome of running a Case.
type Result struct {
	Case
	Got string
	Err error
}

// OK reports whether the case passed.
func (r Result) OK() bool { return r.Err == nil }

func (r Result) String() string {
	if r.OK() {
		return fmt.Sprintf("ok   %s/%s", r.Category, r.Name)
	}
	return fmt.Sprintf("FAIL %s/%s: %s", r.Category, r.Name, r.Err)
}

// Categories lists the category directories under the root of fsys.
func Categories(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read fixture root: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if fi, err := fs.Stat(fsys, path.Join(e.Name(), inputsDir)); err == nil && fi.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// Load reads every case of a category, sorted by name.
func Load(fsys fs.FS, category string) ([]Case, error) {
	entries, err := fs.ReadDir(fsys, path.Join(category, inputsDir))
	if err != nil {
		return nil, fmt.Errorf("read inputs of %q: %w", category, err)
	}
	var cases []Case
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		input, err := fs.ReadFile(fsys, path.Join(category, inputsDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read input %q: %w", e.Name(), err)
		}
		expected, err := fs.ReadFile(fsys, path.Join(category, outputsDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read output %q: %w", e.Name(), err)
		}
		cases = append(cases, Case{
			Category: category,
			Name:     e.Name(),
			Input:    strings.TrimSpace(string(input)),
			Expected: strings.TrimSpace(string(expected)),
		})
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

func rewriter(category string) (func(ast.Node) ast.Node, error) {
	if strings.EqualFold(category, SimplifyCategory) {
		return rewrite.Simplify, nil
	}
	r, err := rewrite.Lookup(category)
	if err != nil {
		return nil, err
	}
	return r.Apply, nil
}

// Run parses the case input, applies the category's rule and compares the
// prefix output with the expected text exactly.
func Run(c Case, opts ...parser.Option) Result {
	res := Result{Case: c}
	fn, err := rewriter(c.Category)
	if err != nil {
		res.Err = err
		return res
	}
	tree, err := parser.ParseString(c.Input, opts...)
	if err != nil {
		res.Err = fmt.Errorf("parse %q: %w", c.Input, err)
		return res
	}
	res.Got = ast.Prefix(fn(tree))
	if res.Got != c.Expected {
		res.Err = fmt.Errorf("%w: expected %q, got %q", ErrMismatch, c.Expected, res.Got)
	}
	return res
}

// RunAll loads and runs every category of fsys.
func RunAll(fsys fs.FS, opts ...parser.Option) ([]Result, error) {
	categories, err := Categories(fsys)
	if err != nil {
		return nil, err
	}
	var results []Result
	for _, category := range categories {
		cases, err := Load(fsys, category)
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			results = append(results, Run(c, opts...))
		}
	}
	return results, nil
}
