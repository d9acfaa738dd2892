package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/glog"
	"github.com/kr/pretty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.creack.net/binop/ast"
	"go.creack.net/binop/rewrite"
)

const (
	ps1 = "binop> "

	defaultHistory = ".binop_history"

	allRules = "all"
)

func NewReplCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively and print them simplified.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags(), KeyNotation, KeyStrict, KeyFold, KeyFixedPoint, KeyMaxRounds, KeyHistory); err != nil {
				return err
			}
			s, err := settingsFrom(v)
			if err != nil {
				return err
			}
			return repl(newSession(s, cmd.OutOrStdout()), v.GetString(KeyHistory))
		},
	}
	registerNotationFlag(cmd)
	registerSimplifyFlags(cmd)
	cmd.Flags().String(flagName(KeyHistory), defaultHistory, "history file")
	return cmd
}

// session holds the REPL state. It is separate from the terminal so it can
// be driven line by line.
type session struct {
	settings
	rule *rewrite.Rule // nil runs the simplifier.
	out  io.Writer
}

var errExit = errors.New("exit")

func newSession(s settings, out io.Writer) *session {
	return &session{settings: s, out: out}
}

const replHelp = `Help
	exit                     // Exit
	help                     // this help
	<expression>             // simplify and print a prefix expression
	:rule <name>|all         // apply a single rule instead of the simplifier
	:notation <name>         // prefix, infix, postfix or tree
	:fold [t|f]              // toggle constant folding
	:fixed [t|f]             // toggle fixed-point iteration
	:print <expression>      // print in every notation without rewriting
	:stats <expression>      // print the size of the expression
	:dump <expression>       // dump the parsed tree
`

// eval runs one line of input. It returns errExit when the session is over.
func (s *session) eval(line string) error {
	line = strings.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return nil
	}
	cmd, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i:])
	}

	switch cmd {
	case "exit", "quit":
		return errExit
	case "help":
		fmt.Fprint(s.out, replHelp)
		return nil
	case ":rule":
		if args == "" || args == allRules {
			s.rule = nil
			fmt.Fprintln(s.out, "Rule set to all")
			return nil
		}
		r, err := rewrite.Lookup(args)
		if err != nil {
			return err
		}
		s.rule = &r
		fmt.Fprintf(s.out, "Rule set to %s\n", r.Name)
		return nil
	case ":notation":
		n, ok := ast.ParseNotation(args)
		if !ok {
			return fmt.Errorf("unknown notation %q", args)
		}
		s.notation = n
		fmt.Fprintf(s.out, "Notation set to %s\n", n)
		return nil
	case ":fold":
		b, err := parseToggle(args, s.simplifier.Fold)
		if err != nil {
			return err
		}
		s.simplifier.Fold = b
		fmt.Fprintf(s.out, "Fold set to %t\n", b)
		return nil
	case ":fixed":
		b, err := parseToggle(args, s.simplifier.FixedPoint)
		if err != nil {
			return err
		}
		s.simplifier.FixedPoint = b
		fmt.Fprintf(s.out, "Fixed point set to %t\n", b)
		return nil
	case ":print":
		tree, err := s.parse(args)
		if err != nil {
			return err
		}
		for _, n := range []ast.Notation{ast.NotationPrefix, ast.NotationInfix, ast.NotationPostfix} {
			fmt.Fprintf(s.out, "%-8s %s\n", n.String()+":", ast.Format(tree, n))
		}
		return nil
	case ":stats":
		tree, err := s.parse(args)
		if err != nil {
			return err
		}
		st := ast.Measure(tree)
		fmt.Fprintf(s.out, "nodes: %d, leaves: %d, operators: %d, height: %d\n", st.Nodes, st.Leaves, st.Operators, st.Height)
		return nil
	case ":dump":
		tree, err := s.parse(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%# v\n", pretty.Formatter(tree))
		return nil
	}
	if cmd[0] == ':' {
		return fmt.Errorf("unknown command: %q", cmd)
	}

	tree, err := s.parse(line)
	if err != nil {
		return err
	}
	if s.rule != nil {
		tree = s.rule.Apply(tree)
	} else {
		res := s.simplifier.Run(tree)
		tree = res.Tree
		glog.V(2).Infof("%d rewrites in %d rounds %v", res.Trace.Total, res.Rounds, res.Trace.Counts)
	}
	fmt.Fprintln(s.out, ast.Format(tree, s.notation))
	return nil
}

// parseToggle flips cur when s is empty and parses s as a boolean otherwise.
func parseToggle(s string, cur bool) (bool, error) {
	switch s {
	case "":
		return !cur, nil
	case "t", "on":
		return true, nil
	case "f", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return cur, fmt.Errorf("cannot parse %q as a valid boolean - acceptable values: 't'|'true'|'on' or 'f'|'false'|'off'", s)
	}
	return b, nil
}

func repl(s *session, history string) error {
	term, err := terminal(history)
	// Runs after the history is saved, whether or not that succeeded.
	defer func() {
		if err := term.Close(); err != nil {
			glog.Errorf("Failed to restore terminal: %v", err)
		}
	}()
	if os.IsNotExist(err) {
		fmt.Fprintf(s.out, "creating new history file: %q\n", history)
	} else if err != nil {
		glog.Warningf("Could not read history from %q: %v", history, err)
	}
	defer func() {
		if err := saveHistory(term, history); err != nil {
			glog.Errorf("Failed to save history: %v", err)
		}
	}()

	for {
		line, err := term.Prompt(ps1)
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		term.AppendHistory(line)

		if err := s.eval(line); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
}

func terminal(path string) (*liner.State, error) {
	term := liner.NewLiner()
	// Ctrl-C ends the prompt with liner.ErrPromptAborted.
	term.SetCtrlCAborts(true)

	f, err := os.Open(path)
	if err != nil {
		return term, err
	}
	defer f.Close()
	_, err = term.ReadHistory(f)
	return term, err
}

type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// saveHistory rewrites path in full, as the whole history was read at startup.
func saveHistory(h historyWriter, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %q to write history: %w", path, err)
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write history to %q: %w", path, err)
	}
	return f.Close()
}
