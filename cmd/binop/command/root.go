// Package command implements the binop command line.
package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.creack.net/binop/ast"
	"go.creack.net/binop/parser"
	"go.creack.net/binop/rewrite"
)

// Configuration keys. Each can be set in the config file, with a BINOP_
// prefixed environment variable or with the flag of the same name (dashes
// instead of underscores).
const (
	KeyNotation   = "notation"
	KeyStrict     = "strict"
	KeyFold       = "fold"
	KeyFixedPoint = "fixed_point"
	KeyMaxRounds  = "max_rounds"
	KeyHistory    = "history"
)

const envPrefix = "BINOP"

// NewRootCmd returns the binop command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:          "binop",
		Short:        "Parse, print and simplify binary arithmetic expressions in prefix notation.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile)
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to an explicit configuration file")
	cmd.PersistentFlags().Bool(flagName(KeyStrict), false, "reject unknown operators and trailing tokens")

	cmd.AddCommand(
		NewPrintCmd(v),
		NewSimplifyCmd(v),
		NewCheckCmd(v),
		NewReplCmd(v),
		NewGenerateCmd(),
		NewVersionCmd(),
	)
	return cmd
}

func loadConfig(v *viper.Viper, file string) error {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyNotation, ast.NotationPrefix.String())
	v.SetDefault(KeyMaxRounds, rewrite.DefaultMaxRounds)
	v.SetDefault(KeyHistory, defaultHistory)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("binop")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "binop"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		glog.V(1).Infof("No config file found, going by flags and defaults only.")
		return nil
	}
	glog.V(1).Infof("Using config file %s.", v.ConfigFileUsed())
	return nil
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// bindFlags binds the named keys to the flags of the running command. It is
// called from RunE as several subcommands define flags for the same key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := flags.Lookup(flagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", f.Name, err)
		}
	}
	return nil
}

// settings is the resolved configuration shared by the subcommands.
type settings struct {
	notation   ast.Notation
	strict     bool
	simplifier rewrite.Simplifier
}

func settingsFrom(v *viper.Viper) (settings, error) {
	notation, ok := ast.ParseNotation(v.GetString(KeyNotation))
	if !ok {
		return settings{}, fmt.Errorf("unknown notation %q", v.GetString(KeyNotation))
	}
	return settings{
		notation: notation,
		strict:   v.GetBool(KeyStrict),
		simplifier: rewrite.Simplifier{
			Fold:       v.GetBool(KeyFold),
			FixedPoint: v.GetBool(KeyFixedPoint),
			MaxRounds:  v.GetInt(KeyMaxRounds),
		},
	}, nil
}

func (s settings) parse(input string) (ast.Node, error) {
	tree, err := parser.ParseString(input, parser.Strict(s.strict))
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", input, err)
	}
	return tree, nil
}
