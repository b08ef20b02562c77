// Command unicodeset is a small CLI front end over the unicodeset library:
// resolve/match/regex/list subcommands built on cobra, the same CLI
// toolkit DataDog's agent binaries use for their own subcommand trees.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	unicodeset "github.com/fireproofsocks/unicode-set"
)

var verbose bool

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "unicodeset",
		Short: "Parse and evaluate Unicode Set patterns",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each pipeline stage")

	root.AddCommand(
		newResolveCommand(),
		newMatchCommand(),
		newRegexCommand(),
		newListCommand(),
	)
	return root
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <pattern>",
		Short: "Print the codepoint count and string-literal members of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			log.Debug("resolving pattern", zap.String("pattern", args[0]))

			r, err := unicodeset.Resolve(args[0])
			if err != nil {
				return errors.Wrap(err, "resolve")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "codepoints: %d\n", r.Codepoints.Count())
			for _, s := range r.Strings {
				fmt.Fprintf(cmd.OutOrStdout(), "string: %q\n", s)
			}
			return nil
		},
	}
}

func newMatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> <value>",
		Short: "Report whether value belongs to pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			ok, err := unicodeset.Matches(args[0], args[1])
			if err != nil {
				return errors.Wrap(err, "match")
			}
			log.Debug("matched", zap.String("value", args[1]), zap.Bool("member", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func newRegexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regex <pattern>",
		Short: "Render pattern as a regex character class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := unicodeset.ToRegexClass(args[0])
			if err != nil {
				return errors.Wrap(err, "regex")
			}
			fmt.Fprintln(cmd.OutOrStdout(), class)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <pattern>",
		Short: "Print every resolved codepoint, one per line (sets covering more than half the scalar range print their excluded codepoints as NEGATED entries)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := unicodeset.ToPatternList(args[0])
			if err != nil {
				return errors.Wrap(err, "list")
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}
