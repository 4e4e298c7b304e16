package tiny64cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rzbill/tiny64/pkg/id"
	logpkg "github.com/rzbill/tiny64/pkg/log"
	"github.com/spf13/cobra"
)

// Exit codes returned by Main.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Options wires the command to its collaborators. Zero values fall back to
// stdout, stderr, the process default generator and a stderr text logger.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	Generator *id.Generator
	Logger    logpkg.Logger
}

// UsageError reports a malformed invocation.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string { return e.err.Error() }
func (e *UsageError) Unwrap() error { return e.err }

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = logpkg.NewLogger(
			logpkg.WithLevel(logpkg.WarnLevel),
			logpkg.WithFormatter(&logpkg.TextFormatter{}),
			logpkg.WithOutput(logpkg.NewWriterOutput(o.Err)),
		)
	}
	return o
}

// NewRootCommand constructs the tiny64 command.
func NewRootCommand(opts Options) *cobra.Command {
	opts = opts.withDefaults()

	generate := id.Generate
	if opts.Generator != nil {
		generate = opts.Generator.Generate
	}

	root := &cobra.Command{
		Use:   "tiny64",
		Short: "Generate a time-ordered compact unique ID",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := generate()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	})
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})
	return root
}

// Main runs the command with args (without the program name) and returns the
// process exit code.
func Main(args []string, opts Options) int {
	opts = opts.withDefaults()
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	root := NewRootCommand(opts)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(opts.Err, "Error: %v\nRun 'tiny64 --help' for usage.\n", usage)
		return ExitUsage
	}
	opts.Logger.WithComponent("tiny64").Error("failed to generate id", logpkg.Err(err))
	return ExitError
}
