// Package cli implements the flowtask command-line interface: global flags,
// exit codes, output modes, and one subcommand per dashboard area.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
	"github.com/mesh-intelligence/flowtask/internal/tui"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	jsonMode  bool
	ephemeral bool
}

// env is the per-invocation state shared by subcommands.
type env struct {
	flags rootFlags

	// clip writes to the system clipboard.
	clip func(string) error
	// dash runs the interactive dashboard.
	dash func(app *dashboard.App) error
	now  func() time.Time
}

func defaultEnv() *env {
	return &env{
		clip: clipboard.WriteAll,
		dash: func(app *dashboard.App) error { return tui.Run(app) },
		now:  time.Now,
	}
}

// NewRootCmd creates the top-level "flowtask" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultEnv())
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "flowtask",
		Short: "A personal productivity dashboard for the terminal",
		Long: "FlowTask keeps todos, a daily timeline, sticky notes, quotes, a small\n" +
			"clipboard vault and completion stats in one local store.\n" +
			"Run without a subcommand to open the dashboard.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          e.runDash,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/flowtask)")
	pf.StringVar(&e.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/flowtask)")
	pf.StringVar(&e.flags.backend, "backend", "", "storage backend: sqlite, json or memory (default: from config, else sqlite)")
	pf.StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: from config, else warn)")
	pf.BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")
	pf.BoolVar(&e.flags.ephemeral, "ephemeral", false, "use an in-memory store that is discarded on exit")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(e),
		newDashCmd(e),
		newStatusCmd(e),
		newTodoCmd(e),
		newTimelineCmd(e),
		newNoteCmd(e),
		newQuoteCmd(e),
		newVaultCmd(e),
		newHistoryCmd(e),
		newStatsCmd(e),
		newThemeCmd(e),
		newColorsCmd(e),
		newExportCmd(e),
		newImportCmd(e),
	)
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "flowtask:", err)
	}
	os.Exit(ExitCode(err))
}

// usageError marks bad flags, arguments and references.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// usageArgs wraps a cobra argument validator so its failures count as user errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// userErrors are the sentinels caused by the input rather than the system.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrEmptyText,
	types.ErrInvalidField,
	types.ErrInvalidCategory,
	types.ErrInvalidIndex,
	types.ErrLastQuote,
	types.ErrInvalidVaultType,
	types.ErrNotImage,
	types.ErrImageTooLarge,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var u usageError
	if errors.As(err, &u) {
		return exitUserError
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}

func (e *env) runDash(cmd *cobra.Command, _ []string) error {
	return e.withSession(cmd, func(s *session) error {
		return e.dash(s.app)
	})
}

func newDashCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Args:  usageArgs(cobra.NoArgs),
		RunE:  e.runDash,
	}
}
