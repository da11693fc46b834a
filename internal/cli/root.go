// Package cli defines the cobra command tree for comment-dash.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/api"
	"github.com/jdmorgan/comment-dash/internal/dashboard"
	"github.com/jdmorgan/comment-dash/internal/logging"
	"github.com/jdmorgan/comment-dash/internal/store"
)

var (
	flagFormat  string
	flagState   string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cdash",
		Short:         "Browse and manage a remote comments collection",
		Long:          "A dashboard for a remote comments collection. Log in, browse and search comments, delete them, and post new ones, from one-shot commands or the interactive dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagState, "state", "", "state database path (default: ~/.comment-dash/state.db)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newListCmd(),
		newCreateCmd(),
		newRemoveCmd(),
		newDashCmd(),
		newVersionCmd(),
	)

	return root
}

// openStore opens the state database using the --state flag, the
// CDASH_STATE_DB env var, or the default path.
func openStore() (*store.Store, error) {
	path := flagState
	if path == "" {
		path = os.Getenv("CDASH_STATE_DB")
	}
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(path)
}

// closeStore closes the state store, logging any error to stderr.
func closeStore(s *store.Store) {
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing state store: %v\n", err)
	}
}

// newAPIClient creates an HTTP client for the comments resource.
func newAPIClient() *api.Client {
	return api.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// errNotLoggedIn is what gated commands return when the session flag is
// absent.
var errNotLoggedIn = errors.New("not logged in — run 'cdash login' first")

// notifier collects controller notifications for one-shot commands:
// info messages print immediately, the last error becomes the command's
// returned error.
type notifier struct {
	lastErr string
}

func (n *notifier) sink(note dashboard.Notification) {
	if note.Level == dashboard.LevelError {
		n.lastErr = note.Message
		return
	}
	fmt.Println(note.Message)
}

func (n *notifier) err() error {
	if n.lastErr == "" {
		return nil
	}
	return errors.New(n.lastErr)
}
