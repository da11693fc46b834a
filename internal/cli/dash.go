package cli

import (
	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/session"
	"github.com/jdmorgan/comment-dash/internal/tui"
)

func newDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Long:  "Opens the full-screen dashboard: log in, browse and search the comment table, delete with confirmation, and create new comments.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash()
		},
	}
}

func runDash() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	return tui.Run(session.NewService(s), session.NewSlot(s), newAPIClient())
}
