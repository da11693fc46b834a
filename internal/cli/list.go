package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/dashboard"
	"github.com/jdmorgan/comment-dash/internal/session"
)

func newListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List comments",
		Long:  "Fetch and list the comments collection, optionally filtered by a case-insensitive search over name, email and body.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(search)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter comments by substring")

	return cmd
}

func runList(search string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	var n notifier
	ctrl := dashboard.NewListController(
		session.NewService(s),
		session.NewSlot(s),
		newAPIClient(),
		n.sink,
	)

	if err := ctrl.Activate(); err != nil {
		if errors.Is(err, dashboard.ErrLoginRequired) {
			return errNotLoggedIn
		}
		return err
	}
	if err := n.err(); err != nil {
		return err
	}

	ctrl.SetQuery(search)
	visible := ctrl.Visible()

	if isJSON() {
		return printJSON(visible)
	}
	return printCommentTable(visible)
}
