package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/session"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the dashboard",
		Long:  "Clears the session flag. Gated commands will redirect to login afterwards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	sess := session.NewService(s)

	active, err := sess.IsActive()
	if err != nil {
		return err
	}
	if !active {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := sess.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
