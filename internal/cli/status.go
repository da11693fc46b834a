package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/session"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Shows the configured server, whether a session is active, and whether the comments resource is reachable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	fmt.Printf("Server:  %s\n", getServerURL())

	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	active, err := session.NewService(s).IsActive()
	if err != nil {
		return err
	}
	if active {
		fmt.Println("Session: logged in")
	} else {
		fmt.Println("Session: not logged in")
		fmt.Println("\nRun 'cdash login' to log in.")
	}

	comments, err := newAPIClient().List()
	if err != nil {
		fmt.Printf("Status:  ✗ cannot reach comments resource (%v)\n", err)
		return nil
	}
	fmt.Printf("Status:  ✓ connected (%d comments available)\n", len(comments))

	return nil
}
