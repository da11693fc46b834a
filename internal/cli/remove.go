package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/dashboard"
	"github.com/jdmorgan/comment-dash/internal/session"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a comment",
		Long:  "Delete a comment by ID, after confirmation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runRemove(arg string, force bool) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid comment ID: %s", arg)
	}

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

	found := false
	for _, c := range ctrl.Items() {
		if c.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("comment %d not found", id)
	}

	confirm := func() bool { return true }
	if !force {
		confirm = func() bool { return confirmPrompt(id) }
	}

	ctrl.RequestDelete(id, confirm)
	return n.err()
}

// confirmPrompt asks the user to confirm the delete. Anything but an
// explicit yes declines.
func confirmPrompt(id int64) bool {
	fmt.Printf("Are you sure you want to delete comment #%d? [y/N]: ", id)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
