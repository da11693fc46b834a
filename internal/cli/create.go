package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/dashboard"
	"github.com/jdmorgan/comment-dash/internal/session"
)

func newCreateCmd() *cobra.Command {
	var (
		name   string
		email  string
		body   string
		postID int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a comment",
		Long:  "Post a new comment to the collection. Fields not given as flags are prompted for. The new comment shows at the head of the next list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(os.Stdin, name, email, body, postID)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "comment author name")
	cmd.Flags().StringVar(&email, "email", "", "comment author email")
	cmd.Flags().StringVar(&body, "body", "", "comment text")
	cmd.Flags().Int64Var(&postID, "post", 0, "post to attach the comment to")

	return cmd
}

func runCreate(in io.Reader, name, email, body string, postID int64) error {
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
		return errNotLoggedIn
	}

	reader := bufio.NewReader(in)
	if name == "" {
		if name, err = prompt(reader, "Name: "); err != nil {
			return err
		}
	}
	if email == "" {
		if email, err = prompt(reader, "Email: "); err != nil {
			return err
		}
	}
	if body == "" {
		if body, err = prompt(reader, "Comment: "); err != nil {
			return err
		}
	}

	var n notifier
	ctrl := dashboard.NewCreateController(newAPIClient(), session.NewSlot(s), n.sink, nil)
	ctrl.SetField("name", name)
	ctrl.SetField("email", email)
	ctrl.SetField("body", body)
	if postID > 0 {
		ctrl.SetPostID(postID)
	}

	if !ctrl.Submit() {
		if errs := ctrl.FieldErrors(); len(errs) > 0 {
			for _, field := range []string{"name", "email", "body"} {
				if msg, ok := errs[field]; ok {
					fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
				}
			}
			return fmt.Errorf("validation failed")
		}
		return n.err()
	}

	created := ctrl.Created()
	if isJSON() {
		return printJSON(created)
	}
	printCommentSummary(created)
	return nil
}

// prompt reads a single trimmed line from the reader.
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
