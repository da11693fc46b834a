package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jdmorgan/comment-dash/internal/comment"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCommentTable prints comments as a formatted table.
func printCommentTable(comments []comment.Comment) error {
	if len(comments) == 0 {
		fmt.Println("No comments found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMMENT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-----\t-------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			c.ID, truncate(c.Name, 30), truncate(c.Email, 30), truncate(oneLine(c.Body), 50)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d comments\n", len(comments))
	return nil
}

// printCommentSummary prints a single comment in text format.
func printCommentSummary(c *comment.Comment) {
	fmt.Printf("Comment #%d\n", c.ID)
	fmt.Printf("  Name:   %s\n", c.Name)
	fmt.Printf("  Email:  %s\n", c.Email)
	fmt.Printf("  Body:   %s\n", c.Body)
	if c.PostID != 0 {
		fmt.Printf("  Post:   %d\n", c.PostID)
	}
}

// oneLine flattens newlines so a body fits in one table row.
func oneLine(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
