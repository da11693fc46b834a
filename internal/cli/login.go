package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdmorgan/comment-dash/internal/session"
)

func newLoginCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the dashboard",
		Long:  "Prompts for a username and password and sets the session flag. Credentials are not verified against anything; both fields just have to be non-empty.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(os.Stdin, server)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "comments server URL (persisted to config)")

	return cmd
}

func runLogin(in io.Reader, serverFlag string) error {
	reader := bufio.NewReader(in)

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Print("Password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if errs := validateCredentials(username, password); len(errs) > 0 {
		for _, field := range []string{"username", "password"} {
			if msg, ok := errs[field]; ok {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		}
		return fmt.Errorf("login failed")
	}

	if serverFlag != "" {
		cfg, err := loadConfig()
		if err != nil {
			cfg = CLIConfig{}
		}
		cfg.ServerURL = serverFlag
		if err := saveConfig(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := session.NewService(s).Activate(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("✓ Logged in. Welcome, %s!\n", strings.TrimSpace(username))
	return nil
}

// validateCredentials checks that both fields are non-empty after
// trimming. There is no real credential check behind the login gate.
func validateCredentials(username, password string) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(username) == "" {
		errs["username"] = "Field is required"
	}
	if strings.TrimSpace(password) == "" {
		errs["password"] = "Field is required"
	}
	return errs
}
