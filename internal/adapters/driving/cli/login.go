package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	loginCookies   string
	loginClipboard bool
)

// readClipboard is reassigned in tests.
var readClipboard = clipboard.ReadAll

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to TripleTen using browser cookies",
	Long: `Store the browser session cookies used to authenticate hub requests.

While logged in to the hub in your browser, copy the Cookie header
value from the developer tools (Network tab, any request to the hub).
The cookie string can be passed with --cookies, read from the
clipboard, or entered at a prompt.

Examples:
  # Read the cookie string from the clipboard
  tripleten login

  # Pass the cookie string explicitly
  tripleten login --cookies "sessionid=abc123; csrftoken=def456"`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(
		&loginCookies, "cookies", "", "full cookie string from your browser (copy from Developer Tools)")
	loginCmd.Flags().BoolVar(
		&loginClipboard, "clipboard", true, "read cookies from the clipboard when --cookies is not given")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	cookies := strings.TrimSpace(loginCookies)

	// 1. Try the clipboard when no explicit cookie string was given.
	if cookies == "" && loginClipboard {
		cmd.Println("Attempting to read cookies from clipboard...")
		content, err := readClipboard()
		switch {
		case err != nil:
			cmd.Printf("Could not read from clipboard: %v\n", err)
		case strings.Contains(content, "="):
			cookies = strings.TrimSpace(content)
			cmd.Println("Cookies read from clipboard successfully.")
		default:
			cmd.Println("No valid cookie data found in clipboard.")
		}
	}

	// 2. Fall back to prompting.
	if cookies == "" {
		prompted, err := promptCookies(cmd)
		if err != nil {
			return fmt.Errorf("read cookie string: %w", err)
		}
		cookies = strings.TrimSpace(prompted)
	}

	if cookies == "" {
		cmd.Println("No cookies provided. The CLI will use sample data only.")
		return nil
	}

	// 3. Replace the jar wholesale and persist it.
	count, saveErr := sessionService.Login(cmd.Context(), cookies)
	if saveErr != nil {
		cmd.Printf("Warning: parsed %d cookies but could not save them: %v\n", count, saveErr)
		cmd.Println("The session will work for this run only.")
	} else {
		cmd.Printf("Saved %d cookies to %s\n", count, sessionService.JarPath())
	}
	if count == 0 {
		cmd.Println("Warning: no cookie pairs found in the provided string.")
	}

	// 4. Probe the hub to confirm the session works.
	cmd.Println("Testing authentication...")
	info, err := sessionService.Verify(cmd.Context())
	switch {
	case err != nil:
		cmd.Printf("Warning: could not verify authentication: %v\n", err)
		if saveErr == nil {
			cmd.Println("Cookies have been saved, but may need to be refreshed if requests fail.")
		}
	case info == nil:
		cmd.Println("The hub rejected the stored cookies. Copy a fresh cookie string and log in again.")
	default:
		cmd.Printf("Successfully authenticated. Logged in as %s.\n", info.DisplayName())
	}

	return nil
}
