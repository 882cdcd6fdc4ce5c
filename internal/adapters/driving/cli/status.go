package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Check whether the stored browser cookies are still accepted by the hub
and show the authenticated profile.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	info, err := sessionService.Verify(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not determine authentication status: %w", err)
	}
	if info == nil {
		return loginHint(fmt.Errorf("%w: the hub rejected the stored cookies", domain.ErrAuthRequired))
	}

	cmd.Println("Authenticated.")
	if info.Name != "" {
		cmd.Printf("  Name:    %s\n", info.Name)
	}
	if info.Email != "" {
		cmd.Printf("  Email:   %s\n", info.Email)
	}
	if info.PublicUID != "" {
		cmd.Printf("  User ID: %s\n", info.PublicUID)
	}

	return nil
}
