package cli

import (
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit stored settings",
	Long: `Show or edit the stored settings.

Known keys:
  default_period    leaderboard period used when --period is not given
  default_interval  watch-mode refresh interval in seconds
  user_id           your public user ID, highlights your row in the table
  session_cookie    shown masked; manage with 'tripleten login' instead

Examples:
  tripleten config show
  tripleten config set default_period 7_days
  tripleten config get default_interval`,
	// Bare 'tripleten config' shows the current settings.
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Values are validated before saving; an
empty value removes the key.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Current configuration:")
	cmd.Printf("Location: %s\n\n", settingsService.Path())

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	for _, row := range settingsService.All() {
		tw.AppendRow(table.Row{row.Key, row.Value})
	}
	tw.Render()

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := settingsService.GetKey(args[0])
	if err != nil {
		return err
	}

	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.SetKey(key, value); err != nil {
		return err
	}

	if value == "" {
		cmd.Printf("Removed %s\n", key)
		return nil
	}

	// Echo the stored value so canonicalised aliases and masking show.
	stored, err := settingsService.GetKey(key)
	if err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", key, stored)

	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println(settingsService.Path())
	return nil
}
