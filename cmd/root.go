package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memofiler/internal/app"
	"memofiler/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "memofiler",
	Short: "Memofiler CLI App",
	Long: `Memofiler analyzes Japanese voice memos and files them into an Obsidian
vault: category, title, tags, related notes and a summary, all derived
locally with an optional LLM pass on top.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		appInstance, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appInstance, err := GetAppFromContext(cmd.Context()); err == nil {
			appInstance.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// Helper function to retrieve the app instance from context
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		// This should not happen if PersistentPreRunE ran successfully
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check vault access and history connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		root := appInstance.Config.Vault.Root
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			return fmt.Errorf("vault root %q is not a readable directory", root)
		}
		fmt.Printf("Vault OK: %s\n", root)

		if err := appInstance.History.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("history store unreachable: %w", err)
		}
		fmt.Println("History OK")

		if appInstance.Config.Oracle.Provider == "" || appInstance.Config.Oracle.Provider == "none" {
			fmt.Println("Oracle: disabled (heuristics only)")
		} else {
			fmt.Printf("Oracle: %s\n", appInstance.Config.Oracle.Provider)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
