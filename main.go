package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"webpreview/app"
	"webpreview/config"
	"webpreview/log"
	"webpreview/panel"
)

var (
	version        = "0.4.0"
	urlFlag        string
	responsiveFlag bool
	relayAddrFlag  string
	workspaceFlag  string
	watchFlag      bool
	rootCmd        = &cobra.Command{
		Use:   "webpreview",
		Short: "webpreview - Preview a local web app with responsive device sizing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			settings, err := loadSettings()
			if err != nil {
				return err
			}
			// Relay flag overrides config
			if relayAddrFlag != "" {
				settings.RelayAddr = relayAddrFlag
			}

			return app.Run(ctx, app.RunOptions{
				Options: app.Options{
					Settings:   settings,
					InitialURL: urlFlag,
					Responsive: responsiveFlag,
				},
				WorkspaceDir: workspaceFlag,
				Watch:        watchFlag,
			})
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Forget the last previewed URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			if err := config.SaveState(config.DefaultState()); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Println("Preview state has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			settingsJson, _ := json.MarshalIndent(settings, "", "  ")

			fmt.Printf("Config: %s\n", filepath.Join(configDir, config.ConfigFileName))
			fmt.Printf("Workspace: %s\n", filepath.Join(workspaceFlag, config.WorkspaceFileName))
			fmt.Printf("Settings:\n%s\n", settingsJson)

			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				fmt.Printf("Terminal: %dx%d cells (%dx%d px)\n", w, h, w*8, h*16)
			} else {
				fmt.Println("Terminal: not a terminal")
			}
			return nil
		},
	}

	commandsCmd = &cobra.Command{
		Use:   "commands",
		Short: "List the panel commands bound to keys",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range panel.Commands {
				fmt.Println(c)
			}
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of webpreview",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("webpreview version %s\n", version)
		},
	}
)

// loadSettings layers the global config and the workspace file.
func loadSettings() (config.Settings, error) {
	ws, err := config.LoadWorkspace(workspaceFlag)
	if err != nil {
		return config.Settings{}, err
	}
	return config.Resolve(config.LoadConfig(), ws), nil
}

func init() {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	rootCmd.Flags().StringVarP(&urlFlag, "url", "u", "",
		"URL to open instead of the last previewed one")
	rootCmd.Flags().BoolVarP(&responsiveFlag, "responsive", "r", false,
		"Start in responsive view once the panel is wide enough")
	rootCmd.Flags().StringVar(&relayAddrFlag, "relay-addr", "",
		"Listen address of the browser relay (e.g. 127.0.0.1:7420)")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", true,
		"Reload settings when the config files change")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", cwd,
		"Directory holding "+config.WorkspaceFileName)

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(commandsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
