package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the chat",
	Long:  `Switch to the specified profile and immediately start the chat.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileName := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if err := cfg.SwitchProfile(profileName); err != nil {
			log.Fatalf("Failed to switch profile: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		cfg.OverrideServerURL(serverURL)
		cfg.OverrideTranscript(transcriptPath)
		return runChat(cfg)
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
