package cmd

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backend profiles",
	Long:  `Manage profiles pointing at different chat backends.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range cfg.ProfileNames() {
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile(cfg.Profiles[name], "    ")
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		printProfile(profile, "")
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName = mustPrompt(promptui.Prompt{Label: "Profile name"})
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		cfg.Profiles[profileName] = promptProfile(config.Profile{
			ServerURL: config.DefaultServerURL,
			ChatPath:  config.DefaultChatPath,
		})

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName = mustSelect("Select profile to edit", cfg.ProfileNames())
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.Profiles[profileName] = promptProfile(profile)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName = mustSelect("Select profile to delete", cfg.ProfileNames())
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		if err := cfg.RemoveProfile(profileName); err != nil {
			log.Fatalf("Failed to delete profile: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			others := make([]string, 0, len(cfg.Profiles))
			for _, name := range cfg.ProfileNames() {
				if name != cfg.ActiveProfile {
					others = append(others, name)
				}
			}
			if len(others) == 0 {
				fmt.Println("No other profiles available to switch to")
				return
			}
			profileName = mustSelect("Select profile to switch to", others)
		}

		if err := cfg.SwitchProfile(profileName); err != nil {
			log.Fatalf("Failed to switch profile: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func mustPrompt(prompt promptui.Prompt) string {
	value, err := prompt.Run()
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	return value
}

func mustSelect(label string, items []string) string {
	if len(items) == 0 {
		log.Fatalf("No profiles available")
	}
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, value, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return value
}

// promptProfile asks for every profile field, offering current values as
// defaults.
func promptProfile(current config.Profile) config.Profile {
	profile := current

	profile.ServerURL = mustPrompt(promptui.Prompt{
		Label:    "Server URL",
		Default:  current.ServerURL,
		Validate: validateServerURL,
	})

	profile.ChatPath = mustPrompt(promptui.Prompt{
		Label:   "Chat path",
		Default: current.ChatPath,
	})

	timeout := mustPrompt(promptui.Prompt{
		Label:    "Request timeout in seconds (0 waits forever)",
		Default:  strconv.Itoa(current.TimeoutSeconds),
		Validate: validateTimeout,
	})
	profile.TimeoutSeconds, _ = strconv.Atoi(timeout)

	return profile
}

func validateServerURL(input string) error {
	u, err := url.Parse(input)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server URL must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("server URL needs a host")
	}
	return nil
}

func validateTimeout(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("timeout must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

func printProfile(profile config.Profile, indent string) {
	chatPath := profile.ChatPath
	if chatPath == "" {
		chatPath = config.DefaultChatPath
	}
	timeout := "none"
	if profile.TimeoutSeconds > 0 {
		timeout = fmt.Sprintf("%ds", profile.TimeoutSeconds)
	}

	fmt.Printf("%sServer URL: %s\n", indent, profile.ServerURL)
	fmt.Printf("%sChat Path: %s\n", indent, chatPath)
	fmt.Printf("%sTimeout: %s\n", indent, timeout)
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
