package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Daghis/tcapi/internal/constants"
	"github.com/Daghis/tcapi/pkg/tcclient"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		serverURL string
		token     string
		username  string
		password  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a TeamCity server",
		Long:  "Authenticate with a TeamCity server and save the connection settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL == "" {
				serverURL = viper.GetString("server")
			}

			if serverURL == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Server URL: ")
				serverURL, _ = reader.ReadString('\n')
				serverURL = strings.TrimSpace(serverURL)
			}

			if serverURL == "" {
				return constants.ErrServerRequired
			}

			config := &teamcity.Config{
				ServerURL: serverURL,
				Token:     token,
				Username:  username,
				Password:  password,
			}

			// Prompt for a password when a username was given without one
			if config.Token == "" && config.Username != "" && config.Password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}

				config.Password = string(bytePassword)
			}

			client, err := tcclient.New(config)
			if err != nil {
				return err
			}

			info, err := client.GetServerInfo(context.Background())
			if err != nil {
				return fmt.Errorf("verifying connection: %w", err)
			}

			if err := saveLoginConfig(config); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s (TeamCity %s)\n", config.ServerURL, info.Version)

			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "TeamCity server URL")
	cmd.Flags().StringVar(&token, "token", "", "access token")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username for basic auth")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for basic auth")

	return cmd
}

func saveLoginConfig(config *teamcity.Config) error {
	viper.Set("server", config.ServerURL)
	viper.Set("token", config.Token)
	viper.Set("username", config.Username)
	viper.Set("password", config.Password)

	return writeConfigFile()
}

// writeConfigFile persists the effective viper settings to ~/.tc/config.yml,
// creating the directory on first use.
func writeConfigFile() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".tc")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// The file holds credentials; keep it owner-readable only.
	if err := os.Chmod(configPath, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("restricting config permissions: %w", err)
	}

	return nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current TeamCity server",
		Long:  "Remove the saved connection settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")
			viper.Set("username", "")
			viper.Set("password", "")

			if err := writeConfigFile(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
