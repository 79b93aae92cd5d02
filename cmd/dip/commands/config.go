package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/bundestag-io/dip-client/internal/constants"
)

// ErrUnknownConfigKey is returned for config keys outside the known set.
var ErrUnknownConfigKey = errors.New("unknown configuration key")

// Config represents the persisted CLI configuration.
type Config struct {
	APIKey  string `json:"api-key,omitempty"  yaml:"api-key,omitempty"`
	BaseURL string `json:"base-url,omitempty" yaml:"base-url,omitempty"`
	Format  string `json:"format,omitempty"   yaml:"format,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage DIP CLI configuration stored in $HOME/.dip/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			display.APIKey = redactKey(display.APIKey)

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(display)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(display)
			default:
				return displayConfigTable(&display)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: api-key, base-url, format, output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := applyConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value. Valid keys: api-key, base-url, format, output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := applyConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Set the API key interactively",
		Long:  "Prompt for the DIP API key without echoing it to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stderr, "API key: ")

			keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))

			fmt.Fprintln(os.Stderr)

			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}

			config := loadConfig()
			config.APIKey = string(keyBytes)

			err = saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("API key saved")

			return nil
		},
	}
}

func applyConfigValue(config *Config, key, value string) error {
	switch key {
	case "api-key":
		config.APIKey = value
	case "base-url":
		config.BaseURL = value
	case "format":
		config.Format = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}

	return nil
}

func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString("api-key"),
		BaseURL: viper.GetString("base-url"),
		Format:  viper.GetString("format"),
		Output:  viper.GetString("output"),
	}
}

func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configFile = filepath.Join(home, ".dip", "config.yml")
	}

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file holds the API key, so keep it owner-readable only.
	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func displayConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Value")

	_ = table.Append("api-key", config.APIKey)
	_ = table.Append("base-url", config.BaseURL)
	_ = table.Append("format", config.Format)
	_ = table.Append("output", config.Output)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func redactKey(key string) string {
	const visible = 4

	if len(key) <= visible {
		if key == "" {
			return ""
		}

		return "****"
	}

	return "****" + key[len(key)-visible:]
}
