package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command with subcommands.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration values",
		Long: `Manage confkit configuration values.

Configuration is a flat set of key-value pairs stored as a JSON document.
Values are kept as strings; on export, values that look like base-10
integers are emitted as numbers.

Subcommands:
  get     Get a configuration value
  set     Set a configuration value
  list    List all configuration values
  unset   Remove a configuration value
  import  Replace configuration from a JSON document
  export  Print configuration as a JSON document`,
	}

	cmd.AddCommand(newConfigGetCmd(provider))
	cmd.AddCommand(newConfigSetCmd(provider))
	cmd.AddCommand(newConfigListCmd(provider))
	cmd.AddCommand(newConfigUnsetCmd(provider))
	cmd.AddCommand(newConfigImportCmd(provider))
	cmd.AddCommand(newConfigExportCmd(provider))

	return cmd
}

// newConfigGetCmd creates the "config get" subcommand.
func newConfigGetCmd(provider *AppProvider) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the value of a configuration key.

Prints the bare value if the key is set, the fallback if one is given,
or "key (not set)" otherwise.

Examples:
  ck config get app_name
  ck config get max_connections --fallback 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			set := app.Config.Has(key)
			value := app.Config.Get(key, fallback)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
					"set":   set,
				})
			}

			if !set && !cmd.Flags().Changed("fallback") {
				fmt.Fprintf(app.Out, "%s (not set)\n", key)
				return nil
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Value to print when the key is not set")

	return cmd
}

// newConfigSetCmd creates the "config set" subcommand.
func newConfigSetCmd(provider *AppProvider) *cobra.Command {
	var asInt bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration key to a value.

With --int the value must parse as a base-10 integer and is exported
as a number.

Examples:
  ck config set app_name TestApp
  ck config set max_connections 100 --int`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if asInt {
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("value %q is not an integer", value)
				}
				if err := app.Config.SetInt(key, n); err != nil {
					return err
				}
			} else {
				if err := app.Config.Set(key, value); err != nil {
					return err
				}
			}

			app.Log.Debug().Str("key", key).Str("value", value).Msg("config set")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asInt, "int", false, "Store the value as an integer")

	return cmd
}

// newConfigListCmd creates the "config list" subcommand.
func newConfigListCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(app.Config.All())
			}

			all := app.Config.All()
			for _, key := range app.Config.Keys() {
				fmt.Fprintf(app.Out, "%s=%s\n", key, all[key])
			}
			return nil
		},
	}
}

// newConfigUnsetCmd creates the "config unset" subcommand.
func newConfigUnsetCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.Config.Unset(args[0]); err != nil {
				return err
			}
			app.Log.Debug().Str("key", args[0]).Msg("config unset")
			return nil
		},
	}
}

// newConfigImportCmd creates the "config import" subcommand.
func newConfigImportCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace configuration from a JSON document",
		Long: `Replace the whole configuration with the given JSON document.

The document must be a JSON object; string, integer and boolean values
are kept, other kinds are skipped. A malformed document changes nothing.
Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading import document: %w", err)
			}

			if err := app.Config.Import(data); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Imported %d entries\n", len(app.Config.All()))
			return nil
		},
	}
}

// newConfigExportCmd creates the "config export" subcommand.
func newConfigExportCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print configuration as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			out, err := app.Config.Export()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, string(out))
			return nil
		},
	}
}
