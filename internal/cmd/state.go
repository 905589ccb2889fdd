package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newStateCmd creates the state command with subcommands.
func newStateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Manage application state",
		Long: `Manage confkit application state.

State is a flat set of key-value pairs stored as key=value lines,
one entry per line. Lines without '=' are ignored on load.

Subcommands:
  get    Get a state value
  set    Set a state value
  list   List all state values
  unset  Remove a state value`,
	}

	cmd.AddCommand(newStateGetCmd(provider))
	cmd.AddCommand(newStateSetCmd(provider))
	cmd.AddCommand(newStateListCmd(provider))
	cmd.AddCommand(newStateUnsetCmd(provider))

	return cmd
}

// newStateGetCmd creates the "state get" subcommand.
func newStateGetCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a state value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, ok := app.State.Get(key)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
					"set":   ok,
				})
			}

			if !ok {
				fmt.Fprintf(app.Out, "%s (not set)\n", key)
				return nil
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}
}

// newStateSetCmd creates the "state set" subcommand.
func newStateSetCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a state value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.State.Set(args[0], args[1]); err != nil {
				return err
			}
			app.Log.Debug().Str("key", args[0]).Msg("state set")
			return nil
		},
	}
}

// newStateListCmd creates the "state list" subcommand.
func newStateListCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all state values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			all := app.State.All()
			if app.JSON {
				return json.NewEncoder(app.Out).Encode(all)
			}

			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(app.Out, "%s=%s\n", key, all[key])
			}
			return nil
		},
	}
}

// newStateUnsetCmd creates the "state unset" subcommand.
func newStateUnsetCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a state value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.State.Unset(args[0]); err != nil {
				return err
			}
			app.Log.Debug().Str("key", args[0]).Msg("state unset")
			return nil
		},
	}
}
