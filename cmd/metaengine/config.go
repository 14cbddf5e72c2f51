package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/metaengine"
	"github.com/eringen/metaengine/metaconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the persisted SEO meta config",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current meta config as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *metaconfig.Store) error {
			return printJSON(cmd, s.Config())
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set field=value...",
	Short: "Update fields of the meta config",
	Long: `Update one or more fields, named as in the JSON output of "config show".
The merged result is validated with the same rules as the settings form.`,
	Example: `  metaengine config set twitterHandle=@CartBatteryNation googleVerification=abc123`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make(map[string]string, len(args))
		for _, arg := range args {
			k, v, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("expected field=value, got %q", arg)
			}
			values[k] = v
		}
		p, err := metaconfig.PartialFromMap(values)
		if err != nil {
			return err
		}
		return withStore(func(s *metaconfig.Store) error {
			next := metaconfig.Sanitize(p.Apply(s.Config()))
			if err := metaconfig.Validate(next); err != nil {
				return err
			}
			updated, err := s.Update(metaconfig.Full(next))
			if err != nil {
				return err
			}
			return printJSON(cmd, updated)
		})
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the meta config to its defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *metaconfig.Store) error {
			c, err := s.Reset()
			if err != nil {
				return err
			}
			return printJSON(cmd, c)
		})
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configResetCmd)
}

func withStore(fn func(*metaconfig.Store) error) error {
	cfg, err := metaengine.LoadConfig(configPath)
	if err != nil {
		return err
	}
	store, closeFn, err := metaengine.OpenMetaStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(store)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
