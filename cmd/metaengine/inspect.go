package main

import (
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/metaengine/inspect"
)

var inspectTimeout time.Duration

var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Fetch a page and list its SEO head tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: inspectTimeout}
		set, err := inspect.Fetch(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		logger.Debug("fetched head", zap.String("url", args[0]), zap.Int("tags", len(set.Tags)))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "title: %s\n\n", set.Title)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, t := range set.Tags {
			fmt.Fprintf(tw, "%s\t%s=%s\t%s\n", t.Element, t.Attr, t.Key, t.Value)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if dups := inspect.Duplicates(set); len(dups) > 0 {
			fmt.Fprintln(out, "\nduplicate tags:")
			for _, d := range dups {
				fmt.Fprintf(out, "  %s %s=%s\n", d.Element, d.Attr, d.Key)
			}
			return fmt.Errorf("%d duplicate head tags", len(dups))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().DurationVar(&inspectTimeout, "timeout", 15*time.Second, "HTTP timeout")
}
