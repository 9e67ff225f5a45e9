package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nguyentantai21042004/translate-flow/internal/config"
	"github.com/nguyentantai21042004/translate-flow/internal/prompt"
	"github.com/spf13/cobra"
)

func newTonesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List the available translation tones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tones := prompt.DefaultTones()
			current := prompt.DefaultTone

			// The built-in registry is still useful without a valid config.
			if cfg, err := config.Load(*configPath); err == nil {
				tones = append(tones, cfg.Translation.Tones...)
				current = cfg.Translation.Tone
			}

			b := prompt.New(tones, "")
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range b.Tones() {
				marker := " "
				if t.Key == current {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, t.Key, t.Label, t.Description)
			}
			return tw.Flush()
		},
	}
}
