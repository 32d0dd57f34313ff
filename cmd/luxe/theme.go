package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/luxe/internal/theme"
	"github.com/alexisbeaulieu97/luxe/pkg/diff"
)

type themeOptions struct {
	jsonOutput bool
	defaults   bool
	diff       bool
}

func newThemeCmd(flags *rootFlags) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the theme the client starts with",
		Long:  `Print the effective theme as YAML, ready to paste under "theme:" in the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Show the built-in theme, ignoring configuration")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show only how the theme differs from the built-in one")
	cmd.MarkFlagsMutuallyExclusive("defaults", "diff")
	cmd.MarkFlagsMutuallyExclusive("json", "diff")

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, opts *themeOptions) error {
	cfg := theme.Default()
	if !opts.defaults {
		loaded, err := loadConfig(cmd, flags)
		if err != nil {
			return err
		}
		cfg = loaded.Theme
	}
	cfg = cfg.Sanitized()

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), cfg)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}

	if opts.diff {
		return renderThemeDiff(cmd, out)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func renderThemeDiff(cmd *cobra.Command, current []byte) error {
	builtin, err := yaml.Marshal(theme.Default())
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}

	out := cmd.OutOrStdout()
	result := diff.Lines(builtin, current, "built-in", "configured")
	if result.Empty() {
		fmt.Fprintln(out, "Theme matches the built-in defaults.")
		return nil
	}

	fmt.Fprint(out, result.Text)
	fmt.Fprintf(out, "\n%d line(s) removed, %d line(s) added\n", result.Removed, result.Added)
	return nil
}
