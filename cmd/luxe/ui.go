package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luxe/internal/tui"
)

func newUICmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"dashboard"},
		Short:   "Launch the interactive client",
		Long:    `Launch the terminal client: search by photo, virtual try-on, results and profile screens.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	return cmd
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Logger.Component("tui")
	log.Info("launching interactive client")

	model := tui.NewModel(tui.Options{
		Service: app.Client,
		Encoder: app.Encoder,
		History: app.History,
		Theme:   app.Config.Theme,
		Logger:  log,
		Context: cmd.Context(),
	})

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "interactive client stopped")
		return fmt.Errorf("run interactive client: %w", err)
	}
	return nil
}
