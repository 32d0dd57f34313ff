package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type historyOptions struct {
	jsonOutput bool
}

type historyJSONPayload struct {
	Count   int            `json:"count"`
	Entries []historyEntry `json:"entries"`
}

type historyEntry struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past searches and try-ons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runHistory(cmd *cobra.Command, flags *rootFlags, opts *historyOptions) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	entries, err := app.History.List(cmd.Context())
	if err != nil {
		return newCommandError("list history", "reading history", err, "Check --history-file.")
	}

	if opts.jsonOutput {
		payload := historyJSONPayload{Count: len(entries), Entries: make([]historyEntry, len(entries))}
		for i, e := range entries {
			payload.Entries[i] = historyEntry{ID: e.ID, Type: string(e.Type), Date: e.Date, Status: e.Status}
		}
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history yet.")
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTYPE\tDATE\tSTATUS")
	for _, e := range entries {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", e.ID, e.Type.Label(), sanitizeCell(e.Date), sanitizeCell(e.Status))
	}
	return writer.Flush()
}
