package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luxe/internal/api"
	"github.com/alexisbeaulieu97/luxe/internal/session"
	"github.com/alexisbeaulieu97/luxe/internal/upload"
)

type searchOptions struct {
	clothingType string
	jsonOutput   bool
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <image>",
		Short: "Find products similar to a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.clothingType, "type", "t", "", "Clothing type hint: hat, top, bottom, shoes")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runSearch(cmd *cobra.Command, flags *rootFlags, opts *searchOptions, path string) error {
	clothing, err := session.ParseClothingType(opts.clothingType)
	if err != nil {
		return newCommandError("search", "parsing --type", err, "Use one of hat, top, bottom, shoes.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	img, err := app.Encoder.EncodeFile(cmd.Context(), path)
	if err != nil {
		return newCommandError("search", "reading image", err, "Pass a readable image file.")
	}
	app.Logger.Upload(string(upload.SlotSearch), img.Name, img.MIMEType, img.Size).Debug("image encoded")

	resp, err := app.Client.SearchFashion(cmd.Context(), img.DataURL, string(clothing))
	if err != nil {
		return newCommandError("search", "calling the search service", err, "Retry, or check --search-url.")
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	return renderSearchTable(cmd, resp)
}

func renderSearchTable(cmd *cobra.Command, resp *api.SearchResponse) error {
	out := cmd.OutOrStdout()
	if len(resp.Results) == 0 {
		fmt.Fprintln(out, "No matching products found.")
		return nil
	}

	fmt.Fprintln(out, heading(out, fmt.Sprintf("Found %d items", len(resp.Results))))

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tMATCH\tBRAND\tNAME\tPRICE\tURL")
	for i, r := range resp.Results {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			r.MatchBadge(),
			sanitizeCell(r.Brand),
			sanitizeCell(r.Name),
			r.DisplayPrice(),
			sanitizeCell(r.ProductURL),
		)
	}
	return writer.Flush()
}
