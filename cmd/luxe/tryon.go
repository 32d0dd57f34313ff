package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luxe/internal/session"
)

type tryonOptions struct {
	personPath   string
	clothesPath  string
	clothingType string
	jsonOutput   bool
}

func newTryonCmd(flags *rootFlags) *cobra.Command {
	opts := &tryonOptions{}

	cmd := &cobra.Command{
		Use:   "tryon",
		Short: "Composite a clothing item onto a person photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTryon(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.personPath, "person", "", "Photo of the person")
	cmd.Flags().StringVar(&opts.clothesPath, "clothes", "", "Photo of the clothing item")
	cmd.Flags().StringVarP(&opts.clothingType, "type", "t", "", "Clothing type: hat, top, bottom, shoes")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("clothes")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runTryon(cmd *cobra.Command, flags *rootFlags, opts *tryonOptions) error {
	clothing, err := session.ParseClothingType(opts.clothingType)
	if err != nil {
		return newCommandError("try on", "parsing --type", err, "Use one of hat, top, bottom, shoes.")
	}
	if clothing == session.ClothingNone {
		return newCommandError("try on", "parsing --type", errors.New("a clothing type is required"), "Use one of hat, top, bottom, shoes.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	person, err := app.Encoder.EncodeFile(cmd.Context(), opts.personPath)
	if err != nil {
		return newCommandError("try on", "reading person photo", err, "Pass a readable image file to --person.")
	}
	clothes, err := app.Encoder.EncodeFile(cmd.Context(), opts.clothesPath)
	if err != nil {
		return newCommandError("try on", "reading clothing photo", err, "Pass a readable image file to --clothes.")
	}

	resp, err := app.Client.VirtualTryon(cmd.Context(), person.DataURL, clothes.DataURL)
	if err != nil {
		return newCommandError("try on", "calling the try-on service", err, "Retry, or check --tryon-url.")
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading(out, "Try-on result"))
	fmt.Fprintf(out, "result: %s\n", sanitizeCell(resp.ResultImageURL))
	if resp.Status != "" {
		fmt.Fprintf(out, "status: %s\n", sanitizeCell(resp.Status))
	}
	if resp.TryonID != 0 {
		fmt.Fprintf(out, "id:     %d\n", resp.TryonID)
	}
	return nil
}
