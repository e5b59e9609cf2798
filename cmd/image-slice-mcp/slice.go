package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-slice-mcp/internal/report"
	"github.com/ironsheep/image-slice-mcp/internal/slicing"
)

func newSliceCmd(opts *options) *cobra.Command {
	var (
		rows, cols int
		ratio      string
		format     string
		prefix     string
		margins    slicing.Margins
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "slice [flags] <image>",
		Short: "Slice an image and write the ZIP archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			cfg := slicing.Config{
				Rows:    rows,
				Cols:    cols,
				Margins: margins,
				Prefix:  prefix,
			}
			var err error
			if cfg.RatioMode, err = slicing.ParseRatioMode(ratio); err != nil {
				return err
			}
			if cfg.Format, err = slicing.ParseFormat(format); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}

			slicer := slicing.NewSlicer(opts.cfg.SlicingOptions())
			res, err := slicer.SliceImage(cmd.Context(), slicing.Request{
				Data:     data,
				Filename: path,
				Config:   cfg,
			})
			if err != nil {
				return err
			}

			name := slicing.ArchiveName(opts.cfg.ProductName, time.Now())
			archivePath, err := slicing.TriggerDownload(res.Archive, opts.cfg.OutputDir, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprint(out, report.RenderSlices(res))
			}
			fmt.Fprintln(out, report.RenderTable(report.Summary(res, archivePath)))
			return nil
		},
	}

	def := slicing.DefaultConfig()
	f := cmd.Flags()
	f.IntVar(&rows, "rows", def.Rows, "grid rows")
	f.IntVar(&cols, "cols", def.Cols, "grid columns")
	f.StringVar(&ratio, "ratio", string(def.RatioMode), "ratio mode: original or square")
	f.StringVar(&format, "format", string(def.Format), "output format: png, jpg or webp")
	f.StringVar(&prefix, "prefix", "", "filename stem (default: source file name)")
	f.IntVar(&margins.Top, "margin-top", 0, "pixels trimmed from the top edge")
	f.IntVar(&margins.Bottom, "margin-bottom", 0, "pixels trimmed from the bottom edge")
	f.IntVar(&margins.Left, "margin-left", 0, "pixels trimmed from the left edge")
	f.IntVar(&margins.Right, "margin-right", 0, "pixels trimmed from the right edge")
	f.BoolVarP(&verbose, "verbose", "v", false, "list every slice")
	return cmd
}
