package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yassjustice/resumeBuilder-sub001/internal/observability"
	"github.com/yassjustice/resumeBuilder-sub001/internal/render"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

var (
	renderOut       string
	renderTheme     string
	renderLanguage  string
	renderThreshold float64
	renderOneColumn bool
	renderVerbose   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <cv.json>",
	Short: "Render a CV JSON file to PDF",
	Long:  `Render a CV JSON file to an A4 PDF without starting the server. Requires Chrome/Chromium.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "cv.pdf", "Output PDF path")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Theme name (default: theme named in the document)")
	renderCmd.Flags().StringVar(&renderLanguage, "language", "", "Output language (en or fr)")
	renderCmd.Flags().Float64Var(&renderThreshold, "page-break-threshold", types.DefaultPageBreakThreshold, "Minimum space from the page bottom to start a unit")
	renderCmd.Flags().BoolVar(&renderOneColumn, "one-column-skills", false, "Disable the two-column skills layout")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print the page plan and render diagnostics")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse CV JSON: %w", err)
	}

	opts := types.DefaultRenderOptions()
	opts.PageBreakThreshold = renderThreshold
	opts.TwoColumnSkills = !renderOneColumn
	if renderLanguage != "" {
		opts.Language = types.Language(renderLanguage)
	}

	var theme types.Theme
	if renderTheme != "" {
		theme = types.ThemeByName(renderTheme)
	}

	driver := render.NewDriver(render.NewChromeBackend())

	if renderVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPlan(driver.Plan(raw, theme, opts))
	}

	pdf, err := driver.Produce(context.Background(), raw, theme, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if renderVerbose {
		fmt.Printf("Rendered %d pages\n", render.CountPDFPages(pdf))
	}
	fmt.Printf("Wrote %s (%d bytes)\n", renderOut, len(pdf))
	return nil
}
