package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eyespot/eyespot/internal/utils"
	"github.com/eyespot/eyespot/pkg/ocr"
	"github.com/eyespot/eyespot/pkg/tune"
	"github.com/spf13/cobra"
	yaml "go.yaml.in/yaml/v3"
)

var tuneCmd = &cobra.Command{
	Use:   "tune WORD [WORD...]",
	Short: "Search for the preprocessing filter that best finds given words",
	Long: `Tune brute-forces a grid of ImageMagick preprocessing filters over a
reference image and scores how well OCR finds the given words under each
one. The ranked results are written as YAML; export the best filter via
EYESPOT_FILTER to use it on subsequent reads.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTune,
}

var (
	tuneImage  string
	tuneEngine string
	tuneOutput string
)

func init() {
	RootCmd.AddCommand(tuneCmd)

	tuneCmd.Flags().StringVarP(&tuneImage, "image", "i", "", "Reference image to tune against (required)")
	tuneCmd.Flags().StringVar(&tuneEngine, "engine", defaultEngine(), "OCR engine: tesseract, gosseract")
	tuneCmd.Flags().StringVarP(&tuneOutput, "output", "o", "", "Output path for the YAML results")

	if err := tuneCmd.MarkFlagRequired("image"); err != nil {
		utils.ExitOnError("Unable to mark image as required", err)
	}
}

func runTune(cmd *cobra.Command, args []string) error {
	engine, err := ocr.Default().Get(tuneEngine)
	if err != nil {
		return fmt.Errorf("unsupported ocr engine: %s", tuneEngine)
	}
	config := ocr.Config{
		Language:      utils.Getenv("TESSERACT_LANG", "eng"),
		TesseractPath: os.Getenv("TESSERACT_PATH"),
	}
	if err := engine.Validate(config); err != nil {
		return err
	}

	summary, err := tune.Run(cmd.Context(), engine, config, tuneImage, args)
	if err != nil {
		return fmt.Errorf("tuning failed: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return err
	}

	outputPath := tuneOutput
	if outputPath == "" {
		outputPath = filepath.Join(".", fmt.Sprintf("tune_%s.yaml", time.Now().Format("2006-01-02_15-04-05")))
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	fmt.Printf("\nTuning completed. Results saved to: %s\n", outputPath)
	fmt.Printf("Best filter: %s\n", summary.Best)
	return nil
}
