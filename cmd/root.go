package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eyespot/eyespot/internal/utils"
	"github.com/eyespot/eyespot/pkg/ocr"
	"github.com/eyespot/eyespot/pkg/screen"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "eyespot",
	Short: "Find words on screen with OCR and target them with synthetic input",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		ll, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}

		switch strings.ToUpper(ll) {
		case "DEBUG":
			level = slog.LevelDebug
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		handler := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(handler)

		return nil
	},
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	ll := os.Getenv("LOG_LEVEL")
	if ll == "" {
		ll = "INFO"
	}
	RootCmd.PersistentFlags().String("log-level", ll, "The logging level for the command")
}

// newSession builds a session from the shared engine/filter flags.
func newSession(engineName, filter string) (*screen.Session, error) {
	engine, err := ocr.Default().Get(engineName)
	if err != nil {
		return nil, fmt.Errorf("unsupported ocr engine: %s", engineName)
	}
	config := ocr.Config{
		Language:      utils.Getenv("TESSERACT_LANG", "eng"),
		TesseractPath: os.Getenv("TESSERACT_PATH"),
	}
	if err := engine.Validate(config); err != nil {
		return nil, err
	}

	sess := screen.New(engine, config)
	if filter != "" {
		sess.SetFilter(filter)
	}
	return sess, nil
}

func defaultEngine() string {
	return utils.Getenv("EYESPOT_ENGINE", "tesseract")
}

func defaultFilter() string {
	return utils.Getenv("EYESPOT_FILTER", screen.DefaultFilter)
}
