package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/eyespot/eyespot/pkg/annotate"
	"github.com/eyespot/eyespot/pkg/input"
	"github.com/eyespot/eyespot/pkg/screen"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click WORD",
	Short: "Find a word on screen and click it",
	Long: `Click reads the target window, finds the detected word best matching WORD,
and moves the pointer to a position relative to the word's bounding box.
The click position (0,0) is the box's top-left corner and (1,1) the
bottom-right; values outside that range land outside the box.`,
	Args: cobra.ExactArgs(1),
	RunE: runClick,
}

var (
	clickWindow     string
	clickImage      string
	clickEngine     string
	clickFilter     string
	clickAppearance int
	clickPos        string
	clickMinScore   float64
	clickButton     int
	clickEvent      string
	clickDryRun     bool
	clickCapture    string
)

func init() {
	RootCmd.AddCommand(clickCmd)

	clickCmd.Flags().StringVarP(&clickWindow, "window", "w", "", "Window id (0x...) or name; default is the focused window")
	clickCmd.Flags().StringVarP(&clickImage, "image", "i", "", "Use a still image instead of a window (implies dry run)")
	clickCmd.Flags().StringVar(&clickEngine, "engine", defaultEngine(), "OCR engine: tesseract, gosseract")
	clickCmd.Flags().StringVarP(&clickFilter, "filter", "f", defaultFilter(), "ImageMagick preprocessing filter")
	clickCmd.Flags().IntVar(&clickAppearance, "appearance", 1, "Which appearance of the word to click, 1-based")
	clickCmd.Flags().StringVar(&clickPos, "pos", "0.5,0.5", "Click position relative to the bounding box")
	clickCmd.Flags().Float64Var(&clickMinScore, "min-score", 0.33, "Required match score in [0,1]")
	clickCmd.Flags().IntVar(&clickButton, "button", 1, "Mouse button: 1 left, 2 middle, 3 right")
	clickCmd.Flags().StringVar(&clickEvent, "event", "click", "Pointer event: move, click, down, up")
	clickCmd.Flags().BoolVar(&clickDryRun, "dry-run", false, "Resolve the coordinate but inject nothing")
	clickCmd.Flags().StringVar(&clickCapture, "capture", "", "Save an annotated image of the match and click point")

	clickCmd.MarkFlagsMutuallyExclusive("window", "image")
}

func runClick(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx := cmd.Context()

	spec, err := parseClickSpec(clickPos)
	if err != nil {
		return err
	}
	event, err := input.ParseMouseEvent(clickEvent)
	if err != nil {
		return err
	}

	sess, err := newSession(clickEngine, clickFilter)
	if err != nil {
		return err
	}
	if _, err := sess.Read(ctx, screen.ReadOptions{Window: clickWindow, Image: clickImage}); err != nil {
		return err
	}

	point, score, word, err := sess.LocateWord(query, clickAppearance, spec, clickMinScore)
	if err != nil {
		return err
	}
	slog.Info("resolved word", "query", query, "word", word,
		"score", fmt.Sprintf("%.2f", score), "x", point.X, "y", point.Y)

	if clickCapture != "" {
		source, owned, err := sess.Snapshot(ctx)
		if err != nil {
			return err
		}
		if owned {
			defer os.Remove(source)
		}
		if err := annotate.DrawWords(ctx, source, clickCapture, []string{query}, sess.Words()); err != nil {
			return err
		}
		if err := annotate.DrawPoint(ctx, clickCapture, clickCapture, point); err != nil {
			return err
		}
	}

	if clickDryRun || clickImage != "" {
		fmt.Printf("%d %d\n", point.X, point.Y)
		return nil
	}

	injector := &input.Injector{}
	return injector.Mouse(ctx, point, clickButton, event)
}

func parseClickSpec(s string) (screen.ClickSpec, error) {
	rx, ry, found := strings.Cut(s, ",")
	if !found {
		return screen.ClickSpec{}, fmt.Errorf("click position must be RX,RY: %q", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(rx), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ry), 64)
	if errX != nil || errY != nil {
		return screen.ClickSpec{}, fmt.Errorf("click position must be RX,RY: %q", s)
	}
	return screen.ClickSpec{RX: x, RY: y}, nil
}
