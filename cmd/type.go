package cmd

import (
	"fmt"

	"github.com/eyespot/eyespot/pkg/input"
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type [KEY...]",
	Short: "Send synthetic key events",
	Long: `Type sends key events through the injection tool. Each argument is one of:

  a plain key name         press and release, e.g. Return or a
  KEY:press / KEY:release  only that event, e.g. Shift_L:press
  KEY+KEY+...              a chord: press each in order, release in reverse,
                           e.g. Control_L+Alt_L+Delete

Key names follow keysymdef.h. Use --text to type a literal string instead.`,
	RunE: runType,
}

var (
	typeText    string
	typeDelayUs int
)

func init() {
	RootCmd.AddCommand(typeCmd)

	typeCmd.Flags().StringVar(&typeText, "text", "", "Type this literal string, one key per character")
	typeCmd.Flags().IntVar(&typeDelayUs, "delay", 0, "Delay between events in microseconds")
}

func runType(cmd *cobra.Command, args []string) error {
	if typeText == "" && len(args) == 0 {
		return fmt.Errorf("nothing to type: give key arguments or --text")
	}

	var sequence []input.KeyAction
	if typeText != "" {
		sequence = input.Text(typeText)
	}
	for _, arg := range args {
		action, err := input.ParseKeyAction(arg)
		if err != nil {
			return err
		}
		sequence = append(sequence, action)
	}

	injector := &input.Injector{DelayMicros: typeDelayUs}
	return injector.Type(cmd.Context(), sequence)
}
