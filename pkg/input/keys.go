// Package input injects synthetic pointer and keyboard events through xte
// from the xautomation package.
package input

import (
	"fmt"
	"strings"
)

// KeyAction is one element of a key sequence:
//
//   - a single key with no event sends press and release ("key X")
//   - a single key with Event "press" or "release" sends just that event
//   - multiple keys form a chord: press each in order, release in reverse
//
// Key names follow keysymdef.h, e.g. "a", "Return", "Control_L".
type KeyAction struct {
	Keys  []string
	Event string
}

// ParseKeyAction parses the CLI syntax for one action: "a", "Return",
// "Shift_L:press", "Control_L+Alt_L+Delete".
func ParseKeyAction(s string) (KeyAction, error) {
	if s == "" {
		return KeyAction{}, fmt.Errorf("empty key action")
	}
	if strings.Contains(s, "+") {
		keys := strings.Split(s, "+")
		for _, k := range keys {
			if k == "" {
				return KeyAction{}, fmt.Errorf("malformed chord %q", s)
			}
		}
		return KeyAction{Keys: keys}, nil
	}
	if key, event, found := strings.Cut(s, ":"); found {
		switch strings.ToLower(event) {
		case "press", "release":
			return KeyAction{Keys: []string{key}, Event: strings.ToLower(event)}, nil
		default:
			return KeyAction{}, fmt.Errorf("unknown key event %q in %q", event, s)
		}
	}
	return KeyAction{Keys: []string{s}}, nil
}

// Text expands a literal string into per-character key actions.
func Text(s string) []KeyAction {
	actions := make([]KeyAction, 0, len(s))
	for _, r := range s {
		actions = append(actions, KeyAction{Keys: []string{string(r)}})
	}
	return actions
}

// keyArgs builds the xte command words for a key sequence.
func keyArgs(sequence []KeyAction) []string {
	var args []string
	for _, a := range sequence {
		switch {
		case len(a.Keys) > 1:
			var releases []string
			for _, k := range a.Keys {
				args = append(args, "keydown "+k)
				releases = append([]string{"keyup " + k}, releases...)
			}
			args = append(args, releases...)
		case a.Event == "press":
			args = append(args, "keydown "+a.Keys[0])
		case a.Event == "release":
			args = append(args, "keyup "+a.Keys[0])
		default:
			args = append(args, "key "+a.Keys[0])
		}
	}
	return args
}

// interleaveDelay inserts a usdelay word between consecutive events.
func interleaveDelay(args []string, micros int) []string {
	if micros <= 0 || len(args) < 2 {
		return args
	}
	delay := fmt.Sprintf("usdelay %d", micros)
	out := make([]string, 0, 2*len(args)-1)
	for i, a := range args {
		if i > 0 {
			out = append(out, delay)
		}
		out = append(out, a)
	}
	return out
}
