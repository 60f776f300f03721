package input

import (
	"reflect"
	"testing"
)

func TestParseKeyAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    KeyAction
		wantErr bool
	}{
		{"plain letter", "a", KeyAction{Keys: []string{"a"}}, false},
		{"named key", "Return", KeyAction{Keys: []string{"Return"}}, false},
		{"press event", "Shift_L:press", KeyAction{Keys: []string{"Shift_L"}, Event: "press"}, false},
		{"release event", "Shift_L:RELEASE", KeyAction{Keys: []string{"Shift_L"}, Event: "release"}, false},
		{"chord", "Control_L+Alt_L+Delete", KeyAction{Keys: []string{"Control_L", "Alt_L", "Delete"}}, false},
		{"empty", "", KeyAction{}, true},
		{"unknown event", "a:tap", KeyAction{}, true},
		{"malformed chord", "a++b", KeyAction{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyAction(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKeyAction(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKeyAction(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKeyAction(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyArgs(t *testing.T) {
	tests := []struct {
		name     string
		sequence []KeyAction
		want     []string
	}{
		{
			name:     "plain keys press and release",
			sequence: []KeyAction{{Keys: []string{"h"}}, {Keys: []string{"i"}}},
			want:     []string{"key h", "key i"},
		},
		{
			name: "directed events",
			sequence: []KeyAction{
				{Keys: []string{"Shift_L"}, Event: "press"},
				{Keys: []string{"h"}},
				{Keys: []string{"Shift_L"}, Event: "release"},
			},
			want: []string{"keydown Shift_L", "key h", "keyup Shift_L"},
		},
		{
			name:     "chord presses in order and releases in reverse",
			sequence: []KeyAction{{Keys: []string{"Control_L", "Alt_L", "Delete"}}},
			want: []string{
				"keydown Control_L", "keydown Alt_L", "keydown Delete",
				"keyup Delete", "keyup Alt_L", "keyup Control_L",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keyArgs(tt.sequence)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keyArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterleaveDelay(t *testing.T) {
	args := []string{"key a", "key b", "key c"}

	got := interleaveDelay(args, 1500)
	want := []string{"key a", "usdelay 1500", "key b", "usdelay 1500", "key c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("interleaveDelay() = %v, want %v", got, want)
	}

	if got := interleaveDelay(args, 0); !reflect.DeepEqual(got, args) {
		t.Errorf("interleaveDelay(0) = %v, want unchanged args", got)
	}
}

func TestText(t *testing.T) {
	got := Text("hi!")
	want := []KeyAction{
		{Keys: []string{"h"}},
		{Keys: []string{"i"}},
		{Keys: []string{"!"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Text() = %+v, want %+v", got, want)
	}
}

func TestParseMouseEvent(t *testing.T) {
	for name, want := range map[string]MouseEvent{
		"move": MouseMove, "click": MouseClick, "down": MouseDown, "up": MouseUp,
	} {
		got, err := ParseMouseEvent(name)
		if err != nil || got != want {
			t.Errorf("ParseMouseEvent(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseMouseEvent("doubleclick"); err == nil {
		t.Error("ParseMouseEvent(doubleclick) expected error")
	}
}
