package cmd

import (
	"testing"

	"github.com/eyespot/eyespot/pkg/screen"
)

func TestParseClickSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    screen.ClickSpec
		wantErr bool
	}{
		{"middle", "0.5,0.5", screen.ClickSpec{RX: 0.5, RY: 0.5}, false},
		{"corner", "0,0", screen.ClickSpec{}, false},
		{"outside the box", "-2,3", screen.ClickSpec{RX: -2, RY: 3}, false},
		{"spaces tolerated", " 1 , 1 ", screen.ClickSpec{RX: 1, RY: 1}, false},
		{"missing comma", "0.5", screen.ClickSpec{}, true},
		{"not numbers", "a,b", screen.ClickSpec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClickSpec(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseClickSpec(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClickSpec(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseClickSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
