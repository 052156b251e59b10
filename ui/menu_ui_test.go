package ui

import "testing"

func TestLabels(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{debugLabel(true), "Overlay: on"},
		{debugLabel(false), "Overlay: off"},
		{scaleLabel(4), "Scale: 4x"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
