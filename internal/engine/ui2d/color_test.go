package ui2d

import "testing"

func TestColorScale(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		factor float64
		want   Color
	}{
		{"full", ColorWhite, 1, ColorWhite},
		{"above one", ColorWhite, 2, ColorWhite},
		{"half", Color{200, 100, 50}, 0.5, Color{100, 50, 25}},
		{"zero", ColorDoor, 0, ColorBlack},
		{"negative", ColorDoor, -1, ColorBlack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Scale(tt.factor); got != tt.want {
				t.Errorf("Scale(%v) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}
