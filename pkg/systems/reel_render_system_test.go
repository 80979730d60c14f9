package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/xmasreel/pkg/config"
)

// TestVisibleInstances 对齐时只露出一个符号，偏移半格时露出两个
func TestVisibleInstances(t *testing.T) {
	surface := NewStripSurface(config.ReelViewportRect(false))
	surface.Mount(BuildSymbolStrip(3))

	tests := []struct {
		name   string
		offset float64
		want   []string
	}{
		{"对齐", 0, []string{"assets/symbols/01.png"}},
		{"半格", 100, []string{"assets/symbols/03.png", "assets/symbols/01.png"}},
		{"下一格", 200, []string{"assets/symbols/03.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface.SetOffset(tt.offset)
			visible := VisibleInstances(surface.InstanceBounds(), surface.ViewportBounds())
			if len(visible) != len(tt.want) {
				t.Fatalf("visible = %d instances, want %d", len(visible), len(tt.want))
			}
			for i, inst := range visible {
				if inst.AssetRef != tt.want[i] {
					t.Errorf("visible[%d] = %q, want %q", i, inst.AssetRef, tt.want[i])
				}
			}
		})
	}
}

func TestFadeColor(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 255}

	if got := fadeColor(c, 1); got != c {
		t.Errorf("fadeColor(1) = %v, want %v", got, c)
	}
	if got := fadeColor(c, 0); got != (color.RGBA{}) {
		t.Errorf("fadeColor(0) = %v, want transparent", got)
	}
	if got := fadeColor(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 0, A: 128}) {
		t.Errorf("fadeColor(0.5) = %v", got)
	}
}
