package config

import "testing"

// TestIsMobileWidth 测试布局切换阈值（≤375 为竖排）
func TestIsMobileWidth(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{320, true},
		{375, true},
		{376, false},
		{960, false},
	}

	for _, tt := range tests {
		if got := IsMobileWidth(tt.width); got != tt.want {
			t.Errorf("IsMobileWidth(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

// TestReelViewportRectFitsScreen 转轮窗口必须完整落在逻辑屏幕内
func TestReelViewportRectFitsScreen(t *testing.T) {
	for _, mobile := range []bool{false, true} {
		r := ReelViewportRect(mobile)
		w, h := ScreenSize(mobile)

		if r.X < 0 || r.Y < 0 || r.X+r.Width > float64(w) || r.Y+r.Height > float64(h) {
			t.Errorf("mobile=%v: viewport %+v outside screen %dx%d", mobile, r, w, h)
		}
		if r.Height != SymbolImageHeight {
			t.Errorf("mobile=%v: viewport height %v should equal symbol height %v", mobile, r.Height, SymbolImageHeight)
		}
	}
}

// TestRect 测试矩形辅助方法
func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	if r.CenterY() != 45 {
		t.Errorf("CenterY: got %v, want 45", r.CenterY())
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"内部", 50, 40, true},
		{"左上角", 10, 20, true},
		{"右下角", 110, 70, true},
		{"左侧外部", 9, 40, false},
		{"下方外部", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestButtonsFitScreen 所有按钮在两种布局下都完整落在屏幕内，且互不重叠
func TestButtonsFitScreen(t *testing.T) {
	for _, mobile := range []bool{false, true} {
		w, h := ScreenSize(mobile)
		rects := []Rect{PrimaryButtonRect(mobile), ShareButtonRect(mobile)}
		for i := 0; i < 4; i++ {
			rects = append(rects, DifficultyButtonRect(i, mobile))
		}

		for i, r := range rects {
			if r.X < 0 || r.Y < 0 || r.X+r.Width > float64(w) || r.Y+r.Height > float64(h) {
				t.Errorf("mobile=%v: button %d %+v outside screen %dx%d", mobile, i, r, w, h)
			}
			for j := i + 1; j < len(rects); j++ {
				o := rects[j]
				if r.X < o.X+o.Width && o.X < r.X+r.Width && r.Y < o.Y+o.Height && o.Y < r.Y+r.Height {
					t.Errorf("mobile=%v: button %d %+v overlaps button %d %+v", mobile, i, r, j, o)
				}
			}
		}

		viewport := ReelViewportRect(mobile)
		primary := PrimaryButtonRect(mobile)
		if primary.Y < viewport.Y+viewport.Height {
			t.Errorf("mobile=%v: start button overlaps the reel", mobile)
		}
	}
}
