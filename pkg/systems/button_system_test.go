package systems

import (
	"testing"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/ecs"
)

// newTestButton 创建位于 (100, 100)、尺寸 80x40 的按钮
func newTestButton(em *ecs.EntityManager, enabled bool, clicks *int) *components.ButtonComponent {
	entity := em.CreateEntity()
	button := &components.ButtonComponent{
		Width:   80,
		Height:  40,
		Enabled: enabled,
		OnClick: func() { *clicks++ },
	}
	em.AddComponent(entity, button)
	em.AddComponent(entity, &components.PositionComponent{X: 100, Y: 100})
	return button
}

func TestButtonSystemStates(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		x, y       float64
		pressed    bool
		released   bool
		wantState  components.UIState
		wantClicks int
	}{
		{"按钮外", true, 10, 10, false, false, components.UINormal, 0},
		{"悬停", true, 120, 110, false, false, components.UIHovered, 0},
		{"按下", true, 120, 110, true, false, components.UIClicked, 0},
		{"释放触发点击", true, 120, 110, false, true, components.UIHovered, 1},
		{"按钮外释放不触发", true, 300, 110, false, true, components.UINormal, 0},
		{"右下边界", true, 180, 140, false, true, components.UIHovered, 1},
		{"禁用不响应", false, 120, 110, false, true, components.UIDisabled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			clicks := 0
			button := newTestButton(em, tt.enabled, &clicks)

			NewButtonSystem(em).HandlePointer(tt.x, tt.y, tt.pressed, tt.released)

			if button.State != tt.wantState {
				t.Errorf("State = %v, want %v", button.State, tt.wantState)
			}
			if clicks != tt.wantClicks {
				t.Errorf("clicks = %d, want %d", clicks, tt.wantClicks)
			}
		})
	}
}
