package entities

import (
	"testing"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestNewButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	desktop := config.PrimaryButtonRect(false)
	mobile := config.PrimaryButtonRect(true)

	entity := NewButton(em, components.ButtonStylePlain, "スタート", nil, desktop, mobile, func() { clicked = true })

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, entity)
	if !ok {
		t.Fatal("ButtonComponent missing")
	}
	if button.Width != desktop.Width || button.Height != desktop.Height {
		t.Errorf("size = %vx%v, want %vx%v", button.Width, button.Height, desktop.Width, desktop.Height)
	}
	if !button.Enabled || button.State != components.UINormal {
		t.Errorf("initial state enabled=%v state=%v", button.Enabled, button.State)
	}
	button.OnClick()
	if !clicked {
		t.Error("OnClick not wired")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, entity)
	if pos.X != desktop.X || pos.Y != desktop.Y {
		t.Errorf("position = (%v, %v), want desktop (%v, %v)", pos.X, pos.Y, desktop.X, desktop.Y)
	}

	anchor, _ := ecs.GetComponent[*components.LayoutAnchorComponent](em, entity)
	if anchor.Mobile.X != mobile.X || anchor.Mobile.Y != mobile.Y {
		t.Errorf("mobile anchor = %+v, want (%v, %v)", anchor.Mobile, mobile.X, mobile.Y)
	}
}

func TestNewLabelMobileFontFallback(t *testing.T) {
	em := ecs.NewEntityManager()
	font := &text.GoTextFace{Size: config.HUDFontSize}

	entity := NewLabel(em, LabelSpec{
		Text:        "難易度:",
		Desktop:     components.AnchorPoint{X: config.DesktopHUDX, Y: config.DesktopDifficultyY},
		Mobile:      components.AnchorPoint{X: config.MobileHUDX, Y: config.MobileDifficultyY},
		DesktopFont: font,
	})

	anchor, _ := ecs.GetComponent[*components.LayoutAnchorComponent](em, entity)
	if anchor.MobileFont != font {
		t.Error("MobileFont should fall back to DesktopFont")
	}
	label, _ := ecs.GetComponent[*components.LabelComponent](em, entity)
	if label.Font != font || label.Text != "難易度:" {
		t.Errorf("label = %+v", label)
	}
}

func TestNewReelEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	entity := NewReelEntity(em)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, entity)
	if !ok {
		t.Fatal("PositionComponent missing")
	}
	viewport := config.ReelViewportRect(false)
	if pos.X != viewport.X || pos.Y != viewport.Y {
		t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, viewport.X, viewport.Y)
	}
	if ecs.HasComponent[*components.ReelComponent](em, entity) {
		t.Error("ReelComponent should be added by the animator, not the factory")
	}
}
