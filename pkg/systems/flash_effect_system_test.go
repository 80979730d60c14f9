package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/ecs"
)

func TestFlashEffectLifecycle(t *testing.T) {
	em := ecs.NewEntityManager()
	entity := em.CreateEntity()
	s := NewFlashEffectSystem(em)

	s.Trigger(entity, color.RGBA{R: 255, A: 255})
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, entity)
	if !ok {
		t.Fatal("Trigger did not add FlashEffectComponent")
	}
	if flash.CurrentAlpha() != 1.0 {
		t.Errorf("initial alpha = %v, want 1", flash.CurrentAlpha())
	}

	s.Update(FlashDuration / 2)
	if alpha := flash.CurrentAlpha(); alpha <= 0 || alpha >= 1 {
		t.Errorf("mid alpha = %v, want between 0 and 1", alpha)
	}

	s.Update(FlashDuration)
	if ecs.HasComponent[*components.FlashEffectComponent](em, entity) {
		t.Error("FlashEffectComponent should be removed after Duration")
	}
}

// TestFlashEffectRetrigger 再次触发时重新计时
func TestFlashEffectRetrigger(t *testing.T) {
	em := ecs.NewEntityManager()
	entity := em.CreateEntity()
	s := NewFlashEffectSystem(em)

	s.Trigger(entity, color.RGBA{A: 255})
	s.Update(FlashDuration * 0.9)
	s.Trigger(entity, color.RGBA{A: 255})
	s.Update(FlashDuration * 0.5)

	if !ecs.HasComponent[*components.FlashEffectComponent](em, entity) {
		t.Error("retriggered flash should still be active")
	}
}
