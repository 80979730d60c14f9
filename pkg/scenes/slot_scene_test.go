package scenes

import (
	"testing"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/decker502/xmasreel/pkg/game"
	"github.com/decker502/xmasreel/pkg/systems"
)

// newTestSlotScene 创建使用仓库内配置文件和内置字体的场景
func newTestSlotScene(t *testing.T) (*SlotScene, *systems.FrameScheduler) {
	t.Helper()

	rm := game.NewResourceManager()
	if err := rm.LoadDefaultFont(); err != nil {
		t.Fatalf("LoadDefaultFont failed: %v", err)
	}
	cfg, err := config.LoadGameConfig("../../data/game.yaml")
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}

	scheduler := systems.NewFrameScheduler()
	scene := NewSlotScene(SlotSceneDeps{
		ResourceManager:   rm,
		GameConfig:        cfg,
		Scheduler:         scheduler,
		Opener:            game.LogOpener{},
		InitialDifficulty: config.DifficultyEasy,
	})
	return scene, scheduler
}

// clickRect 在矩形中心模拟一次鼠标点击（按下 + 释放）
func clickRect(s *SlotScene, r config.Rect) {
	x, y := r.X+r.Width/2, r.Y+r.Height/2
	s.buttonSystem.HandlePointer(x, y, true, false)
	s.buttonSystem.HandlePointer(x, y, false, true)
	s.refreshHUD()
}

func TestSlotSceneStartsSpinning(t *testing.T) {
	scene, scheduler := newTestSlotScene(t)

	if !scene.controller.IsRunning() {
		t.Fatal("reel should spin as soon as the scene opens")
	}
	if scene.primaryButton.Text != scene.gameConfig.Text.StopButton {
		t.Errorf("primary button = %q, want %q", scene.primaryButton.Text, scene.gameConfig.Text.StopButton)
	}
	for d, button := range scene.difficultyButtons {
		if button.Enabled {
			t.Errorf("difficulty button %s should be disabled while spinning", d)
		}
		if button.Selected != (d == config.DifficultyEasy) {
			t.Errorf("difficulty button %s selected = %v", d, button.Selected)
		}
	}
	if scene.maxScoreLabel.Text != "最高回数: 0回" {
		t.Errorf("max score label = %q", scene.maxScoreLabel.Text)
	}
	if scene.streakLabel.Text != "(連勝: 0)" {
		t.Errorf("streak label = %q", scene.streakLabel.Text)
	}

	scheduler.RunFrame()
	if scene.animator.State().ScrollOffset == 0 {
		t.Error("offset should advance after a frame")
	}
}

func TestSlotSceneStopAndSelect(t *testing.T) {
	scene, scheduler := newTestSlotScene(t)
	for i := 0; i < 10; i++ {
		scheduler.RunFrame()
	}

	clickRect(scene, config.PrimaryButtonRect(false))

	if scene.controller.IsRunning() {
		t.Fatal("primary button should stop the reel")
	}
	if scheduler.Pending() != 0 {
		t.Errorf("Pending() = %d after stop, want 0", scheduler.Pending())
	}
	if scene.primaryButton.Text != scene.gameConfig.Text.StartButton {
		t.Errorf("primary button = %q, want %q", scene.primaryButton.Text, scene.gameConfig.Text.StartButton)
	}
	if !ecs.HasComponent[*components.FlashEffectComponent](scene.entityManager, scene.reelEntity) {
		t.Error("stop should trigger the reel flash")
	}

	// Hard 是第三个难度按钮
	clickRect(scene, config.DifficultyButtonRect(2, false))

	state := scene.controller.State()
	if state.CurrentDifficulty != config.DifficultyHard {
		t.Errorf("CurrentDifficulty = %s, want hard", state.CurrentDifficulty)
	}
	if !scene.difficultyButtons[config.DifficultyHard].Selected || scene.difficultyButtons[config.DifficultyEasy].Selected {
		t.Error("selected button should follow the current difficulty")
	}

	clickRect(scene, config.PrimaryButtonRect(false))
	if got := scene.animator.State().Config; got != config.DifficultyHard.Config() {
		t.Errorf("reel config = %+v, want hard", got)
	}
}

func TestSlotSceneLayout(t *testing.T) {
	scene, _ := newTestSlotScene(t)

	w, h := scene.Layout(960, 600)
	if w != config.DesktopScreenWidth || h != config.DesktopScreenHeight {
		t.Errorf("desktop Layout = %dx%d", w, h)
	}

	w, h = scene.Layout(375, 812)
	if w != config.MobileScreenWidth || h != config.MobileScreenHeight {
		t.Errorf("mobile Layout = %dx%d", w, h)
	}
	if got := scene.surface.ViewportBounds(); got != config.ReelViewportRect(true) {
		t.Errorf("viewport = %+v, want mobile viewport", got)
	}

	// 竖排布局下点击按钮位置也随之改变
	clickRect(scene, config.PrimaryButtonRect(true))
	if scene.controller.IsRunning() {
		t.Error("mobile primary button should stop the reel")
	}
}

func TestSlotSceneSaveOnExitWithoutSettings(t *testing.T) {
	scene, _ := newTestSlotScene(t)
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit without settings manager should succeed")
	}
}
