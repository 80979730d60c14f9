package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// difficultyKeys 数字键 1-4 对应的难度
var difficultyKeys = map[ebiten.Key]config.Difficulty{
	ebiten.KeyDigit1: config.DifficultyEasy,
	ebiten.KeyDigit2: config.DifficultyMid,
	ebiten.KeyDigit3: config.DifficultyHard,
	ebiten.KeyDigit4: config.DifficultyExpert,
}

// handleKeyboard 处理键盘快捷键
//   - Space / Enter: 开始 / 停止
//   - 1-4: 选择难度（仅停止时有效）
//   - S: 分享
func (s *SlotScene) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s.controller.PrimaryAction()
	}

	for key, difficulty := range difficultyKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.controller.SelectDifficulty(difficulty)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.share()
	}
}

// share 分享按钮回调，失败只记录日志
func (s *SlotScene) share() {
	if err := s.controller.Share(); err != nil {
		log.Printf("[SlotScene] Warning: share failed: %v", err)
	}
}

// refreshHUD 按游戏状态刷新文字和按钮
func (s *SlotScene) refreshHUD() {
	state := s.controller.State()
	running := s.controller.IsRunning()
	text := s.gameConfig.Text

	s.maxScoreLabel.Text = fmt.Sprintf(text.MaxScoreFormat, state.MaxScore)
	s.streakLabel.Text = fmt.Sprintf(text.StreakFormat, state.ConsecutiveWins)

	if running {
		s.primaryButton.Text = text.StopButton
	} else {
		s.primaryButton.Text = text.StartButton
	}

	for d, button := range s.difficultyButtons {
		button.Selected = d == state.CurrentDifficulty
		button.Enabled = !running
	}
}

// mustLabel 返回实体的 LabelComponent（工厂创建的实体一定带有）
func mustLabel(s *SlotScene, entity ecs.EntityID) *components.LabelComponent {
	label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, entity)
	if !ok {
		panic(fmt.Sprintf("scenes: entity %d has no LabelComponent", entity))
	}
	return label
}

// mustButton 返回实体的 ButtonComponent（工厂创建的实体一定带有）
func mustButton(s *SlotScene, entity ecs.EntityID) *components.ButtonComponent {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entity)
	if !ok {
		panic(fmt.Sprintf("scenes: entity %d has no ButtonComponent", entity))
	}
	return button
}
