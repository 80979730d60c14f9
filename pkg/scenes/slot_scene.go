package scenes

import (
	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/decker502/xmasreel/pkg/game"
	"github.com/decker502/xmasreel/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SlotSceneDeps 转轮场景的外部依赖
type SlotSceneDeps struct {
	ResourceManager *game.ResourceManager
	GameConfig      *config.GameConfig
	Scheduler       *systems.FrameScheduler
	Sounds          systems.SoundPlayer
	Opener          game.ShareOpener
	SettingsManager *game.SettingsManager

	// InitialDifficulty 开局难度
	InitialDifficulty config.Difficulty
}

// SlotScene 转轮主画面
//
// 画面布局（横排）：
//
//	最高回数: N回
//	難易度: [Easy][Mid][Hard][Expert]  (連勝: N)
//	クリスマスも [转轮] 人
//	        [スタート/ストップ]
//	        [Xでシェア]
//
// 窗口宽度不大于 375 时改为竖排，由 LayoutSystem 切换。
type SlotScene struct {
	resourceManager *game.ResourceManager
	gameConfig      *config.GameConfig
	settingsManager *game.SettingsManager

	entityManager *ecs.EntityManager
	surface       *systems.StripSurface
	animator      *systems.ReelAnimator
	controller    *systems.GameController

	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	labelRenderSystem  *systems.LabelRenderSystem
	reelRenderSystem   *systems.ReelRenderSystem
	flashEffectSystem  *systems.FlashEffectSystem
	layoutSystem       *systems.LayoutSystem

	reelEntity ecs.EntityID

	// HUD 中需要每帧刷新的元素
	maxScoreLabel     *components.LabelComponent
	streakLabel       *components.LabelComponent
	primaryButton     *components.ButtonComponent
	difficultyButtons map[config.Difficulty]*components.ButtonComponent
}

// NewSlotScene 创建转轮场景并立即开始转动
// 调用前 ResourceManager 必须已加载字体
func NewSlotScene(deps SlotSceneDeps) *SlotScene {
	s := &SlotScene{
		resourceManager: deps.ResourceManager,
		gameConfig:      deps.GameConfig,
		settingsManager: deps.SettingsManager,
		entityManager:   ecs.NewEntityManager(),
	}

	s.initReel(deps)
	s.initLabels()
	s.initButtons()

	s.layoutSystem.Observe(config.GameWindowWidth)
	s.controller.Begin()
	s.refreshHUD()
	return s
}

// Update 更新场景逻辑
func (s *SlotScene) Update(deltaTime float64) {
	s.handleKeyboard()
	s.buttonSystem.Update(deltaTime)
	s.flashEffectSystem.Update(deltaTime)
	s.refreshHUD()
}

// Draw 绘制场景
func (s *SlotScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.reelRenderSystem.Draw(screen)
	s.labelRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// Layout 实现 game.Layouter
// 根据窗口宽度选择横排 / 竖排布局，返回对应的逻辑尺寸
func (s *SlotScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.layoutSystem.Observe(outsideWidth)
	return s.layoutSystem.ScreenSize()
}

// SaveOnExit 实现 game.Saveable，退出时保存用户设置
func (s *SlotScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	return s.settingsManager.Save() == nil
}

// Controller 返回游戏控制器
func (s *SlotScene) Controller() *systems.GameController {
	return s.controller
}
