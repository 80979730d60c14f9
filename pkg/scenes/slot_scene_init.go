package scenes

import (
	"log"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/entities"
	"github.com/decker502/xmasreel/pkg/game"
	"github.com/decker502/xmasreel/pkg/systems"
)

// winFlashColor / lossFlashColor 停止后边框高亮颜色
var (
	winFlashColor  = config.SymbolWinColor
	lossFlashColor = config.MutedTextColor
)

// initReel 创建转轮实体、渲染表面、动画和控制器
func (s *SlotScene) initReel(deps SlotSceneDeps) {
	initial := deps.InitialDifficulty
	if initial == "" {
		initial = config.DifficultyEasy
	}

	s.reelEntity = entities.NewReelEntity(s.entityManager)
	s.surface = systems.NewStripSurface(config.ReelViewportRect(false))

	scheduler := deps.Scheduler
	if scheduler == nil {
		scheduler = systems.NewFrameScheduler()
	}

	s.animator = systems.NewReelAnimator(s.entityManager, s.reelEntity, scheduler, s.surface, initial.Config())
	s.controller = systems.NewGameController(game.NewGameState(initial), s.animator, deps.Sounds, s.gameConfig.Share, deps.Opener)

	s.flashEffectSystem = systems.NewFlashEffectSystem(s.entityManager)
	s.controller.OnOutcome = func(outcome systems.ReelOutcome) {
		flashColor := lossFlashColor
		if outcome.IsWin {
			flashColor = winFlashColor
		}
		s.flashEffectSystem.Trigger(s.reelEntity, flashColor)
	}

	s.reelRenderSystem = systems.NewReelRenderSystem(s.entityManager, s.reelEntity, s.surface, s.resourceManager)
	s.layoutSystem = systems.NewLayoutSystem(s.entityManager, s.surface)

	log.Printf("[SlotScene] Reel initialized at difficulty %s", initial)
}

// initLabels 创建 HUD 文字和转轮两侧的标题文字
func (s *SlotScene) initLabels() {
	rm := s.resourceManager
	text := s.gameConfig.Text
	hudFont := rm.GetFont(config.HUDFontSize)
	desktopTitle := rm.GetFont(config.DesktopTitleFontSize)
	mobileTitle := rm.GetFont(config.MobileTitleFontSize)

	desktopReel := config.ReelViewportRect(false)
	mobileCenterX := float64(config.MobileScreenWidth) / 2

	maxScoreEntity := entities.NewLabel(s.entityManager, entities.LabelSpec{
		Color:       config.TextColor,
		Desktop:     components.AnchorPoint{X: config.DesktopHUDX, Y: config.DesktopMaxScoreY},
		Mobile:      components.AnchorPoint{X: config.MobileHUDX, Y: config.MobileMaxScoreY},
		DesktopFont: hudFont,
	})
	s.maxScoreLabel = mustLabel(s, maxScoreEntity)

	entities.NewLabel(s.entityManager, entities.LabelSpec{
		Text:        text.DifficultyLabel,
		Color:       config.TextColor,
		Desktop:     components.AnchorPoint{X: config.DesktopHUDX, Y: config.DesktopDifficultyY},
		Mobile:      components.AnchorPoint{X: config.MobileHUDX, Y: config.MobileDifficultyY},
		DesktopFont: hudFont,
	})

	streakEntity := entities.NewLabel(s.entityManager, entities.LabelSpec{
		Color:       config.MutedTextColor,
		Desktop:     components.AnchorPoint{X: config.DesktopStreakX, Y: config.DesktopDifficultyY},
		Mobile:      components.AnchorPoint{X: config.MobileHUDX, Y: config.MobileStreakY},
		DesktopFont: hudFont,
	})
	s.streakLabel = mustLabel(s, streakEntity)

	entities.NewLabel(s.entityManager, entities.LabelSpec{
		Text:        text.Prefix,
		Color:       config.TextColor,
		Align:       components.LabelAlignCenter,
		Desktop:     components.AnchorPoint{X: config.DesktopPrefixCenterX, Y: desktopReel.CenterY()},
		Mobile:      components.AnchorPoint{X: mobileCenterX, Y: config.MobilePrefixCenterY},
		DesktopFont: desktopTitle,
		MobileFont:  mobileTitle,
	})

	entities.NewLabel(s.entityManager, entities.LabelSpec{
		Text:        text.Suffix,
		Color:       config.TextColor,
		Align:       components.LabelAlignCenter,
		Desktop:     components.AnchorPoint{X: config.DesktopSuffixCenterX, Y: desktopReel.CenterY()},
		Mobile:      components.AnchorPoint{X: mobileCenterX, Y: config.MobileSuffixCenterY},
		DesktopFont: desktopTitle,
		MobileFont:  mobileTitle,
	})

	s.labelRenderSystem = systems.NewLabelRenderSystem(s.entityManager)
}

// initButtons 创建开始 / 停止、分享和难度选择按钮
func (s *SlotScene) initButtons() {
	font := s.resourceManager.GetFont(config.ButtonFontSize)
	text := s.gameConfig.Text

	primaryEntity := entities.NewButton(s.entityManager, components.ButtonStylePlain, text.StartButton, font,
		config.PrimaryButtonRect(false), config.PrimaryButtonRect(true), s.controller.PrimaryAction)
	s.primaryButton = mustButton(s, primaryEntity)

	entities.NewButton(s.entityManager, components.ButtonStyleShare, text.ShareButton, font,
		config.ShareButtonRect(false), config.ShareButtonRect(true), s.share)

	s.difficultyButtons = make(map[config.Difficulty]*components.ButtonComponent)
	for i, d := range config.AllDifficulties() {
		difficulty := d
		entity := entities.NewButton(s.entityManager, components.ButtonStyleOption, d.Label(), font,
			config.DifficultyButtonRect(i, false), config.DifficultyButtonRect(i, true),
			func() { s.controller.SelectDifficulty(difficulty) })
		s.difficultyButtons[d] = mustButton(s, entity)
	}

	s.buttonSystem = systems.NewButtonSystem(s.entityManager)
	s.buttonRenderSystem = systems.NewButtonRenderSystem(s.entityManager)
}
