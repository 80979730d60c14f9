package systems

import (
	"fmt"
	"log"

	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/game"
)

// SoundPlayer 播放音效（*game.AudioManager 实现此接口）
type SoundPlayer interface {
	PlaySound(id game.SoundID) bool
}

// GameController 游戏流程控制
//
// 持有 GameState，把玩家操作（开始 / 停止 / 选择难度 / 分享）
// 和转轮上报的结果折算为状态变化。
//
// 状态机：
//
//	停止 --PrimaryAction--> 转动（先应用预约难度）
//	转动 --PrimaryAction--> 停止（读取结果，更新连胜 / 最高记录 / 预约难度）
//	停止 --SelectDifficulty--> 停止（立即切换难度，清除预约和连胜）
type GameController struct {
	state    *game.GameState
	animator *ReelAnimator
	sounds   SoundPlayer
	share    config.ShareConfig
	opener   game.ShareOpener

	// OnOutcome 每次停止得到结果后调用（可选，用于边框闪烁等效果）
	OnOutcome func(outcome ReelOutcome)
}

// NewGameController 创建控制器
// sounds 和 opener 可以为 nil（测试或无音频环境）
func NewGameController(state *game.GameState, animator *ReelAnimator, sounds SoundPlayer, share config.ShareConfig, opener game.ShareOpener) *GameController {
	if opener == nil {
		opener = game.LogOpener{}
	}
	return &GameController{
		state:    state,
		animator: animator,
		sounds:   sounds,
		share:    share,
		opener:   opener,
	}
}

// Begin 以当前难度启动转轮（游戏打开时即开始转动）
func (c *GameController) Begin() {
	c.start()
}

// PrimaryAction 开始 / 停止按钮
func (c *GameController) PrimaryAction() {
	c.playSound(game.SoundClick)
	if c.animator.IsRunning() {
		c.stop()
		return
	}
	c.start()
}

// SelectDifficulty 手动选择难度，转动中返回 false
func (c *GameController) SelectDifficulty(d config.Difficulty) bool {
	if c.animator.IsRunning() {
		log.Printf("[GameController] 转动中不能切换难度: %s", d)
		return false
	}

	c.state.SelectDifficulty(d)
	c.playSound(game.SoundClick)
	log.Printf("[GameController] 手动选择难度: %s", d)
	return true
}

// Share 生成分享文案并打开发帖页面
func (c *GameController) Share() error {
	text := game.BuildShareText(c.share, c.state.LastResultSymbol, c.state.MaxScore)
	shareURL, err := game.BuildShareURL(c.share, text)
	if err != nil {
		return err
	}

	c.playSound(game.SoundClick)
	if err := c.opener.Open(shareURL); err != nil {
		return fmt.Errorf("share: %w", err)
	}
	log.Printf("[GameController] 分享: %s", shareURL)
	return nil
}

// IsRunning 返回转轮是否在转动
func (c *GameController) IsRunning() bool {
	return c.animator.IsRunning()
}

// State 返回游戏状态（只读使用）
func (c *GameController) State() *game.GameState {
	return c.state
}

// start 应用预约难度后开始转动
func (c *GameController) start() {
	c.state.CommitPendingDifficulty()
	c.animator.Start(c.state.CurrentDifficulty.Config())
}

// stop 停止转动并折算结果
func (c *GameController) stop() {
	outcome, ok := c.animator.Stop()
	if !ok {
		return
	}

	hadPending := c.state.HasPending()
	c.state.ApplyOutcome(outcome.IsWin, outcome.SymbolValue)

	switch {
	case outcome.IsWin && !hadPending && c.state.HasPending():
		c.playSound(game.SoundPromote)
	case outcome.IsWin:
		c.playSound(game.SoundWin)
	default:
		c.playSound(game.SoundStop)
	}

	log.Printf("[GameController] 结果: symbol=%d win=%v streak=%d max=%d difficulty=%s",
		outcome.SymbolValue, outcome.IsWin, c.state.ConsecutiveWins, c.state.MaxScore, c.state.CurrentDifficulty)

	if c.OnOutcome != nil {
		c.OnOutcome(outcome)
	}
}

// playSound 播放音效（sounds 为 nil 时跳过）
func (c *GameController) playSound(id game.SoundID) {
	if c.sounds != nil {
		c.sounds.PlaySound(id)
	}
}
