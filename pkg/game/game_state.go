package game

import (
	"log"

	"github.com/decker502/xmasreel/pkg/config"
)

// PromotionStreak 连胜达到此次数后预约升级
const PromotionStreak = 3

// GameState 一局会话的游戏状态
//
// 由 GameController 独占持有，只在转轮上报结果或玩家操作
// （开始 / 停止 / 手动选择难度）时变更。不做任何持久化。
//
// 难度切换采用两阶段：结果只写入 PendingDifficulty（预约），
// 下次开始时才通过 CommitPendingDifficulty 生效，
// 正在转动的一轮始终使用开始时的难度。
type GameState struct {
	CurrentDifficulty config.Difficulty  // 当前生效的难度
	PendingDifficulty *config.Difficulty // 预约的难度，nil 表示无预约
	ConsecutiveWins   int                // 连胜次数
	MaxScore          int                // 最高连胜记录（只增不减）
	LastResultSymbol  int                // 最近一次停下的符号编号
}

// NewGameState 创建初始状态
// LastResultSymbol 初始为 1（画面初始显示「一」）
func NewGameState(difficulty config.Difficulty) *GameState {
	return &GameState{
		CurrentDifficulty: difficulty,
		LastResultSymbol:  1,
	}
}

// ApplyOutcome 将一次停止结果折算进状态
//
// 规则：
//   - 记录 LastResultSymbol
//   - 命中：连胜 +1，更新最高记录；连胜 ≥3 时预约下一档（expert 不再升级）
//   - 未命中：连胜清零；当前不是 easy 时预约回到 easy
func (gs *GameState) ApplyOutcome(isWin bool, symbolValue int) {
	gs.LastResultSymbol = symbolValue

	if !isWin {
		gs.ConsecutiveWins = 0
		if gs.CurrentDifficulty != config.DifficultyEasy {
			gs.stage(config.DifficultyEasy)
		}
		return
	}

	gs.ConsecutiveWins++
	if gs.ConsecutiveWins > gs.MaxScore {
		gs.MaxScore = gs.ConsecutiveWins
	}

	if gs.ConsecutiveWins >= PromotionStreak {
		if next, ok := gs.CurrentDifficulty.Next(); ok {
			gs.stage(next)
		}
	}
}

// stage 写入预约难度
func (gs *GameState) stage(d config.Difficulty) {
	if gs.PendingDifficulty == nil || *gs.PendingDifficulty != d {
		log.Printf("[GameState] 预约难度: %s -> %s", gs.CurrentDifficulty, d)
	}
	staged := d
	gs.PendingDifficulty = &staged
}

// CommitPendingDifficulty 开始新一轮前应用预约难度
// 返回是否发生了切换
func (gs *GameState) CommitPendingDifficulty() bool {
	if gs.PendingDifficulty == nil {
		return false
	}

	previous := gs.CurrentDifficulty
	gs.CurrentDifficulty = *gs.PendingDifficulty
	gs.PendingDifficulty = nil

	log.Printf("[GameState] 难度生效: %s -> %s", previous, gs.CurrentDifficulty)
	return previous != gs.CurrentDifficulty
}

// SelectDifficulty 手动选择难度
// 立即生效，清除预约并清零连胜
func (gs *GameState) SelectDifficulty(d config.Difficulty) {
	gs.CurrentDifficulty = d
	gs.PendingDifficulty = nil
	gs.ConsecutiveWins = 0
}

// HasPending 返回是否存在预约难度
func (gs *GameState) HasPending() bool {
	return gs.PendingDifficulty != nil
}
