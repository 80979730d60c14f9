package components

import "github.com/decker502/xmasreel/pkg/config"

// SymbolStrip 符号条：基础符号 1..N 的资源引用，重复 config.ReelStripCopies 次
// 按渲染顺序排列（自上而下）
type SymbolStrip []string

// ReelComponent 转轮状态（ReelState）
//
// 由 ReelAnimator 独占持有并修改，只在帧回调和停止处理中变更；
// 难度变化时整体替换为新值，而不是原地重置字段。
// 挂在转轮实体上供渲染系统只读访问。
type ReelComponent struct {
	// Config 本轮使用的难度参数（转动中不变）
	Config config.DifficultyConfig
	// Strip 已挂载的符号条
	Strip SymbolStrip
	// LoopHeight 一组基础符号的总高度 = SymbolCount × SymbolImageHeight
	LoopHeight float64

	// ScrollOffset 当前滚动偏移（像素），回绕后位于 [0, LoopHeight)
	ScrollOffset float64
	// Running 是否正在转动
	Running bool
	// ResultEmitted 本轮结果是否已上报（防止重复上报）
	ResultEmitted bool

	// LastSymbol 最近一次停止时命中的符号（0 表示尚未停止过）
	LastSymbol int
}
