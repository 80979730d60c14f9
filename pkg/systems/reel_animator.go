package systems

import (
	"log"
	"math"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
)

// ReelOutcome 一次停止的结果
type ReelOutcome struct {
	IsWin       bool // SymbolValue == 1
	SymbolValue int  // 基础符号编号 1..SymbolCount
}

// ReelAnimator 转轮动画
//
// 职责：
//   - 转动时每帧推进滚动偏移，超过一组高度时回绕
//   - 停止时找出中心离视口中心最近的符号实例，吸附使其精确居中
//   - 每个 开始-停止 周期只上报一次结果
//
// 转轮状态（ReelComponent）挂在转轮实体上，由本系统独占修改；
// 难度参数变化时整体替换为新的组件值。
type ReelAnimator struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	scheduler     *FrameScheduler
	surface       ReelSurface

	// frame 已登记但尚未执行的帧回调，0 表示没有
	frame FrameHandle
}

// NewReelAnimator 创建转轮动画系统，并以初始难度挂载符号条（停止状态）
func NewReelAnimator(em *ecs.EntityManager, entity ecs.EntityID, scheduler *FrameScheduler, surface ReelSurface, initial config.DifficultyConfig) *ReelAnimator {
	a := &ReelAnimator{
		entityManager: em,
		entity:        entity,
		scheduler:     scheduler,
		surface:       surface,
	}
	a.mount(initial)
	return a
}

// BuildSymbolStrip 生成符号条：1..count 的资源引用，重复 ReelStripCopies 次
func BuildSymbolStrip(count int) components.SymbolStrip {
	strip := make(components.SymbolStrip, 0, count*config.ReelStripCopies)
	for c := 0; c < config.ReelStripCopies; c++ {
		for i := 1; i <= count; i++ {
			strip = append(strip, config.SymbolAssetRef(i))
		}
	}
	return strip
}

// FindNearestInstance 返回中心离 centerY 最近的实例下标
// 距离相等时取渲染顺序靠前的实例；没有实例时返回 false
func FindNearestInstance(instances []SymbolInstance, centerY float64) (int, bool) {
	best := -1
	bestDistance := math.Inf(1)
	for i, inst := range instances {
		distance := math.Abs(inst.Bounds.CenterY() - centerY)
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	return best, best >= 0
}

// SymbolValueOf 从资源引用解析符号编号，解析失败时按 1 处理
func SymbolValueOf(ref string) int {
	index, err := config.ParseSymbolIndex(ref)
	if err != nil {
		log.Printf("[ReelAnimator] Warning: %v, falling back to symbol 1", err)
		return 1
	}
	return index
}

// State 返回转轮状态（只读使用）
func (a *ReelAnimator) State() *components.ReelComponent {
	reel, _ := ecs.GetComponent[*components.ReelComponent](a.entityManager, a.entity)
	return reel
}

// IsRunning 返回转轮是否在转动
func (a *ReelAnimator) IsRunning() bool {
	reel := a.State()
	return reel != nil && reel.Running
}

// Start 以指定难度开始转动
// 难度参数与当前不同时先替换转轮状态；已在转动时返回 false
func (a *ReelAnimator) Start(cfg config.DifficultyConfig) bool {
	reel := a.State()
	if reel != nil && reel.Running {
		return false
	}

	if reel == nil || reel.Config != cfg {
		reel = a.mount(cfg)
	}

	reel.Running = true
	reel.ResultEmitted = false
	a.frame = a.scheduler.RequestFrame(a.tick)

	log.Printf("[ReelAnimator] Start: symbols=%d speed=%.0f offset=%.1f",
		cfg.SymbolCount, cfg.ScrollSpeed, reel.ScrollOffset)
	return true
}

// Stop 停止转动并返回结果
//
// 先取消已登记的帧回调，再读取几何做命中检测，
// 因此命中检测之后不会再有 tick 修改偏移。
// 已停止或本轮已上报过结果时返回 false，不做任何修改。
func (a *ReelAnimator) Stop() (ReelOutcome, bool) {
	if a.frame != 0 {
		a.scheduler.CancelFrame(a.frame)
		a.frame = 0
	}

	reel := a.State()
	if reel == nil || !reel.Running || reel.ResultEmitted {
		return ReelOutcome{}, false
	}
	reel.Running = false

	value := 1
	viewportCenter := a.surface.ViewportBounds().CenterY()
	instances := a.surface.InstanceBounds()
	if idx, ok := FindNearestInstance(instances, viewportCenter); ok {
		hit := instances[idx]
		reel.ScrollOffset += viewportCenter - hit.Bounds.CenterY()
		a.surface.SetOffset(reel.ScrollOffset)
		value = SymbolValueOf(hit.AssetRef)
	} else {
		log.Printf("[ReelAnimator] Warning: no symbol instances, falling back to symbol 1")
	}

	reel.ResultEmitted = true
	reel.LastSymbol = value

	outcome := ReelOutcome{IsWin: value == 1, SymbolValue: value}
	log.Printf("[ReelAnimator] Stop: symbol=%d win=%v offset=%.1f", value, outcome.IsWin, reel.ScrollOffset)
	return outcome, true
}

// tick 每帧推进一次偏移并重新登记
func (a *ReelAnimator) tick() {
	a.frame = 0

	reel := a.State()
	if reel == nil || !reel.Running {
		return
	}

	reel.ScrollOffset += reel.Config.ScrollSpeed
	if reel.ScrollOffset >= reel.LoopHeight {
		reel.ScrollOffset -= reel.LoopHeight
	}
	a.surface.SetOffset(reel.ScrollOffset)

	a.frame = a.scheduler.RequestFrame(a.tick)
}

// mount 以新难度参数替换转轮状态并挂载符号条
func (a *ReelAnimator) mount(cfg config.DifficultyConfig) *components.ReelComponent {
	var lastSymbol int
	if previous := a.State(); previous != nil {
		lastSymbol = previous.LastSymbol
	}

	strip := BuildSymbolStrip(cfg.SymbolCount)
	reel := &components.ReelComponent{
		Config:     cfg,
		Strip:      strip,
		LoopHeight: cfg.LoopHeight(),
		LastSymbol: lastSymbol,
	}
	ecs.AddComponent(a.entityManager, a.entity, reel)
	a.surface.Mount(strip)
	return reel
}
