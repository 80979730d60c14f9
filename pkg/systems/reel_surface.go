package systems

import (
	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
)

// SymbolInstance 符号条上一个已渲染的符号实例
type SymbolInstance struct {
	AssetRef string
	Bounds   config.Rect
}

// ReelSurface 转轮的渲染表面
//
// ReelAnimator 只通过它读写几何：挂载符号条、写入垂直偏移，
// 以及在停止时读取视口和每个符号实例的位置。
type ReelSurface interface {
	// Mount 挂载新的符号条，偏移归零
	Mount(strip components.SymbolStrip)
	// SetOffset 写入垂直滚动偏移
	SetOffset(offset float64)
	// ViewportBounds 返回视口在屏幕坐标中的位置
	ViewportBounds() config.Rect
	// InstanceBounds 按渲染顺序返回所有符号实例的位置
	InstanceBounds() []SymbolInstance
}

// StripSurface 基于视口矩形计算几何的 ReelSurface 实现
//
// 符号条整体上移一组的高度，再按偏移下移：
//
//	stripTop = viewport.Y - loopHeight + offset
//	instance[i].Y = stripTop + i*SymbolImageHeight
//
// 偏移位于 [0, loopHeight) 时视口始终被第二组符号覆盖。
// 视口位置由 LayoutSystem 在布局切换时更新。
type StripSurface struct {
	viewport    config.Rect
	strip       components.SymbolStrip
	offset      float64
	imageHeight float64
}

// NewStripSurface 创建渲染表面
func NewStripSurface(viewport config.Rect) *StripSurface {
	return &StripSurface{
		viewport:    viewport,
		imageHeight: config.SymbolImageHeight,
	}
}

// Mount 实现 ReelSurface
func (s *StripSurface) Mount(strip components.SymbolStrip) {
	s.strip = strip
	s.offset = 0
}

// SetOffset 实现 ReelSurface
func (s *StripSurface) SetOffset(offset float64) {
	s.offset = offset
}

// Offset 返回当前偏移
func (s *StripSurface) Offset() float64 {
	return s.offset
}

// SetViewport 更新视口位置（布局切换）
func (s *StripSurface) SetViewport(viewport config.Rect) {
	s.viewport = viewport
}

// ViewportBounds 实现 ReelSurface
func (s *StripSurface) ViewportBounds() config.Rect {
	return s.viewport
}

// LoopHeight 一组基础符号的高度
func (s *StripSurface) LoopHeight() float64 {
	return float64(len(s.strip)) * s.imageHeight / config.ReelStripCopies
}

// StripTop 符号条顶端的屏幕坐标
func (s *StripSurface) StripTop() float64 {
	return s.viewport.Y - s.LoopHeight() + s.offset
}

// InstanceBounds 实现 ReelSurface
func (s *StripSurface) InstanceBounds() []SymbolInstance {
	top := s.StripTop()
	instances := make([]SymbolInstance, len(s.strip))
	for i, ref := range s.strip {
		instances[i] = SymbolInstance{
			AssetRef: ref,
			Bounds: config.Rect{
				X:      s.viewport.X,
				Y:      top + float64(i)*s.imageHeight,
				Width:  s.viewport.Width,
				Height: s.imageHeight,
			},
		}
	}
	return instances
}
