package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// flashStrokeWidth 停止高亮边框宽度
const flashStrokeWidth = 6

// SymbolImageSource 按资源引用提供符号图块（*game.ResourceManager 实现此接口）
type SymbolImageSource interface {
	SymbolImage(ref string) *ebiten.Image
}

// ReelRenderSystem 转轮渲染系统
//
// 把渲染表面上的符号实例裁剪到视口内绘制，
// 然后绘制视口边框和停止后的高亮闪烁。
type ReelRenderSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	surface       ReelSurface
	images        SymbolImageSource
}

// NewReelRenderSystem 创建转轮渲染系统
func NewReelRenderSystem(em *ecs.EntityManager, entity ecs.EntityID, surface ReelSurface, images SymbolImageSource) *ReelRenderSystem {
	return &ReelRenderSystem{
		entityManager: em,
		entity:        entity,
		surface:       surface,
		images:        images,
	}
}

// VisibleInstances 返回与视口有重叠的符号实例
func VisibleInstances(instances []SymbolInstance, viewport config.Rect) []SymbolInstance {
	var visible []SymbolInstance
	for _, inst := range instances {
		if inst.Bounds.Y+inst.Bounds.Height <= viewport.Y || inst.Bounds.Y >= viewport.Y+viewport.Height {
			continue
		}
		visible = append(visible, inst)
	}
	return visible
}

// Draw 渲染转轮
func (s *ReelRenderSystem) Draw(screen *ebiten.Image) {
	viewport := s.surface.ViewportBounds()
	vx, vy := float32(viewport.X), float32(viewport.Y)
	vw, vh := float32(viewport.Width), float32(viewport.Height)

	vector.DrawFilledRect(screen, vx, vy, vw, vh, config.ReelBackgroundColor, false)

	clip := image.Rect(
		int(math.Floor(viewport.X)),
		int(math.Floor(viewport.Y)),
		int(math.Ceil(viewport.X+viewport.Width)),
		int(math.Ceil(viewport.Y+viewport.Height)),
	)
	dst, ok := screen.SubImage(clip).(*ebiten.Image)
	if ok && s.images != nil {
		for _, inst := range VisibleInstances(s.surface.InstanceBounds(), viewport) {
			s.drawSymbol(dst, inst)
		}
	}

	vector.StrokeRect(screen, vx, vy, vw, vh, config.ReelFrameWidth, config.ReelFrameColor, false)
	s.drawFlash(screen, vx, vy, vw, vh)
}

// drawSymbol 在实例位置绘制符号图块，缩放到实例尺寸
func (s *ReelRenderSystem) drawSymbol(dst *ebiten.Image, inst SymbolInstance) {
	img := s.images.SymbolImage(inst.AssetRef)
	if img == nil {
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(inst.Bounds.Width/float64(bounds.Dx()), inst.Bounds.Height/float64(bounds.Dy()))
	op.GeoM.Translate(inst.Bounds.X, inst.Bounds.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawFlash 绘制停止后逐渐淡出的高亮边框
func (s *ReelRenderSystem) drawFlash(screen *ebiten.Image, x, y, w, h float32) {
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, s.entity)
	if !ok {
		return
	}

	alpha := flash.CurrentAlpha()
	if alpha <= 0 {
		return
	}

	half := float32(flashStrokeWidth) / 2
	vector.StrokeRect(screen, x-half, y-half, w+2*half, h+2*half, flashStrokeWidth, fadeColor(flash.Color, alpha), true)
}

// fadeColor 按透明度缩放颜色（color.RGBA 为预乘 alpha）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * alpha))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
