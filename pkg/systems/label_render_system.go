package systems

import (
	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelRenderSystem 文字标签渲染系统
type LabelRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewLabelRenderSystem 创建文字标签渲染系统
func NewLabelRenderSystem(em *ecs.EntityManager) *LabelRenderSystem {
	return &LabelRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有标签
func (s *LabelRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if label.Text == "" || label.Font == nil {
			continue
		}

		op := &text.DrawOptions{}
		if label.Align == components.LabelAlignCenter {
			op.LayoutOptions.PrimaryAlign = text.AlignCenter
			op.LayoutOptions.SecondaryAlign = text.AlignCenter
		}
		op.GeoM.Translate(pos.X, pos.Y)
		if label.Color != nil {
			op.ColorScale.ScaleWithColor(label.Color)
		}
		text.Draw(screen, label.Text, label.Font, op)
	}
}
