package entities

import (
	"image/color"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelSpec 文字标签实体的参数
type LabelSpec struct {
	Text  string
	Color color.Color
	Align components.LabelAlign

	Desktop components.AnchorPoint
	Mobile  components.AnchorPoint

	// DesktopFont 横排布局字体（必填）
	DesktopFont *text.GoTextFace
	// MobileFont 竖排布局字体，nil 时沿用 DesktopFont
	MobileFont *text.GoTextFace
}

// NewLabel 创建文字标签实体，初始位置为横排布局
func NewLabel(em *ecs.EntityManager, spec LabelSpec) ecs.EntityID {
	entity := em.CreateEntity()

	mobileFont := spec.MobileFont
	if mobileFont == nil {
		mobileFont = spec.DesktopFont
	}

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: spec.Desktop.X,
		Y: spec.Desktop.Y,
	})

	ecs.AddComponent(em, entity, &components.LayoutAnchorComponent{
		Desktop:     spec.Desktop,
		Mobile:      spec.Mobile,
		DesktopFont: spec.DesktopFont,
		MobileFont:  mobileFont,
	})

	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:  spec.Text,
		Font:  spec.DesktopFont,
		Color: spec.Color,
		Align: spec.Align,
	})

	return entity
}
