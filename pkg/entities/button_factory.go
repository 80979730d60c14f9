package entities

import (
	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - style: 按钮外观风格
//   - label: 按钮文字
//   - font: 文字字体
//   - desktop, mobile: 横排 / 竖排布局下的按钮矩形（两者尺寸应一致）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//
// 初始位置为横排布局，布局切换由 LayoutSystem 负责。
func NewButton(
	em *ecs.EntityManager,
	style components.ButtonStyle,
	label string,
	font *text.GoTextFace,
	desktop, mobile config.Rect,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: desktop.X,
		Y: desktop.Y,
	})

	ecs.AddComponent(em, entity, &components.LayoutAnchorComponent{
		Desktop: components.AnchorPoint{X: desktop.X, Y: desktop.Y},
		Mobile:  components.AnchorPoint{X: mobile.X, Y: mobile.Y},
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Style:   style,
		Text:    label,
		Font:    font,
		Width:   desktop.Width,
		Height:  desktop.Height,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})

	return entity
}
