package systems

import (
	"image/color"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 渲染按钮背景（按风格和状态选择颜色）
//   - 渲染按钮边框
//   - 渲染按钮文字（自动居中）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并渲染
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	fill, textColor := ButtonColors(button)
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)

	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	if button.Style != components.ButtonStyleShare {
		vector.StrokeRect(screen, x, y, w, h, 1, config.ButtonBorderColor, true)
	}

	s.drawButtonText(screen, button, pos.X, pos.Y, textColor)
}

// ButtonColors 根据风格和状态返回底色与文字颜色
// 选中的难度按钮在禁用时仍保持选中配色
func ButtonColors(button *components.ButtonComponent) (fill color.Color, textColor color.Color) {
	if button.Style == components.ButtonStyleOption && button.Selected {
		return config.ButtonSelectedColor, color.White
	}
	if button.State == components.UIDisabled || !button.Enabled {
		return config.ButtonDisabledColor, config.MutedTextColor
	}

	if button.Style == components.ButtonStyleShare {
		if button.State == components.UIHovered || button.State == components.UIClicked {
			return config.ShareButtonHoverColor, color.White
		}
		return config.ShareButtonColor, color.White
	}

	switch button.State {
	case components.UIClicked:
		return config.ButtonPressedColor, config.TextColor
	case components.UIHovered:
		return config.ButtonHoverColor, config.TextColor
	default:
		return config.ButtonColor, config.TextColor
	}
}

// drawButtonText 渲染按钮文字（水平、垂直居中）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64, textColor color.Color) {
	if button.Text == "" || button.Font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x+button.Width/2, y+button.Height/2)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, button.Text, button.Font, op)
}
