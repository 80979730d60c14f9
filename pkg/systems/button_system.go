package systems

import (
	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标点击（释放时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//   - 触摸屏：手指抬起时按点击处理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	touchIDs      []ebiten.TouchID
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态
// 检测鼠标位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := ebiten.CursorPosition()
	mousePressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mouseReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.HandlePointer(float64(mouseX), float64(mouseY), mousePressed, mouseReleased)

	// 触摸抬起等同于在抬起位置点击
	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.HandlePointer(float64(x), float64(y), false, true)
	}
}

// HandlePointer 以给定的指针位置和按键状态更新所有按钮
func (s *ButtonSystem) HandlePointer(x, y float64, pressed, released bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.isPointerInButton(x, y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			// 释放瞬间触发回调，释放后恢复悬停状态
			button.State = components.UIHovered
			if button.OnClick != nil {
				button.OnClick()
			}
		default:
			button.State = components.UIHovered
		}
	}
}

// isPointerInButton 检测指针是否在按钮范围内
func (s *ButtonSystem) isPointerInButton(pointerX, pointerY, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return pointerX >= buttonX &&
		pointerX <= buttonX+buttonWidth &&
		pointerY >= buttonY &&
		pointerY <= buttonY+buttonHeight
}
