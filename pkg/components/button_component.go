package components

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 定义按钮的外观风格
type ButtonStyle int

const (
	// ButtonStylePlain 普通按钮（开始 / 停止）
	ButtonStylePlain ButtonStyle = iota
	// ButtonStyleShare 分享按钮（蓝底白字）
	ButtonStyleShare
	// ButtonStyleOption 难度选项按钮（选中时反色）
	ButtonStyleOption
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 背景由 vector 绘制矩形，不依赖图片资源
//   - 文字自动居中显示
type ButtonComponent struct {
	// Style 按钮外观风格
	Style ButtonStyle

	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Selected 是否处于选中状态（仅 ButtonStyleOption 使用）
	Selected bool

	// OnClick 点击回调函数
	OnClick func()
}
