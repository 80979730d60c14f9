package components

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// AnchorPoint 某一布局下的位置
type AnchorPoint struct {
	X float64
	Y float64
}

// LayoutAnchorComponent 记录实体在横排 / 竖排两种布局下的位置
// LayoutSystem 在窗口宽度跨过阈值时据此更新 PositionComponent
type LayoutAnchorComponent struct {
	Desktop AnchorPoint
	Mobile  AnchorPoint

	// DesktopFont / MobileFont 可选，切换布局时替换 LabelComponent 的字体
	DesktopFont *text.GoTextFace
	MobileFont  *text.GoTextFace
}
