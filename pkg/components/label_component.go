package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelAlign 文字水平对齐方式
type LabelAlign int

const (
	// LabelAlignStart 以位置为左上角
	LabelAlignStart LabelAlign = iota
	// LabelAlignCenter 以位置为中心
	LabelAlignCenter
)

// LabelComponent 文字标签组件
// 文本内容每帧由场景根据游戏状态刷新
type LabelComponent struct {
	Text  string
	Font  *text.GoTextFace
	Color color.Color
	Align LabelAlign
}
