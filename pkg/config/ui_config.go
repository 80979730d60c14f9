package config

import "image/color"

// UI 颜色配置
// 背景、转轮边框、按钮等元素的配色

var (
	// BackgroundColor 画面底色（雪白）
	BackgroundColor = color.RGBA{R: 250, G: 248, B: 244, A: 255}
	// TextColor 正文颜色
	TextColor = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	// MutedTextColor 次要文字颜色（连胜、提示）
	MutedTextColor = color.RGBA{R: 110, G: 110, B: 110, A: 255}

	// ReelBackgroundColor 转轮窗口底色
	ReelBackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// ReelFrameColor 转轮窗口边框
	ReelFrameColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	// ReelFrameWidth 转轮窗口边框宽度
	ReelFrameWidth = float32(3)

	// SymbolTileColor 符号图块底色
	SymbolTileColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// SymbolWinColor 中奖符号（一）的文字颜色
	SymbolWinColor = color.RGBA{R: 200, G: 30, B: 45, A: 255}
	// SymbolTextColor 普通符号的文字颜色
	SymbolTextColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	// SymbolSeparatorColor 相邻符号之间的分隔线
	SymbolSeparatorColor = color.RGBA{R: 225, G: 225, B: 225, A: 255}

	// ButtonColor 按钮底色
	ButtonColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	// ButtonHoverColor 悬停底色
	ButtonHoverColor = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	// ButtonPressedColor 按下底色
	ButtonPressedColor = color.RGBA{R: 205, G: 205, B: 205, A: 255}
	// ButtonDisabledColor 禁用底色
	ButtonDisabledColor = color.RGBA{R: 235, G: 235, B: 235, A: 160}
	// ButtonSelectedColor 当前选中的难度按钮
	ButtonSelectedColor = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	// ButtonBorderColor 按钮边框
	ButtonBorderColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}

	// ShareButtonColor 分享按钮底色（Twitter 蓝 #1DA1F2）
	ShareButtonColor = color.RGBA{R: 0x1D, G: 0xA1, B: 0xF2, A: 255}
	// ShareButtonHoverColor 分享按钮悬停底色
	ShareButtonHoverColor = color.RGBA{R: 0x1A, G: 0x8C, B: 0xD8, A: 255}
)
