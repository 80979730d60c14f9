package config

// 布局配置常量
// 本文件定义了转轮、文字、按钮在两种布局（横排 / 竖排）下的位置参数
// 所有坐标都是逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口

// 逻辑屏幕尺寸
const (
	// DesktopScreenWidth 横排布局的逻辑宽度
	DesktopScreenWidth = 960
	// DesktopScreenHeight 横排布局的逻辑高度
	DesktopScreenHeight = 600

	// MobileScreenWidth 竖排布局的逻辑宽度
	MobileScreenWidth = 375
	// MobileScreenHeight 竖排布局的逻辑高度
	MobileScreenHeight = 760

	// MobileBreakpoint 窗口宽度不大于此值时切换为竖排布局
	MobileBreakpoint = 375

	// GameWindowWidth 启动时窗口宽度
	GameWindowWidth = DesktopScreenWidth
	// GameWindowHeight 启动时窗口高度
	GameWindowHeight = DesktopScreenHeight
)

// 转轮几何参数
const (
	// SymbolImageWidth 单个符号图片宽度（像素）
	SymbolImageWidth = 300.0
	// SymbolImageHeight 单个符号图片高度（像素）
	SymbolImageHeight = 200.0

	// ReelViewportWidth 转轮窗口宽度
	ReelViewportWidth = 300.0
	// ReelViewportHeight 转轮窗口高度（只露出一个符号）
	ReelViewportHeight = 200.0

	// ReelStripCopies 符号条重复次数，保证任意偏移下视口中心附近都有完整一组
	ReelStripCopies = 3

	// SymbolAssetDir 符号资源目录
	SymbolAssetDir = "assets/symbols"

	// SymbolFontSize 符号图块上汉字数字的字号
	SymbolFontSize = 150.0
)

// 字号（横排 80px，竖排 48px）
const (
	DesktopTitleFontSize = 80.0
	MobileTitleFontSize  = 48.0

	HUDFontSize    = 26.0
	ButtonFontSize = 24.0
)

// 横排布局：[クリスマスも] [转轮] [人]
const (
	DesktopHUDX              = 40.0
	DesktopMaxScoreY         = 30.0
	DesktopDifficultyY       = 80.0
	DesktopDifficultyButtonX = 140.0
	DesktopDifficultyButtonY = 76.0
	DesktopStreakX           = 510.0
	DesktopReelX             = 515.0
	DesktopReelY             = 180.0
	DesktopPrefixCenterX     = 262.0
	DesktopSuffixCenterX     = 870.0
	DesktopButtonY           = 420.0
	DesktopShareButtonY      = 490.0
)

// 竖排布局：文字、转轮、文字自上而下排列
const (
	MobileHUDX              = 16.0
	MobileMaxScoreY         = 20.0
	MobileDifficultyY       = 64.0
	MobileDifficultyButtonX = 16.0
	MobileDifficultyButtonY = 100.0
	MobileStreakY           = 146.0
	MobileReelX             = 37.5
	MobileReelY             = 270.0
	MobilePrefixCenterY     = 220.0
	MobileSuffixCenterY     = 520.0
	MobileButtonY           = 590.0
	MobileShareButtonY      = 660.0
)

// 按钮尺寸
const (
	PrimaryButtonWidth    = 180.0
	PrimaryButtonHeight   = 52.0
	ShareButtonWidth      = 180.0
	ShareButtonHeight     = 44.0
	DifficultyButtonWidth = 80.0
	DifficultyButtonGap   = 8.0
	DifficultyButtonH     = 34.0
)

// Rect 轴对齐矩形
type Rect struct {
	X, Y, Width, Height float64
}

// CenterY 返回矩形垂直中心
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IsMobileWidth 判断窗口宽度是否应使用竖排布局
func IsMobileWidth(outsideWidth int) bool {
	return outsideWidth <= MobileBreakpoint
}

// ReelViewportRect 返回指定布局下转轮窗口的位置
func ReelViewportRect(mobile bool) Rect {
	if mobile {
		return Rect{X: MobileReelX, Y: MobileReelY, Width: ReelViewportWidth, Height: ReelViewportHeight}
	}
	return Rect{X: DesktopReelX, Y: DesktopReelY, Width: ReelViewportWidth, Height: ReelViewportHeight}
}

// ScreenSize 返回指定布局的逻辑屏幕尺寸
func ScreenSize(mobile bool) (int, int) {
	if mobile {
		return MobileScreenWidth, MobileScreenHeight
	}
	return DesktopScreenWidth, DesktopScreenHeight
}

// DifficultyButtonRect 返回第 index 个难度按钮（0 起）的位置
func DifficultyButtonRect(index int, mobile bool) Rect {
	x, y := DesktopDifficultyButtonX, DesktopDifficultyButtonY
	if mobile {
		x, y = MobileDifficultyButtonX, MobileDifficultyButtonY
	}
	return Rect{
		X:      x + float64(index)*(DifficultyButtonWidth+DifficultyButtonGap),
		Y:      y,
		Width:  DifficultyButtonWidth,
		Height: DifficultyButtonH,
	}
}

// PrimaryButtonRect 返回开始 / 停止按钮的位置（水平居中）
func PrimaryButtonRect(mobile bool) Rect {
	w, _ := ScreenSize(mobile)
	y := DesktopButtonY
	if mobile {
		y = MobileButtonY
	}
	return Rect{X: (float64(w) - PrimaryButtonWidth) / 2, Y: y, Width: PrimaryButtonWidth, Height: PrimaryButtonHeight}
}

// ShareButtonRect 返回分享按钮的位置（水平居中）
func ShareButtonRect(mobile bool) Rect {
	w, _ := ScreenSize(mobile)
	y := DesktopShareButtonY
	if mobile {
		y = MobileShareButtonY
	}
	return Rect{X: (float64(w) - ShareButtonWidth) / 2, Y: y, Width: ShareButtonWidth, Height: ShareButtonHeight}
}
