package components

import (
	"image/color"

	"github.com/decker502/xmasreel/pkg/utils"
)

// FlashEffectComponent 闪烁效果组件
// 转轮停止后边框短暂高亮：命中「一」时为红色，否则为灰色
type FlashEffectComponent struct {
	// Duration 闪烁持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Intensity 初始强度（0.0 - 1.0），按二次缓出曲线衰减到 0
	Intensity float64

	// Color 高亮颜色
	Color color.RGBA

	// IsActive 是否激活（用于临时禁用效果）
	IsActive bool
}

// CurrentAlpha 返回当前时刻的透明度（0.0 - 1.0）
func (f *FlashEffectComponent) CurrentAlpha() float64 {
	if !f.IsActive || f.Duration <= 0 || f.Elapsed >= f.Duration {
		return 0
	}
	progress := utils.Clamp01(f.Elapsed / f.Duration)
	return utils.Lerp(f.Intensity, 0, utils.EaseOutQuad(progress))
}
