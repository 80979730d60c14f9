package components

import (
	"math"
	"testing"
)

// TestFlashEffectCurrentAlpha 测试高亮强度按缓出曲线衰减
func TestFlashEffectCurrentAlpha(t *testing.T) {
	tests := []struct {
		name    string
		flash   FlashEffectComponent
		wantVal float64
	}{
		{"开始时为初始强度", FlashEffectComponent{Duration: 1, Elapsed: 0, Intensity: 0.8, IsActive: true}, 0.8},
		{"过半时剩余四分之一", FlashEffectComponent{Duration: 1, Elapsed: 0.5, Intensity: 0.8, IsActive: true}, 0.2},
		{"结束后为零", FlashEffectComponent{Duration: 1, Elapsed: 1.2, Intensity: 0.8, IsActive: true}, 0},
		{"未激活为零", FlashEffectComponent{Duration: 1, Elapsed: 0, Intensity: 0.8, IsActive: false}, 0},
		{"时长为零", FlashEffectComponent{Duration: 0, Intensity: 1, IsActive: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.flash.CurrentAlpha()
			if math.Abs(got-tt.wantVal) > 1e-9 {
				t.Errorf("CurrentAlpha() = %v, want %v", got, tt.wantVal)
			}
		})
	}
}
