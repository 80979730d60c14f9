package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
)

func TestButtonColors(t *testing.T) {
	tests := []struct {
		name     string
		button   components.ButtonComponent
		wantFill color.Color
	}{
		{"普通", components.ButtonComponent{Enabled: true}, config.ButtonColor},
		{"悬停", components.ButtonComponent{Enabled: true, State: components.UIHovered}, config.ButtonHoverColor},
		{"按下", components.ButtonComponent{Enabled: true, State: components.UIClicked}, config.ButtonPressedColor},
		{"禁用", components.ButtonComponent{Enabled: false}, config.ButtonDisabledColor},
		{"分享", components.ButtonComponent{Enabled: true, Style: components.ButtonStyleShare}, config.ShareButtonColor},
		{"分享悬停", components.ButtonComponent{Enabled: true, Style: components.ButtonStyleShare, State: components.UIHovered}, config.ShareButtonHoverColor},
		{"选中的难度", components.ButtonComponent{Enabled: true, Style: components.ButtonStyleOption, Selected: true}, config.ButtonSelectedColor},
		{"未选中的难度", components.ButtonComponent{Enabled: true, Style: components.ButtonStyleOption}, config.ButtonColor},
		{"禁用的选中难度", components.ButtonComponent{Enabled: false, Style: components.ButtonStyleOption, Selected: true}, config.ButtonSelectedColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fill, _ := ButtonColors(&tt.button)
			if fill != tt.wantFill {
				t.Errorf("fill = %v, want %v", fill, tt.wantFill)
			}
		})
	}
}
