package systems

import (
	"log"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
	"github.com/decker502/xmasreel/pkg/utils"
)

// LayoutSystem 响应式布局系统
//
// 观察窗口宽度：不大于 config.MobileBreakpoint 时使用竖排布局，
// 否则使用横排布局（移动端构建始终竖排）。布局切换时按 LayoutAnchorComponent 更新
// 实体位置和字体，并移动转轮视口。只影响画面摆放，不影响转轮算法。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
	surface       *StripSurface
	mobile        bool
	observed      bool
}

// NewLayoutSystem 创建布局系统（初始为横排布局，尚未应用）
func NewLayoutSystem(em *ecs.EntityManager, surface *StripSurface) *LayoutSystem {
	return &LayoutSystem{
		entityManager: em,
		surface:       surface,
	}
}

// Observe 接收窗口宽度，布局发生变化时应用新布局并返回 true
func (s *LayoutSystem) Observe(outsideWidth int) bool {
	mobile := config.IsMobileWidth(outsideWidth) || utils.IsMobile()
	if s.observed && mobile == s.mobile {
		return false
	}

	s.mobile = mobile
	s.observed = true
	s.Apply()

	layoutName := "横排"
	if mobile {
		layoutName = "竖排"
	}
	log.Printf("[LayoutSystem] 窗口宽度 %d，切换为%s布局", outsideWidth, layoutName)
	return true
}

// Apply 按当前布局更新所有带锚点的实体和转轮视口
func (s *LayoutSystem) Apply() {
	entities := ecs.GetEntitiesWith2[*components.LayoutAnchorComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		anchor, _ := ecs.GetComponent[*components.LayoutAnchorComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		point, font := anchor.Desktop, anchor.DesktopFont
		if s.mobile {
			point, font = anchor.Mobile, anchor.MobileFont
		}
		pos.X, pos.Y = point.X, point.Y

		if font == nil {
			continue
		}
		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, entityID); ok {
			label.Font = font
		}
	}

	if s.surface != nil {
		s.surface.SetViewport(config.ReelViewportRect(s.mobile))
	}
}

// IsMobile 返回当前是否为竖排布局
func (s *LayoutSystem) IsMobile() bool {
	return s.mobile
}

// ScreenSize 返回当前布局的逻辑屏幕尺寸
func (s *LayoutSystem) ScreenSize() (int, int) {
	return config.ScreenSize(s.mobile)
}
