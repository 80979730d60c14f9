package entities

import (
	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/config"
	"github.com/decker502/xmasreel/pkg/ecs"
)

// NewReelEntity 创建转轮实体
//
// 只带位置和布局锚点（视口左上角）；ReelComponent 由 ReelAnimator
// 在挂载符号条时添加，FlashEffectComponent 由 FlashEffectSystem 按需添加。
func NewReelEntity(em *ecs.EntityManager) ecs.EntityID {
	desktop := config.ReelViewportRect(false)
	mobile := config.ReelViewportRect(true)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: desktop.X,
		Y: desktop.Y,
	})
	ecs.AddComponent(em, entity, &components.LayoutAnchorComponent{
		Desktop: components.AnchorPoint{X: desktop.X, Y: desktop.Y},
		Mobile:  components.AnchorPoint{X: mobile.X, Y: mobile.Y},
	})
	return entity
}
