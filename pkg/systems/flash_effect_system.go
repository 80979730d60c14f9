package systems

import (
	"image/color"

	"github.com/decker502/xmasreel/pkg/components"
	"github.com/decker502/xmasreel/pkg/ecs"
)

// FlashDuration 停止后边框高亮的持续时间（秒）
const FlashDuration = 0.6

// FlashEffectSystem 闪烁效果系统
// 管理转轮停止后边框高亮的生命周期
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Trigger 为实体添加（或重置）闪烁效果
func (s *FlashEffectSystem) Trigger(entity ecs.EntityID, clr color.RGBA) {
	ecs.AddComponent(s.entityManager, entity, &components.FlashEffectComponent{
		Duration:  FlashDuration,
		Intensity: 1.0,
		Color:     clr,
		IsActive:  true,
	})
}

// Update 更新所有闪烁效果
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, entity := range entities {
		flashComp, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, entity)
		if !ok || !flashComp.IsActive {
			continue
		}

		flashComp.Elapsed += dt

		// 闪烁结束，移除组件
		if flashComp.Elapsed >= flashComp.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, entity)
		}
	}
}
