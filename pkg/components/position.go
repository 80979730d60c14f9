package components

// PositionComponent 存储实体在逻辑屏幕中的位置（左上角）
type PositionComponent struct {
	X float64
	Y float64
}
