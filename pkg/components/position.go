package components

// PositionComponent 存储实体在世界坐标系中的位置（像素）
// Y 轴向下为正
type PositionComponent struct {
	X float64
	Y float64
}
