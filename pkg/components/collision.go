package components

// ColliderComponent 定义实体的碰撞检测边界框
// 碰撞盒中心对齐实体位置，再加上偏移量
type ColliderComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移
}

// Bounds returns the box edges for an entity standing at (x, y).
func (c *ColliderComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}
