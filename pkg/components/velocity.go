package components

// VelocityComponent 存储实体的速度
type VelocityComponent struct {
	VX    float64 // 水平速度（像素/秒），正值向右
	VY    float64 // 垂直速度（像素/秒），正值向下
	Speed float64 // 玩家左右移动时使用的水平速度（像素/秒）
}

// GravityComponent 使实体受重力影响
type GravityComponent struct {
	Acceleration float64 // 重力加速度（像素/秒²）
}
