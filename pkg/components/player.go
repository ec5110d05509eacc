package components

// PlayerComponent 标记玩家控制的实体并记录其空中状态
type PlayerComponent struct {
	Grounded bool // 是否站在地面上
	Falling  bool // 本次空中过程是否已经开始下落（用于只发送一次 FALL 消息）
	Jumps    int  // 累计起跳次数
	Falls    int  // 累计下落次数
}

// JumpComponent 允许实体起跳
type JumpComponent struct {
	Speed float64 // 起跳初速度（像素/秒）
}
