package ecs

import (
	"math/bits"
	"strings"
)

// MaxComponents 签名能描述的组件类型数量上限
const MaxComponents = 64

// ComponentID 已注册组件类型的位索引
type ComponentID uint8

// Signature 记录实体拥有的组件类型，或系统需要的组件类型
// 第 i 位置位表示 ComponentID 为 i 的组件存在。
type Signature uint64

// Set 返回置位 id 后的签名
func (s Signature) Set(id ComponentID) Signature {
	return s | (1 << uint64(id))
}

// Unset 返回清除 id 后的签名
func (s Signature) Unset(id ComponentID) Signature {
	return s &^ (1 << uint64(id))
}

// Has 检查 id 对应的位是否置位
func (s Signature) Has(id ComponentID) bool {
	return s&(1<<uint64(id)) != 0
}

// Contains 检查 sub 的每一位是否都在 s 中置位
// 实体签名包含系统签名时，实体属于该系统。
func (s Signature) Contains(sub Signature) bool {
	return s&sub == sub
}

// Len 返回置位的数量
func (s Signature) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IDs 按升序返回所有置位的索引
func (s Signature) IDs() []ComponentID {
	ids := make([]ComponentID, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		ids = append(ids, ComponentID(bits.TrailingZeros64(rest)))
	}
	return ids
}

// String 把签名渲染为 64 位的二进制字符串，高位在前
func (s Signature) String() string {
	var b strings.Builder
	b.Grow(MaxComponents)
	for i := MaxComponents - 1; i >= 0; i-- {
		if s.Has(ComponentID(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
