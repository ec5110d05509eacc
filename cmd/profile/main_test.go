package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// 没有玩家实体，不会发送 FALL；
	// 碰撞盒间距 40 像素，互不重叠
	assert.Equal(t, 0, run(2, 3, 50))
}
