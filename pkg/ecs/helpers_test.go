package ecs

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	Speed float64
}

type testHealthComponent struct {
	Current, Max int
}

// requirePanicsWith runs fn and checks that it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic with %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, eris.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}

// testSystem is a bare system that counts its Update calls.
type testSystem struct {
	SystemBase
	name    string
	updates int
}

func newTestSystem(name string) *testSystem {
	return &testSystem{name: name}
}

func (s *testSystem) Name() string {
	return s.name
}

func (s *testSystem) Update(float64) {
	s.updates++
}

// passiveSystem does not implement Updater.
type passiveSystem struct {
	SystemBase
}

func (s *passiveSystem) Name() string {
	return "passive"
}
