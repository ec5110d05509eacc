package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterSystemTwicePanics(t *testing.T) {
	sm := NewSystemManager()
	sm.RegisterSystem(newTestSystem("movement"))

	requirePanicsWith(t, ErrSystemRegistered, func() {
		sm.RegisterSystem(newTestSystem("movement"))
	})
}

func TestSetSignatureUnregisteredPanics(t *testing.T) {
	sm := NewSystemManager()
	requirePanicsWith(t, ErrSystemNotRegistered, func() {
		sm.SetSignature(newTestSystem("ghost"), 1)
	})
	requirePanicsWith(t, ErrSystemNotRegistered, func() {
		sm.Signature(newTestSystem("ghost"))
	})
}

func TestEntitySignatureChanged(t *testing.T) {
	sm := NewSystemManager()
	physics := newTestSystem("physics")
	render := newTestSystem("render")
	sm.RegisterSystem(physics)
	sm.RegisterSystem(render)
	sm.SetSignature(physics, Signature(0).Set(0).Set(1))
	sm.SetSignature(render, Signature(0).Set(0))

	sm.EntitySignatureChanged(1, Signature(0).Set(0))
	assert.False(t, physics.HasEntity(1))
	assert.True(t, render.HasEntity(1))

	sm.EntitySignatureChanged(1, Signature(0).Set(0).Set(1).Set(5))
	assert.True(t, physics.HasEntity(1))
	assert.True(t, render.HasEntity(1))

	sm.EntitySignatureChanged(1, Signature(0).Set(1))
	assert.False(t, physics.HasEntity(1))
	assert.False(t, render.HasEntity(1))
}

func TestSystemManagerEntityDestroyed(t *testing.T) {
	sm := NewSystemManager()
	a := newTestSystem("a")
	b := newTestSystem("b")
	sm.RegisterSystem(a)
	sm.RegisterSystem(b)

	sm.EntitySignatureChanged(3, 0)
	sm.EntitySignatureChanged(4, 0)
	assert.Equal(t, []Entity{3, 4}, a.Entities())

	sm.EntityDestroyed(3)
	sm.EntityDestroyed(3)
	assert.Equal(t, []Entity{4}, a.Entities())
	assert.Equal(t, []Entity{4}, b.Entities())
}

func TestSystemManagerUpdateOrder(t *testing.T) {
	sm := NewSystemManager()
	first := newTestSystem("first")
	second := newTestSystem("second")
	sm.RegisterSystem(first)
	sm.RegisterSystem(&passiveSystem{})
	sm.RegisterSystem(second)

	sm.Update(1.0 / 60)
	sm.Update(1.0 / 60)

	assert.Equal(t, 2, first.updates)
	assert.Equal(t, 2, second.updates)

	names := make([]string, 0, 3)
	for _, s := range sm.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"first", "passive", "second"}, names)
}

func TestEntitySet(t *testing.T) {
	var s EntitySet
	assert.True(t, s.Insert(5))
	assert.True(t, s.Insert(2))
	assert.False(t, s.Insert(5))
	assert.True(t, s.Insert(9))

	assert.True(t, s.Erase(5))
	assert.False(t, s.Erase(5))
	assert.Equal(t, []Entity{2, 9}, s.Sorted())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(5))
}
