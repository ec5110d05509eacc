package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager(10)
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// ID从1开始,0保留为无效ID
	assert.Equal(t, Entity(1), id1)
	assert.Equal(t, Entity(2), id2)
	assert.NotEqual(t, NoEntity, id1)
	assert.Equal(t, 2, em.LivingCount())
	assert.Equal(t, Signature(0), em.Signature(id1))
}

func TestCreateEntityCapacity(t *testing.T) {
	em := NewEntityManager(2)
	em.CreateEntity()
	em.CreateEntity()

	requirePanicsWith(t, ErrTooManyEntities, func() {
		em.CreateEntity()
	})
}

func TestNewEntityManagerDefaultCapacity(t *testing.T) {
	em := NewEntityManager(0)
	assert.Equal(t, DefaultMaxEntities, em.Capacity())
}

func TestDestroyEntityRecyclesID(t *testing.T) {
	em := NewEntityManager(10)
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.SetSignature(id1, Signature(0).Set(3))

	em.DestroyEntity(id1)
	assert.False(t, em.IsAlive(id1))
	assert.True(t, em.IsAlive(id2))

	// 被删除的ID在释放后才会被复用,且签名被清空
	reused := em.CreateEntity()
	assert.Equal(t, id1, reused)
	assert.Equal(t, Signature(0), em.Signature(reused))

	fresh := em.CreateEntity()
	assert.Equal(t, Entity(3), fresh)
}

func TestDestroyEntityReuseOrder(t *testing.T) {
	em := NewEntityManager(10)
	a := em.CreateEntity()
	b := em.CreateEntity()
	c := em.CreateEntity()

	em.DestroyEntity(b)
	em.DestroyEntity(a)

	// 先释放的先复用
	assert.Equal(t, b, em.CreateEntity())
	assert.Equal(t, a, em.CreateEntity())
	assert.True(t, em.IsAlive(c))
}

func TestDestroyEntityFreesCapacity(t *testing.T) {
	em := NewEntityManager(1)
	id := em.CreateEntity()
	em.DestroyEntity(id)

	require.NotPanics(t, func() {
		em.CreateEntity()
	})
}

func TestEntityManagerRejectsDeadEntities(t *testing.T) {
	em := NewEntityManager(10)
	id := em.CreateEntity()
	em.DestroyEntity(id)

	requirePanicsWith(t, ErrEntityNotAlive, func() { em.DestroyEntity(id) })
	requirePanicsWith(t, ErrEntityNotAlive, func() { em.Signature(id) })
	requirePanicsWith(t, ErrEntityNotAlive, func() { em.SetSignature(id, 1) })
	requirePanicsWith(t, ErrEntityNotAlive, func() { em.Signature(Entity(99)) })
}

func TestLiveEntitiesNeverShareIDs(t *testing.T) {
	em := NewEntityManager(64)
	live := make(map[Entity]bool)

	// 交替创建和删除实体
	for round := 0; round < 20; round++ {
		for i := 0; i < 3; i++ {
			id := em.CreateEntity()
			require.False(t, live[id], "entity %d handed out twice", id)
			live[id] = true
		}
		for id := range live {
			em.DestroyEntity(id)
			delete(live, id)
			break
		}
	}
	assert.Equal(t, len(live), em.LivingCount())
}

func TestEntityManagerEach(t *testing.T) {
	em := NewEntityManager(10)
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()
	em.SetSignature(id3, Signature(0).Set(2))
	em.DestroyEntity(id1)
	// 复用的ID按升序遍历
	reused := em.CreateEntity()

	var got []Entity
	var sigs []Signature
	em.Each(func(e Entity, sig Signature) {
		got = append(got, e)
		sigs = append(sigs, sig)
	})

	require.Equal(t, []Entity{reused, id2, id3}, got)
	assert.Equal(t, []Signature{0, 0, Signature(0).Set(2)}, sigs)
}
