package ecs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	var s Signature
	s = s.Set(0).Set(3).Set(63)

	assert.True(t, s.Has(0))
	assert.True(t, s.Has(63))
	assert.False(t, s.Has(1))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []ComponentID{0, 3, 63}, s.IDs())

	s = s.Unset(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, []ComponentID{0, 63}, s.IDs())
}

func TestSignatureContains(t *testing.T) {
	tests := []struct {
		name string
		sig  Signature
		sub  Signature
		want bool
	}{
		{"empty contains empty", 0, 0, true},
		{"anything contains empty", Signature(0).Set(4), 0, true},
		{"superset", Signature(0).Set(1).Set(2).Set(7), Signature(0).Set(1).Set(2), true},
		{"equal", Signature(0).Set(1).Set(2), Signature(0).Set(1).Set(2), true},
		{"missing one bit", Signature(0).Set(1), Signature(0).Set(1).Set(2), false},
		{"disjoint", Signature(0).Set(5), Signature(0).Set(6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sig.Contains(tt.sub))
		})
	}
}

func TestSignatureString(t *testing.T) {
	s := Signature(0).Set(0).Set(2)
	str := s.String()
	assert.Len(t, str, MaxComponents)
	assert.True(t, strings.HasSuffix(str, "101"))
	assert.Equal(t, 2, strings.Count(str, "1"))
}
