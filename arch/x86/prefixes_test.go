package x86

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestConsumeLegacyPrefix(t *testing.T) {
	var p Prefixes

	assert.True(t, p.ConsumeLegacyPrefix(0x66))
	assert.True(t, p.OperandSize)

	assert.True(t, p.ConsumeLegacyPrefix(0x2e))
	assert.True(t, p.ConsumeLegacyPrefix(0x65))
	assert.Equal(t, GS, p.Segment) // last segment override wins

	assert.True(t, p.ConsumeLegacyPrefix(0xf3))
	assert.True(t, p.ConsumeLegacyPrefix(0xf2))
	assert.True(t, p.RepNZ) // f2 and f3 displace each other
	assert.False(t, p.Rep)

	assert.False(t, p.ConsumeLegacyPrefix(0x90))
	assert.False(t, p.ConsumeLegacyPrefix(0x48))
}

func TestRexPrefixSet(t *testing.T) {
	var r RexPrefix

	r.Set(0x48)
	assert.True(t, r.Present)
	assert.True(t, r.W)
	assert.False(t, r.R)

	r.Set(0x45)
	assert.False(t, r.W)
	assert.True(t, r.R)
	assert.True(t, r.B)
	assert.False(t, r.X)
}
