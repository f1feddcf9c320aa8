package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinThenLeaveRemovesMembership(t *testing.T) {
	registry := NewRegistry()
	c := newTestClient("1")
	registry.Add(c)

	registry.Join(c, "general")
	assert.True(t, registry.Member(c, "general"))

	registry.Leave(c, "general")
	assert.False(t, registry.Member(c, "general"))
	assert.NotContains(t, registry.MembersOf("general"), c)
}

func TestJoinIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	c := newTestClient("1")
	registry.Add(c)

	registry.Join(c, "general")
	registry.Join(c, "general")

	assert.Len(t, registry.MembersOf("general"), 1)
}

func TestLeaveNotJoinedIsNoOp(t *testing.T) {
	registry := NewRegistry()
	c := newTestClient("1")
	registry.Add(c)

	registry.Leave(c, "general")

	assert.False(t, registry.Member(c, "general"))
	assert.Equal(t, 1, registry.Len())
}

func TestRemoveDeletesEntireEntry(t *testing.T) {
	registry := NewRegistry()
	c := newTestClient("1")
	registry.Add(c)
	registry.Join(c, "general")
	registry.Join(c, "random")

	registry.Remove(c)

	assert.Empty(t, registry.MembersOf("general"))
	assert.Empty(t, registry.MembersOf("random"))
	assert.Equal(t, 0, registry.Len())
}

func TestRemoveSafeForNeverAdmittedConnection(t *testing.T) {
	registry := NewRegistry()
	c := newTestClient("1")

	// Must not panic or create state.
	registry.Remove(c)
	assert.Equal(t, 0, registry.Len())
}

func TestJoinWithoutAdmissionIsNoOp(t *testing.T) {
	registry := NewRegistry()
	c := newTestClient("1")

	registry.Join(c, "general")

	assert.False(t, registry.Member(c, "general"))
	assert.Equal(t, 0, registry.Len())
}

func TestMembersOfFiltersClosedSockets(t *testing.T) {
	registry := NewRegistry()
	a := newTestClient("1")
	b := newTestClient("2")
	registry.Add(a)
	registry.Add(b)
	registry.Join(a, "general")
	registry.Join(b, "general")

	b.markClosed()

	members := registry.MembersOf("general")
	assert.Contains(t, members, a)
	assert.NotContains(t, members, b)
}

func TestMembershipIsPerConnection(t *testing.T) {
	registry := NewRegistry()
	a := newTestClient("1")
	b := newTestClient("2")
	registry.Add(a)
	registry.Add(b)

	registry.Join(a, "general")

	assert.True(t, registry.Member(a, "general"))
	assert.False(t, registry.Member(b, "general"))
}
