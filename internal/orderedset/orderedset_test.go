package orderedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReturnsWhetherNew(t *testing.T) {
	s := New[string]()
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.Equal(t, 2, s.Len())
}

func TestItemsPreservesInsertionOrder(t *testing.T) {
	s := New[string]()
	s.Add("c")
	s.Add("a")
	s.Add("b")
	s.Add("a") // duplicate, ignored
	assert.Equal(t, []string{"c", "a", "b"}, s.Items())
}

func TestContains(t *testing.T) {
	s := New[int]()
	assert.False(t, s.Contains(1))
	s.Add(1)
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))
}

func TestEmptySet(t *testing.T) {
	s := New[int]()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
}

// identityKeyedByPointer mirrors how the merger package uses Set[*T]: map
// lookups on a pointer type compare addresses, not pointee contents.
func TestIdentityKeyedByPointer(t *testing.T) {
	type thing struct{ Name string }
	a := &thing{Name: "same-name"}
	b := &thing{Name: "same-name"}

	s := New[*thing]()
	assert.True(t, s.Add(a))
	assert.True(t, s.Add(b)) // distinct pointer, even though contents match
	assert.False(t, s.Add(a))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []*thing{a, b}, s.Items())
}
