package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "positive length", n: 10, want: 10},
		{name: "zero length", n: 0, want: 0},
		{name: "negative length clamps to zero", n: -5, want: 0},
		{name: "exact word boundary", n: 64, want: 64},
		{name: "one past word boundary", n: 65, want: 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.n)
			assert.Equal(t, tt.want, b.Len())
			assert.True(t, b.None())
		})
	}
}

func TestSetGetClear(t *testing.T) {
	b := New(70)
	assert.False(t, b.Get(0))
	assert.False(t, b.Get(63))
	assert.False(t, b.Get(64))
	assert.False(t, b.Get(69))

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(69)
	assert.True(t, b.Get(0))
	assert.True(t, b.Get(63))
	assert.True(t, b.Get(64))
	assert.True(t, b.Get(69))
	assert.Equal(t, 4, b.Cardinality())

	b.Clear(63)
	assert.False(t, b.Get(63))
	assert.Equal(t, 3, b.Cardinality())
}

func TestSetOutOfRangePanics(t *testing.T) {
	b := New(5)
	assert.Panics(t, func() { b.Set(5) })
	assert.Panics(t, func() { b.Set(-1) })
	assert.Panics(t, func() { b.Get(5) })
	assert.Panics(t, func() { b.Clear(5) })
}

func TestAllAndNone(t *testing.T) {
	b := New(3)
	assert.True(t, b.None())
	assert.False(t, b.All())

	b.Set(0)
	b.Set(1)
	assert.False(t, b.None())
	assert.False(t, b.All())

	b.Set(2)
	assert.True(t, b.All())
	assert.False(t, b.None())
}

func TestAllOnEmptySetIsVacuouslyTrue(t *testing.T) {
	b := New(0)
	assert.True(t, b.All())
	assert.True(t, b.None())
}

func TestIndexes(t *testing.T) {
	b := New(10)
	b.Set(2)
	b.Set(5)
	b.Set(9)
	assert.Equal(t, []int{2, 5, 9}, b.Indexes())
}

func TestIndexesEmpty(t *testing.T) {
	b := New(10)
	assert.Empty(t, b.Indexes())
}

func TestCardinalityAcrossMultipleWords(t *testing.T) {
	b := New(200)
	for i := 0; i < 200; i += 3 {
		b.Set(i)
	}
	want := 0
	for i := 0; i < 200; i += 3 {
		want++
	}
	assert.Equal(t, want, b.Cardinality())
	assert.Equal(t, want, len(b.Indexes()))
}
