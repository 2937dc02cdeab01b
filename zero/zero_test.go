package zero_test

import (
	"testing"

	"github.com/IvanoBilenchi/uvec/zero"
	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Equal(t, "", zero.Value[string]())
	assert.Nil(t, zero.Value[*int]())
	assert.Equal(t, struct{ A, B int }{}, zero.Value[struct{ A, B int }]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, zero.IsZero(0))
	assert.False(t, zero.IsZero(42))
	assert.True(t, zero.IsZero(""))
	assert.False(t, zero.IsZero("hello"))
	assert.True(t, zero.IsZero[*int](nil))
	assert.True(t, zero.IsZero([]int(nil)))
	assert.False(t, zero.IsZero([]int{}))
}
