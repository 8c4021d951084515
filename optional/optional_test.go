package optional_test

import (
	"strconv"
	"testing"

	"github.com/amp-labs/amp-ranges/optional"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := optional.Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := optional.None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, optional.Some(42).GetOrPanic())
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			optional.None[int]().GetOrPanic()
		})
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", optional.Some("hello").GetOrElse("default"))
	assert.Equal(t, "default", optional.None[string]().GetOrElse("default"))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, optional.Some(1).Equals(optional.Some(1), eq))
	assert.False(t, optional.Some(1).Equals(optional.Some(2), eq))
	assert.False(t, optional.Some(1).Equals(optional.None[int](), eq))
	assert.True(t, optional.None[int]().Equals(optional.None[int](), eq))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", optional.Some(42).String())
	assert.Equal(t, "None", optional.None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	mapped := optional.Map(optional.Some(42), strconv.Itoa)

	val, ok := mapped.Get()
	assert.True(t, ok)
	assert.Equal(t, "42", val)

	empty := optional.Map(optional.None[int](), strconv.Itoa)
	assert.True(t, empty.Empty())
}
