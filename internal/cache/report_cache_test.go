package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDeterministic(t *testing.T) {
	k1 := Key("title", "content")
	k2 := Key("title", "content")
	assert.Equal(t, k1, k2)
	assert.Contains(t, k1, keyPrefix)
}

func TestKeySeparatesTitleAndContent(t *testing.T) {
	// "ab" + "c" must not collide with "a" + "bc".
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *ReportCache
	ctx := context.Background()

	assert.Nil(t, c.Get(ctx, "t", "c"))
	c.Set(ctx, "t", "c", nil)
	assert.NoError(t, c.Close())

	disabled := &ReportCache{}
	assert.Nil(t, disabled.Get(ctx, "t", "c"))
	disabled.Set(ctx, "t", "c", nil)
	assert.NoError(t, disabled.Close())
}
