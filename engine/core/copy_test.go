package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compozy/hookkit/engine/core"
)

func TestDeepCopy(t *testing.T) {
	t.Run("Should copy an Input preserving its concrete type", func(t *testing.T) {
		src := core.Input{"name": "widget", "meta": map[string]any{"tag": "a"}}
		copied, err := core.DeepCopy(src)
		require.NoError(t, err)
		assert.Equal(t, src, copied)
		copied["meta"].(map[string]any)["tag"] = "b"
		assert.Equal(t, "a", src["meta"].(map[string]any)["tag"])
	})
	t.Run("Should copy an Output preserving its concrete type", func(t *testing.T) {
		src := core.Output{"count": 2}
		copied, err := core.DeepCopy(src)
		require.NoError(t, err)
		assert.Equal(t, src, copied)
	})
	t.Run("Should copy pointer payloads", func(t *testing.T) {
		src := &core.Input{"name": "widget"}
		copied, err := core.DeepCopy(src)
		require.NoError(t, err)
		require.NotNil(t, copied)
		assert.Equal(t, *src, *copied)
		(*copied)["name"] = "other"
		assert.Equal(t, "widget", (*src)["name"])
	})
	t.Run("Should return zero value for nil payloads", func(t *testing.T) {
		var src core.Input
		copied, err := core.DeepCopy(src)
		require.NoError(t, err)
		assert.Nil(t, copied)
	})
	t.Run("Should copy plain slices", func(t *testing.T) {
		src := []any{map[string]any{"a": 1}, "b"}
		copied, err := core.DeepCopy(src)
		require.NoError(t, err)
		assert.Equal(t, src, copied)
		copied[0].(map[string]any)["a"] = 2
		assert.Equal(t, 1, src[0].(map[string]any)["a"])
	})
}
