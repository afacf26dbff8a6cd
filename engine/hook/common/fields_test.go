package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compozy/hookkit/engine/hook"
)

func TestDiscard(t *testing.T) {
	ctx := context.Background()

	t.Run("Should remove listed fields from a single item", func(t *testing.T) {
		data := map[string]any{"name": "x", "password": "secret", "meta": map[string]any{"token": "t", "kept": 1}}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		err := Discard("password", "meta.token")(ctx, hc)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "x", "meta": map[string]any{"kept": 1}}, data)
	})
	t.Run("Should remove fields from every found item", func(t *testing.T) {
		page := &hook.Page{Items: []any{
			map[string]any{"name": "a", "password": "p1"},
			map[string]any{"name": "b", "password": "p2"},
		}, Total: 2}
		hc := hook.NewAfter("users", hook.OpFind, page)
		err := Discard("password")(ctx, hc)
		require.NoError(t, err)
		for _, it := range page.Items {
			assert.NotContains(t, it.(map[string]any), "password")
		}
	})
	t.Run("Should ignore absent fields", func(t *testing.T) {
		data := map[string]any{"name": "x"}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		require.NoError(t, Discard("missing.path")(ctx, hc))
		assert.Equal(t, map[string]any{"name": "x"}, data)
	})
}

func TestKeep(t *testing.T) {
	ctx := context.Background()

	t.Run("Should retain only the listed paths", func(t *testing.T) {
		data := map[string]any{
			"name":     "x",
			"password": "secret",
			"address":  map[string]any{"city": "lisbon", "zip": "1000"},
		}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		err := Keep("name", "address.city")(ctx, hc)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name":    "x",
			"address": map[string]any{"city": "lisbon"},
		}, data)
	})
	t.Run("Should mutate the item in place", func(t *testing.T) {
		data := map[string]any{"name": "x", "extra": true}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		require.NoError(t, Keep("name")(ctx, hc))
		// same map the framework handed in
		assert.Equal(t, map[string]any{"name": "x"}, hc.Data)
		assert.Equal(t, map[string]any{"name": "x"}, data)
	})
	t.Run("Should skip absent paths", func(t *testing.T) {
		data := map[string]any{"name": "x"}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		require.NoError(t, Keep("name", "missing")(ctx, hc))
		assert.Equal(t, map[string]any{"name": "x"}, data)
	})
}

func TestLowerCase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fold string fields to lower case", func(t *testing.T) {
		data := map[string]any{"email": "User@Example.COM"}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		require.NoError(t, LowerCase("email")(ctx, hc))
		assert.Equal(t, "user@example.com", data["email"])
	})
	t.Run("Should skip absent and nil fields", func(t *testing.T) {
		data := map[string]any{"email": nil}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		assert.NoError(t, LowerCase("email", "missing")(ctx, hc))
	})
	t.Run("Should fail on non-string values", func(t *testing.T) {
		data := map[string]any{"email": 42}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		err := LowerCase("email")(ctx, hc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})
}

func TestRequired(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass when all fields are present", func(t *testing.T) {
		data := map[string]any{"name": "x", "address": map[string]any{"city": "lisbon"}}
		hc := hook.NewBefore("users", hook.OpCreate, data)
		assert.NoError(t, Required("name", "address.city")(ctx, hc))
	})
	t.Run("Should fail when a field is missing", func(t *testing.T) {
		hc := hook.NewBefore("users", hook.OpCreate, map[string]any{"name": "x"})
		err := Required("age")(ctx, hc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "age")
	})
	t.Run("Should fail when a field is nil", func(t *testing.T) {
		hc := hook.NewBefore("users", hook.OpCreate, map[string]any{"name": nil})
		assert.Error(t, Required("name")(ctx, hc))
	})
	t.Run("Should reject after-phase mounts", func(t *testing.T) {
		hc := hook.NewAfter("users", hook.OpCreate, map[string]any{"name": "x"})
		var phaseErr *hook.PhaseMismatchError
		assert.ErrorAs(t, Required("name")(ctx, hc), &phaseErr)
	})
	t.Run("Should reject read operations", func(t *testing.T) {
		hc := hook.NewBefore("users", hook.OpFind, nil)
		var opErr *hook.OperationMismatchError
		assert.ErrorAs(t, Required("name")(ctx, hc), &opErr)
	})
}
