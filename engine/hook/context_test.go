package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	t.Run("Should build a before invocation", func(t *testing.T) {
		hc := NewBefore("messages", OpCreate, map[string]any{"text": "hi"})
		assert.Equal(t, "messages", hc.Service)
		assert.Equal(t, PhaseBefore, hc.Phase)
		assert.Equal(t, OpCreate, hc.Operation)
		assert.Nil(t, hc.Result)
	})
	t.Run("Should build an after invocation", func(t *testing.T) {
		hc := NewAfter("messages", OpFind, &Page{})
		assert.Equal(t, PhaseAfter, hc.Phase)
		assert.Nil(t, hc.Data)
	})
}

func TestEnumStrings(t *testing.T) {
	t.Run("Should render phases and operations as strings", func(t *testing.T) {
		assert.Equal(t, "before", PhaseBefore.String())
		assert.Equal(t, "after", PhaseAfter.String())
		assert.Equal(t, "find", OpFind.String())
		assert.Equal(t, "remove", OpRemove.String())
	})
}
