package hook

import "github.com/compozy/hookkit/engine/core"

// GetItems returns the payload a hook should operate on: Data for before
// hooks, the page items for paginated after-find results, and Result for
// everything else. The returned value aliases the invocation state, so
// mutations are visible to the hosting framework.
func GetItems(hc *Context) any {
	if hc.Phase == PhaseBefore {
		return hc.Data
	}
	if hc.Operation != OpFind {
		return hc.Result
	}
	switch result := hc.Result.(type) {
	case *Page:
		if result != nil {
			return result.Items
		}
	case map[string]any:
		if items, ok := result["items"]; ok {
			return items
		}
	case core.Output:
		if items, ok := result["items"]; ok {
			return items
		}
	}
	return hc.Result
}

// ReplaceItems writes items back into the slot GetItems reads from. For
// paginated after-find results the envelope is updated in place and its
// total recomputed; a non-slice value is stored as a one-element page.
// ReplaceItems mutates hc and its envelope.
func ReplaceItems(hc *Context, items any) {
	if hc.Phase == PhaseBefore {
		hc.Data = items
		return
	}
	if hc.Operation == OpFind {
		switch result := hc.Result.(type) {
		case *Page:
			if result != nil {
				result.Items, result.Total = pageItems(items)
				return
			}
		case map[string]any:
			if _, ok := result["items"]; ok {
				result["items"], result["total"] = pageItems(items)
				return
			}
		case core.Output:
			if _, ok := result["items"]; ok {
				result["items"], result["total"] = pageItems(items)
				return
			}
		}
	}
	hc.Result = items
}

// pageItems normalizes a replacement payload into page items and total.
func pageItems(items any) ([]any, int) {
	if list, ok := items.([]any); ok {
		return list, len(list)
	}
	return []any{items}, 1
}

// GetItemsCopy returns a deep copy of GetItems for hooks that must not
// alias framework-owned state.
func GetItemsCopy(hc *Context) (any, error) {
	return core.DeepCopy(GetItems(hc))
}
