package common

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/compozy/hookkit/engine/hook"
)

// Validate decodes each map item into a fresh schema value produced by
// target and runs struct validation over it. target must return a
// pointer to a struct carrying `validate` tags; `mapstructure` tags
// control the decode. Items are read only, never rewritten.
func Validate(target func() any) Hook {
	validate := validator.New()
	return func(_ context.Context, hc *hook.Context) error {
		return eachItem(hc, func(item map[string]any) error {
			schema := target()
			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				WeaklyTypedInput: true,
				Result:           schema,
			})
			if err != nil {
				return fmt.Errorf("failed to build item decoder: %w", err)
			}
			if err := decoder.Decode(item); err != nil {
				return fmt.Errorf("failed to decode item: %w", err)
			}
			if err := validate.Struct(schema); err != nil {
				return fmt.Errorf("item failed validation: %w", err)
			}
			return nil
		})
	}
}
