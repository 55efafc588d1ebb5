package main

import (
	"fmt"

	"github.com/mfeld/parity-pulse/internal/classifier"
	"github.com/mfeld/parity-pulse/internal/common"
)

// validateBasketItems checks a raw item list before classification:
// 1 to MaxItems entries, none blank.
func validateBasketItems(items []string) error {
	if len(items) == 0 {
		return common.NewUserError("provide at least one basket item", common.ErrNoItems)
	}
	if len(items) > classifier.MaxItems {
		return common.NewUserError(fmt.Sprintf("at most %d basket items are supported", classifier.MaxItems), common.ErrTooManyItems)
	}
	for _, item := range items {
		if item == "" {
			return common.NewUserError("basket items must not be empty", common.ErrEmptyItem)
		}
	}
	return nil
}
