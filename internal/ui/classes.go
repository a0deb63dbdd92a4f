package ui

import (
	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
)

// Classes merges Tailwind class lists, with later classes winning conflicts.
// Lets components accept style overrides without duplicate utilities.
func Classes(classes ...string) string {
	return twmerge.Merge(classes...)
}
