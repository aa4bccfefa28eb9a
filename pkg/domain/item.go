package domain

import (
	"strings"
)

// Item is a catalog entry: a known item name and its usual tier.
type Item struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

// NewItem trims the name and lower-cases the tier.
func NewItem(name, tier string) Item {
	return Item{
		Name: strings.TrimSpace(name),
		Tier: strings.ToLower(strings.TrimSpace(tier)),
	}
}
