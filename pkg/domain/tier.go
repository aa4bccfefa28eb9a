package domain

import (
	"regexp"
	"strings"
)

// EmptyTier is the normalized token of a record with no tier.
const EmptyTier = "empty"

var whitespace = regexp.MustCompile(`\s+`)

var tierNames = map[string]string{
	"common":    "Common",
	"uncommon":  "Uncommon",
	"rare":      "Rare",
	"ultra":     "Ultra Rare",
	"legendary": "Legendary",
	"mythic":    "Mythic",
	"t1":        "T1",
	"t2":        "T2",
	"t3":        "T3",
	"t4":        "T4",
}

// NormalizeTier lower-cases a tier and collapses whitespace runs to hyphens.
// Nothing else is rewritten; "" becomes EmptyTier.
func NormalizeTier(tier string) string {
	if tier == "" {
		return EmptyTier
	}
	return whitespace.ReplaceAllString(strings.ToLower(tier), "-")
}

// HumanizeTier returns the display name of a well known tier, or the tier
// unchanged.
func HumanizeTier(tier string) string {
	if tier == "" {
		return ""
	}
	if name, ok := tierNames[whitespace.ReplaceAllString(strings.ToLower(tier), "-")]; ok {
		return name
	}
	return tier
}

// Key is the aggregation key of an (item, tier) pair. Records sharing a key
// are the same inventory line.
func Key(item, tier string) string {
	return strings.ToLower(strings.TrimSpace(item)) + "||" + NormalizeTier(strings.TrimSpace(tier))
}
