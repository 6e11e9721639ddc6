package entities

import "errors"

// Tier is an access-control level, not a billing construct.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

var tierRank = map[Tier]int{
	TierFree:    0,
	TierPro:     1,
	TierPremium: 2,
}

var ErrUnknownTier = errors.New("unknown subscription tier")

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if _, ok := tierRank[t]; !ok {
		return "", ErrUnknownTier
	}
	return t, nil
}

// AtLeast reports whether t grants access requiring the given minimum tier.
func (t Tier) AtLeast(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}
