package model

// Tier is the volume-discount tier tracked by the account.
type Tier string

const (
	TierNone   Tier = "NONE"
	TierBronze Tier = "BRONZE"
	TierGold   Tier = "GOLD"
)

// Percent returns the discount percentage the tier carries.
func (t Tier) Percent() float64 {
	switch t {
	case TierGold:
		return 40
	case TierBronze:
		return 20
	default:
		return 0
	}
}

// Label returns a human-readable tier name for reports.
func (t Tier) Label() string {
	switch t {
	case TierGold:
		return "Gold"
	case TierBronze:
		return "Bronze"
	default:
		return "None"
	}
}
