package processor

import (
	"math"
	"time"

	"dub-server/internal/store"
)

// CalculateEarnings returns what a reward pays for an event, in minor units.
// Flat rewards pay amount per unit. Percentage rewards pay a share of the sale amount.
func CalculateEarnings(reward store.Reward, saleAmount int64, quantity int) int64 {
	if quantity < 1 {
		quantity = 1
	}
	switch reward.Type {
	case store.RewardTypeFlat:
		return reward.Amount * int64(quantity)
	case store.RewardTypePercentage:
		return int64(math.Round(float64(saleAmount) * float64(reward.Amount) / 100))
	}
	return 0
}

// RewardApplies reports whether a reward still pays for a customer acquired at customerCreatedAt.
// Rewards without a duration apply for the customer's lifetime. A zero duration pays the
// first sale only, which priorSales tells apart.
func RewardApplies(reward store.Reward, customerCreatedAt *time.Time, priorSales int, now time.Time) bool {
	if reward.MaxDurationMonths == nil || customerCreatedAt == nil {
		return true
	}
	if *reward.MaxDurationMonths == 0 {
		return priorSales == 0
	}
	return now.Before(customerCreatedAt.AddDate(0, *reward.MaxDurationMonths, 0))
}
