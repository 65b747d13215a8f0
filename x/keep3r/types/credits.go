package types

import (
	"cosmossdk.io/math"
)

// LiquidityCreditsAt returns the spendable liquidity credits of a job at now given its
// stored accountance and the period credits its pledges are worth at now.
//
// Within one reward period of the last reward the stored balance follows the price of the
// pledges; once a full period has elapsed it is replaced by a fresh period worth of credits.
// Credits never accumulate across periods.
func LiquidityCreditsAt(stored JobCredits, periodCredits math.Int, now, rewardPeriod uint64) math.Int {
	if elapsed(stored.RewardedAt, now) >= rewardPeriod {
		return periodCredits
	}
	if periodCredits.IsPositive() && stored.PeriodCredits.IsPositive() {
		return stored.LiquidityCredits.Mul(periodCredits).Quo(stored.PeriodCredits)
	}
	return stored.LiquidityCredits
}

// TotalCreditsAt returns the credits a job could spend at now without a settlement: its
// spendable liquidity credits plus the share of a period minted since the reward reference.
func TotalCreditsAt(stored JobCredits, periodCredits math.Int, now, rewardPeriod uint64) math.Int {
	periodStart := PeriodStart(now, rewardPeriod)

	cooldown := now - periodStart
	if stored.RewardedAt > periodStart {
		cooldown = elapsed(stored.RewardedAt, now)
	}

	return LiquidityCreditsAt(stored, periodCredits, now, rewardPeriod).
		Add(Phase(cooldown, periodCredits, rewardPeriod))
}

// SettleCredits returns the accountance of a job after a settlement at now.
func SettleCredits(stored JobCredits, periodCredits math.Int, now, rewardPeriod uint64) JobCredits {
	total := TotalCreditsAt(stored, periodCredits, now, rewardPeriod)
	return JobCredits{
		PeriodCredits:    periodCredits,
		LiquidityCredits: math.MinInt(total, periodCredits),
		RewardedAt:       now,
		WorkedAt:         stored.WorkedAt,
	}
}

func elapsed(from, now uint64) uint64 {
	if now < from {
		return 0
	}
	return now - from
}
