package types

import (
	"cosmossdk.io/math"
)

// tickBase is the price ratio between two adjacent ticks.
var tickBase = math.LegacyNewDecWithPrec(10001, 4)

// AverageTick converts a tick cumulative delta over interval seconds into an average tick,
// truncating toward zero and clamping to the valid tick range.
func AverageTick(tickDifference int64, interval uint64) int64 {
	if interval == 0 {
		return 0
	}
	avg := tickDifference / int64(interval)
	if avg > MaxTick {
		return MaxTick
	}
	if avg < MinTick {
		return MinTick
	}
	return avg
}

// PriceAtTick returns 1.0001^tick in 18 decimal fixed point.
func PriceAtTick(tick int64) math.LegacyDec {
	if tick == 0 {
		return math.LegacyOneDec()
	}
	abs := tick
	if abs < 0 {
		abs = -abs
	}
	ratio := tickBase.Power(uint64(abs))
	if tick < 0 {
		return math.LegacyOneDec().Quo(ratio)
	}
	return ratio
}

// KP3RsAtTick returns the KP3R value of liquidityAmount given the tick cumulative delta
// observed over timeInterval seconds: liquidityAmount / sqrt(1.0001^averageTick).
func KP3RsAtTick(liquidityAmount math.Int, tickDifference int64, timeInterval uint64) math.Int {
	if liquidityAmount.IsNil() || liquidityAmount.IsZero() {
		return math.ZeroInt()
	}
	tick := AverageTick(tickDifference, timeInterval)
	if tick == 0 {
		return liquidityAmount
	}

	abs := tick
	if abs < 0 {
		abs = -abs
	}
	sqrtRatio, err := tickBase.Power(uint64(abs)).ApproxSqrt()
	if err != nil || sqrtRatio.IsZero() {
		return math.ZeroInt()
	}

	amount := liquidityAmount.ToLegacyDec()
	if tick > 0 {
		return amount.Quo(sqrtRatio).TruncateInt()
	}
	return amount.Mul(sqrtRatio).TruncateInt()
}

// QuoteAtTick returns baseAmount * 1.0001^tick truncated to an integer.
func QuoteAtTick(baseAmount math.Int, tick int64) math.Int {
	if baseAmount.IsNil() || baseAmount.IsZero() {
		return math.ZeroInt()
	}
	if tick > MaxTick {
		tick = MaxTick
	}
	if tick < MinTick {
		tick = MinTick
	}
	return baseAmount.ToLegacyDec().Mul(PriceAtTick(tick)).TruncateInt()
}

// GetReward converts a full liquidity value into the credits minted per reward period.
func GetReward(baseAmount math.Int, rewardPeriod, inflationPeriod uint64) math.Int {
	if inflationPeriod == 0 {
		return math.ZeroInt()
	}
	return baseAmount.Mul(math.NewIntFromUint64(rewardPeriod)).Quo(math.NewIntFromUint64(inflationPeriod))
}

// Phase returns the share of multiplier accrued after timePassed seconds of a reward period.
func Phase(timePassed uint64, multiplier math.Int, rewardPeriod uint64) math.Int {
	if timePassed >= rewardPeriod {
		return multiplier
	}
	return multiplier.Mul(math.NewIntFromUint64(timePassed)).Quo(math.NewIntFromUint64(rewardPeriod))
}

// RewardBoost scales linearly from minBoost at zero bonds to maxBoost at targetBond and above.
func RewardBoost(bonds math.Int, minBoost, maxBoost uint64, targetBond math.Int) uint64 {
	if targetBond.IsNil() || !targetBond.IsPositive() {
		return maxBoost
	}
	if bonds.IsNil() || bonds.IsNegative() {
		bonds = math.ZeroInt()
	}
	capped := math.MinInt(bonds, targetBond)
	spread := math.NewIntFromUint64(maxBoost - minBoost)
	boost := minBoost + spread.Mul(capped).Quo(targetBond).Uint64()
	if boost < minBoost {
		return minBoost
	}
	return boost
}

// WorkPayment prices gasUsed at baseFee with boost (basis points) and converts the result to
// KP3R through oneEthQuote, the KP3R value of 1e18 native units.
func WorkPayment(gasUsed uint64, baseFee math.Int, boost uint64, oneEthQuote math.Int) math.Int {
	denominator := math.NewInt(BoostBase).Mul(math.NewIntWithDecimal(1, 18))
	return math.NewIntFromUint64(gasUsed).
		Mul(baseFee).
		Mul(math.NewIntFromUint64(boost)).
		Mul(oneEthQuote).
		Quo(denominator)
}
