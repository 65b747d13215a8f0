package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAverageTick(t *testing.T) {
	require.Equal(t, int64(0), AverageTick(100, 0))
	require.Equal(t, int64(100), AverageTick(1000, 10))
	require.Equal(t, int64(-1), AverageTick(-15, 10), "truncates toward zero")
	require.Equal(t, int64(MaxTick), AverageTick(int64(MaxTick)*4, 2))
	require.Equal(t, int64(MinTick), AverageTick(int64(MinTick)*4, 2))
}

func TestKP3RsAtTick(t *testing.T) {
	amount := math.NewIntWithDecimal(10, 18)

	require.True(t, KP3RsAtTick(math.ZeroInt(), 1000, 10).IsZero())
	require.Equal(t, amount, KP3RsAtTick(amount, 0, 600))
	require.Equal(t, amount, KP3RsAtTick(amount, 5, 600), "sub-tick averages round to zero")

	higher := KP3RsAtTick(amount, 100*600, 600)
	lower := KP3RsAtTick(amount, -100*600, 600)
	require.True(t, higher.LT(amount))
	require.True(t, lower.GT(amount))

	// sqrt(1.0001^100) ~ 1.005012
	require.True(t, higher.GT(math.NewIntWithDecimal(995, 16)))
	require.True(t, lower.LT(math.NewIntWithDecimal(1006, 16)))
}

func TestQuoteAtTick(t *testing.T) {
	one := math.NewIntWithDecimal(1, 18)

	require.Equal(t, one, QuoteAtTick(one, 0))
	require.Equal(t, math.NewInt(10001), QuoteAtTick(math.NewInt(10000), 1))
	require.True(t, QuoteAtTick(math.ZeroInt(), 50).IsZero())
	require.True(t, QuoteAtTick(one, -10).LT(one))
	require.True(t, QuoteAtTick(one, 10).GT(one))
}

func TestGetReward(t *testing.T) {
	require.Equal(t, math.NewInt(50), GetReward(math.NewInt(340), 5, 34))
	require.Equal(t, math.NewInt(340), GetReward(math.NewInt(340), 34, 34))
	require.True(t, GetReward(math.NewInt(340), 5, 0).IsZero())
}

func TestPhase(t *testing.T) {
	multiplier := math.NewInt(1000)
	require.True(t, Phase(0, multiplier, 100).IsZero())
	require.Equal(t, math.NewInt(500), Phase(50, multiplier, 100))
	require.Equal(t, multiplier, Phase(100, multiplier, 100))
	require.Equal(t, multiplier, Phase(250, multiplier, 100))
}

func TestRewardBoost(t *testing.T) {
	target := math.NewIntWithDecimal(200, 18)

	require.Equal(t, uint64(11_000), RewardBoost(math.ZeroInt(), 11_000, 12_000, target))
	require.Equal(t, uint64(11_500), RewardBoost(math.NewIntWithDecimal(100, 18), 11_000, 12_000, target))
	require.Equal(t, uint64(12_000), RewardBoost(target, 11_000, 12_000, target))
	require.Equal(t, uint64(12_000), RewardBoost(target.MulRaw(3), 11_000, 12_000, target))
	require.Equal(t, uint64(12_000), RewardBoost(math.NewInt(1), 11_000, 12_000, math.ZeroInt()))
}

func TestRewardBoostBoundedAndMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minBoost := rapid.Uint64Range(BoostBase, 20_000).Draw(t, "minBoost")
		maxBoost := rapid.Uint64Range(minBoost, 30_000).Draw(t, "maxBoost")
		target := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(t, "target"))
		a := rapid.Int64Range(0, 2_000_000_000).Draw(t, "a")
		b := rapid.Int64Range(a, 2_000_000_000).Draw(t, "b")

		low := RewardBoost(math.NewInt(a), minBoost, maxBoost, target)
		high := RewardBoost(math.NewInt(b), minBoost, maxBoost, target)

		require.GreaterOrEqual(t, low, minBoost)
		require.LessOrEqual(t, high, maxBoost)
		require.LessOrEqual(t, low, high)
	})
}

func TestWorkPayment(t *testing.T) {
	baseFee := math.NewInt(1_000_000_000)
	oneEth := math.NewIntWithDecimal(1, 18)

	// 100k gas at 1 gwei, boosted by 1.2 and quoted one to one
	require.Equal(t, math.NewInt(120_000_000_000_000), WorkPayment(100_000, baseFee, 12_000, oneEth))

	// a KP3R twice as expensive halves the payment
	require.Equal(t, math.NewInt(60_000_000_000_000), WorkPayment(100_000, baseFee, 12_000, oneEth.QuoRaw(2)))

	require.True(t, WorkPayment(0, baseFee, 12_000, oneEth).IsZero())
}
