package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"invalid denom", func(p *Params) { p.Keep3rDenom = "1" }},
		{"zero reward period", func(p *Params) { p.RewardPeriod = 0 }},
		{"reward period overflowing oracle offsets", func(p *Params) { p.RewardPeriod = MaxRewardPeriod + 1 }},
		{"zero inflation period", func(p *Params) { p.InflationPeriod = 0 }},
		{"nil liquidity minimum", func(p *Params) { p.LiquidityMinimum = math.Int{} }},
		{"negative liquidity minimum", func(p *Params) { p.LiquidityMinimum = math.NewInt(-1) }},
		{"fee above base", func(p *Params) { p.Fee = BoostBase + 1 }},
		{"min boost below base", func(p *Params) { p.MinBoost = BoostBase - 1 }},
		{"max boost below min", func(p *Params) { p.MaxBoost = p.MinBoost - 1 }},
		{"negative target bond", func(p *Params) { p.TargetBond = math.NewInt(-5) }},
		{"zero quote window", func(p *Params) { p.QuoteTwapTime = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestMaxRewardPeriodWindow(t *testing.T) {
	params := DefaultParams()
	params.RewardPeriod = MaxRewardPeriod
	require.NoError(t, params.Validate())

	now := 3*MaxRewardPeriod - 1
	window := ObservationWindow(TickExpired, now, MaxRewardPeriod)
	require.Equal(t, []uint32{uint32(MaxRewardPeriod - 1), uint32(2*MaxRewardPeriod - 1)}, window)
}

func TestParamsString(t *testing.T) {
	s := DefaultParams().String()
	require.Contains(t, s, "keep3r_denom=kp3r")
	require.Contains(t, s, "reward_period=432000")
	require.Contains(t, s, "target_bond=200000000000000000000")
}
