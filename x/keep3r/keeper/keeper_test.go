package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

const (
	testLiquidity = "ulp"
	testPool      = "kp3r-weth-lp"
	quotePool     = "kp3r-weth"
	testToken     = "uusdc"
)

var kp3r = types.DefaultKeep3rDenom

func kp3rs(n int64) math.Int {
	return math.NewIntWithDecimal(n, 18)
}

// newFixture returns a keeper where a reward period of pledged liquidity mints its full
// KP3R value and work is quoted against quotePool.
func newFixture(t *testing.T) *keepertest.Keep3rFixture {
	t.Helper()
	f := keepertest.Keep3rKeeper(t)
	f.SetParams(t, func(p *types.Params) {
		p.InflationPeriod = p.RewardPeriod
		p.Keep3rWethPool = types.PoolBinding{Pool: quotePool, KP3RToken0: true}
	})
	return f
}

func rewardPeriod(t *testing.T, f *keepertest.Keep3rFixture) uint64 {
	t.Helper()
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	return params.RewardPeriod
}

// fundJob registers job and pledges amount of the test liquidity to it.
func fundJob(t *testing.T, f *keepertest.Keep3rFixture, owner, job sdk.AccAddress, amount math.Int) {
	t.Helper()
	if !f.Keeper.IsApprovedLiquidity(f.Ctx, testLiquidity) {
		f.ApproveLiquidity(t, testLiquidity, testPool)
	}
	f.AddJob(t, owner, job)
	f.Fund(t, owner, sdk.NewCoin(testLiquidity, amount))
	require.NoError(t, f.Keeper.AddLiquidityToJob(f.Ctx, owner, job, testLiquidity, amount))
}

// addTokenCredits funds job with amount of the test token and returns the credited amount.
func addTokenCredits(t *testing.T, f *keepertest.Keep3rFixture, job sdk.AccAddress, amount math.Int) math.Int {
	t.Helper()
	sponsor := keepertest.Addr("sponsor")
	f.Fund(t, sponsor, sdk.NewCoin(testToken, amount))
	before, err := f.Keeper.JobTokenCredits(f.Ctx, job, testToken)
	require.NoError(t, err)
	require.NoError(t, f.Keeper.AddTokenCreditsToJob(f.Ctx, sponsor, job, testToken, amount))
	after, err := f.Keeper.JobTokenCredits(f.Ctx, job, testToken)
	require.NoError(t, err)
	return after.Sub(before)
}

func requireInvariants(t *testing.T, f *keepertest.Keep3rFixture) {
	t.Helper()
	msg, broken := keeper.AllInvariants(*f.Keeper)(f.Ctx)
	require.False(t, broken, msg)
}

func findAttribute(ctx sdk.Context, eventType, key string) (string, bool) {
	events := ctx.EventManager().Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != eventType {
			continue
		}
		for _, attr := range events[i].Attributes {
			if attr.Key == key {
				return attr.Value, true
			}
		}
	}
	return "", false
}
