package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

func TestObserveLiquidityStaleness(t *testing.T) {
	f := newFixture(t)
	period := rewardPeriod(t, f)
	genesis := keepertest.GenesisTime.Unix()
	f.Oracle.SetTick(testPool, 100)
	f.ApproveLiquidity(t, testLiquidity, testPool)

	obs, err := f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.True(t, obs.Success)
	require.Equal(t, types.TickUpdated, obs.Staleness)
	require.Equal(t, types.TickCache{
		Current:    100 * genesis,
		Difference: 100 * int64(period),
		Period:     uint64(genesis),
	}, obs.Tick)

	f.AdvanceSeconds(period + 10)
	obs, err = f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.True(t, obs.Success)
	require.Equal(t, types.TickOutdated, obs.Staleness)
	require.Equal(t, 100*(genesis+int64(period)), obs.Tick.Current)
	require.Equal(t, 100*int64(period), obs.Tick.Difference)

	f.AdvanceSeconds(period)
	obs, err = f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.Equal(t, types.TickExpired, obs.Staleness)
	require.Equal(t, 100*int64(period), obs.Tick.Difference)

	obs, err = f.Keeper.ObserveLiquidity(f.Ctx, "unapproved")
	require.NoError(t, err)
	require.False(t, obs.Success)
}

func TestExpiredCacheDiscardsSkippedPeriods(t *testing.T) {
	f := newFixture(t)
	period := rewardPeriod(t, f)
	genesis := keepertest.GenesisTime
	p := time.Duration(period) * time.Second
	f.Oracle.SetTick(testPool, 100)
	f.ApproveLiquidity(t, testLiquidity, testPool)

	// the price moves twice while nobody observes the pool
	f.Oracle.SetTickFrom(testPool, genesis.Add(p), 300)
	f.Oracle.SetTickFrom(testPool, genesis.Add(2*p), 700)

	f.AdvanceSeconds(3*period + 10)
	obs, err := f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.True(t, obs.Success)
	require.Equal(t, types.TickExpired, obs.Staleness)
	require.Equal(t, 700*int64(period), obs.Tick.Difference)
	require.Equal(t, f.Oracle.TickCumulative(testPool, genesis.Add(3*p)), obs.Tick.Current)
	require.Equal(t, uint64(genesis.Add(3*p).Unix()), obs.Tick.Period)

	// a settlement persists the refresh, a later outdated one measures from it
	owner, job := keepertest.Addr("owner"), keepertest.Addr("job")
	fundJob(t, f, owner, job, kp3rs(100))
	require.NoError(t, f.Keeper.ForceLiquidityCreditsToJob(f.Ctx, f.Authority, job, kp3rs(0)))
	cached, _, err := f.Keeper.GetLiquidityPair(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.Equal(t, obs.Tick, cached.Tick)

	f.Oracle.SetTickFrom(testPool, genesis.Add(3*p+p/2), 1_000)
	f.AdvanceSeconds(period)
	obs, err = f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.Equal(t, types.TickOutdated, obs.Staleness)
	require.Equal(t, 700*int64(period/2)+1_000*int64(period-period/2), obs.Tick.Difference)
}

func TestOracleFailureAssumesNoMovement(t *testing.T) {
	f := newFixture(t)
	owner, job := keepertest.Addr("owner"), keepertest.Addr("job")
	keeperAddr := keepertest.Addr("keeper")
	period := rewardPeriod(t, f)
	f.Oracle.SetTick(testPool, 50_000)
	fundJob(t, f, owner, job, kp3rs(1000))

	priced, err := f.Keeper.LiquidityValue(f.Ctx, testLiquidity, kp3rs(1000))
	require.NoError(t, err)
	require.True(t, priced.LT(kp3rs(100)))
	periodCredits, err := f.Keeper.JobPeriodCredits(f.Ctx, job)
	require.NoError(t, err)
	require.Equal(t, priced, periodCredits)

	f.AdvanceSeconds(period)
	f.Oracle.SetFailing(testPool, true)
	calls := f.Oracle.Calls()

	obs, err := f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.False(t, obs.Success)
	require.Equal(t, types.TickCache{}, obs.Tick)
	require.Greater(t, f.Oracle.Calls(), calls)

	// pledges keep their last known value during the outage
	value, err := f.Keeper.LiquidityValue(f.Ctx, testLiquidity, kp3rs(1000))
	require.NoError(t, err)
	require.Equal(t, priced, value)
	credits, err := f.Keeper.JobPeriodCredits(f.Ctx, job)
	require.NoError(t, err)
	require.Equal(t, periodCredits, credits)
	total, err := f.Keeper.TotalJobCredits(f.Ctx, job)
	require.NoError(t, err)
	require.Equal(t, periodCredits, total)

	// a settlement during the outage leaves the cache untouched
	cached, _, err := f.Keeper.GetLiquidityPair(f.Ctx, testLiquidity)
	require.NoError(t, err)
	err = f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, kp3rs(1000))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
	require.NoError(t, f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, periodCredits))
	after, _, err := f.Keeper.GetLiquidityPair(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.Equal(t, cached, after)

	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
	require.NoError(t, err)
	require.Equal(t, periodCredits, bonds)

	f.Oracle.SetFailing(testPool, false)
	obs, err = f.Keeper.ObserveLiquidity(f.Ctx, testLiquidity)
	require.NoError(t, err)
	require.True(t, obs.Success)
	require.Equal(t, types.TickOutdated, obs.Staleness)
}

func TestQuoteFailsClosed(t *testing.T) {
	f := newFixture(t)

	quote, err := f.Keeper.QuoteETHInKP3R(f.Ctx, kp3rs(1))
	require.NoError(t, err)
	require.Equal(t, kp3rs(1), quote)

	f.Oracle.SetFailing(quotePool, true)
	_, err = f.Keeper.QuoteETHInKP3R(f.Ctx, kp3rs(1))
	require.ErrorIs(t, err, types.ErrOracleUnavailable)

	_, err = f.Keeper.GetPaymentParams(f.Ctx, kp3rs(100))
	require.ErrorIs(t, err, types.ErrOracleUnavailable)
}

func TestQuoteFollowsPoolPrice(t *testing.T) {
	f := newFixture(t)

	// KP3R is token0 and appreciates against WETH, so one WETH buys less KP3R
	f.Oracle.SetTick(quotePool, 1000)
	quote, err := f.Keeper.QuoteETHInKP3R(f.Ctx, kp3rs(1))
	require.NoError(t, err)
	require.True(t, quote.LT(kp3rs(1)))

	f.SetParams(t, func(p *types.Params) { p.Keep3rWethPool.KP3RToken0 = false })
	quote, err = f.Keeper.QuoteETHInKP3R(f.Ctx, kp3rs(1))
	require.NoError(t, err)
	require.True(t, quote.GT(kp3rs(1)))
}

func TestPaymentParams(t *testing.T) {
	f := newFixture(t)

	pp, err := f.Keeper.GetPaymentParams(f.Ctx, kp3rs(100))
	require.NoError(t, err)
	require.Equal(t, uint64(11_500), pp.Boost)
	require.Equal(t, kp3rs(1), pp.OneEthQuote)
	require.Equal(t, types.DefaultWorkExtraGas, pp.ExtraGas)

	boost, err := f.Keeper.RewardBoostFor(f.Ctx, kp3rs(500))
	require.NoError(t, err)
	require.Equal(t, types.DefaultMaxBoost, boost)
}
