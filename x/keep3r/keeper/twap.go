package keeper

import (
	"context"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// GetLiquidityPair returns the pool binding and tick cache of an approved liquidity.
func (k Keeper) GetLiquidityPair(ctx context.Context, liquidity string) (types.LiquidityPair, bool, error) {
	var pair types.LiquidityPair
	found, err := k.getJSON(ctx, LiquidityPairKey(liquidity), &pair)
	if err != nil || !found {
		return types.LiquidityPair{}, false, err
	}
	return pair, true, nil
}

func (k Keeper) setLiquidityPair(ctx context.Context, pair types.LiquidityPair) error {
	return k.setJSON(ctx, LiquidityPairKey(pair.Denom), pair)
}

// IsApprovedLiquidity reports whether liquidity may be pledged to jobs.
func (k Keeper) IsApprovedLiquidity(ctx context.Context, liquidity string) bool {
	return k.set(ctx, ApprovedLiquiditySetPrefix).Contains([]byte(liquidity))
}

// GetApprovedLiquidities returns all approved liquidity denoms.
func (k Keeper) GetApprovedLiquidities(ctx context.Context) []string {
	return denoms(k.set(ctx, ApprovedLiquiditySetPrefix).Values())
}

// ObserveLiquidity returns the tick state of an approved liquidity as of the current block,
// querying the pool oracle when the cache is outdated or expired. Nothing is persisted.
// An unapproved liquidity or a failed observation yields an unsuccessful zero observation.
func (k Keeper) ObserveLiquidity(ctx context.Context, liquidity string) (types.Observation, error) {
	pair, found, err := k.GetLiquidityPair(ctx, liquidity)
	if err != nil {
		return types.Observation{}, err
	}
	if !found {
		return types.Observation{Staleness: types.TickExpired}, nil
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Observation{}, err
	}
	return k.observePair(ctx, pair, params.RewardPeriod), nil
}

func (k Keeper) observePair(ctx context.Context, pair types.LiquidityPair, rewardPeriod uint64) types.Observation {
	ts := now(ctx)
	staleness := types.ClassifyTick(pair.Tick.Period, ts, rewardPeriod)
	k.metrics.TickObservations.WithLabelValues(staleness.String()).Inc()
	if staleness == types.TickUpdated {
		return types.RefreshTick(pair.Tick, ts, rewardPeriod, nil, true)
	}

	window := types.ObservationWindow(staleness, ts, rewardPeriod)
	ticks, err := k.poolObserver.Observe(ctx, pair.Pool, window)
	ok := err == nil && len(ticks) == len(window)

	obs := types.RefreshTick(pair.Tick, ts, rewardPeriod, ticks, ok)
	if !obs.Success {
		k.metrics.OracleFailures.WithLabelValues(pair.Pool).Inc()
		k.Logger(ctx).Error("pool observation failed, assuming no price movement",
			"liquidity", pair.Denom,
			"pool", pair.Pool,
			"staleness", staleness.String(),
			"error", err,
		)
	}
	return obs
}

// pricingTick returns the tick to value liquidity of pair with. A failed observation means no
// price movement, so the cached tick keeps its last known value.
func (k Keeper) pricingTick(ctx context.Context, pair types.LiquidityPair, rewardPeriod uint64) types.TickCache {
	obs := k.observePair(ctx, pair, rewardPeriod)
	if !obs.Success {
		return pair.Tick
	}
	return obs.Tick
}

// updateLiquidityTick refreshes the tick cache of liquidity and persists it when the
// observation succeeded. The returned tick is the one to price the liquidity with.
func (k Keeper) updateLiquidityTick(ctx context.Context, pair types.LiquidityPair, rewardPeriod uint64) (types.TickCache, error) {
	obs := k.observePair(ctx, pair, rewardPeriod)
	if !obs.Success {
		return pair.Tick, nil
	}
	if obs.Staleness == types.TickUpdated {
		return obs.Tick, nil
	}

	pair.Tick = obs.Tick
	if err := k.setLiquidityPair(ctx, pair); err != nil {
		return types.TickCache{}, err
	}
	k.Logger(ctx).Debug("tick cache refreshed",
		"liquidity", pair.Denom,
		"staleness", obs.Staleness.String(),
		"current", obs.Tick.Current,
		"difference", obs.Tick.Difference,
		"period", obs.Tick.Period,
	)
	return obs.Tick, nil
}

// observeQuotePool returns the tick cumulative delta of the KP3R/WETH pool over the
// configured quote window, measured in the KP3R direction.
func (k Keeper) observeQuotePool(ctx context.Context, params types.Params) (int64, error) {
	window := []uint32{0, params.QuoteTwapTime}
	ticks, err := k.poolObserver.Observe(ctx, params.Keep3rWethPool.Pool, window)
	if err != nil || len(ticks) != len(window) {
		k.metrics.OracleFailures.WithLabelValues(params.Keep3rWethPool.Pool).Inc()
		return 0, types.ErrOracleUnavailable.Wrapf("pool %s: %v", params.Keep3rWethPool.Pool, err)
	}
	tick := types.TickCache{Difference: ticks[0] - ticks[1]}
	return types.OrientedDifference(tick, params.Keep3rWethPool.KP3RToken0), nil
}
