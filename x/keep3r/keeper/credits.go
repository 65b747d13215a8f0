package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// liquidityValue prices amount of an approved liquidity in KP3R at tick.
func liquidityValue(pair types.LiquidityPair, tick types.TickCache, amount math.Int, rewardPeriod uint64) math.Int {
	return types.KP3RsAtTick(amount, types.OrientedDifference(tick, pair.KP3RToken0), rewardPeriod)
}

// LiquidityValue returns the KP3R value of amount of liquidity at the current price, zero for
// unapproved liquidities.
func (k Keeper) LiquidityValue(ctx context.Context, liquidity string, amount math.Int) (math.Int, error) {
	pair, found, err := k.GetLiquidityPair(ctx, liquidity)
	if err != nil || !found {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	tick := k.pricingTick(ctx, pair, params.RewardPeriod)
	return liquidityValue(pair, tick, amount, params.RewardPeriod), nil
}

// QuoteLiquidity returns the credits a reward period of amount of liquidity mints at the
// current price. Unapproved liquidities quote zero.
func (k Keeper) QuoteLiquidity(ctx context.Context, liquidity string, amount math.Int) (math.Int, error) {
	value, err := k.LiquidityValue(ctx, liquidity, amount)
	if err != nil {
		return math.ZeroInt(), err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return types.GetReward(value, params.RewardPeriod, params.InflationPeriod), nil
}

// jobPeriodCredits sums the period credits of every liquidity pledged to job. With persist
// set, refreshed tick caches are written back.
func (k Keeper) jobPeriodCredits(ctx context.Context, job sdk.AccAddress, params types.Params, persist bool) (math.Int, error) {
	total := math.ZeroInt()
	for _, liquidity := range k.GetJobLiquidities(ctx, job) {
		pair, found, err := k.GetLiquidityPair(ctx, liquidity)
		if err != nil {
			return math.ZeroInt(), err
		}
		if !found {
			continue
		}
		amount, err := k.LiquidityAmount(ctx, job, liquidity)
		if err != nil {
			return math.ZeroInt(), err
		}

		var tick types.TickCache
		if persist {
			if tick, err = k.updateLiquidityTick(ctx, pair, params.RewardPeriod); err != nil {
				return math.ZeroInt(), err
			}
		} else {
			tick = k.pricingTick(ctx, pair, params.RewardPeriod)
		}

		value := liquidityValue(pair, tick, amount, params.RewardPeriod)
		total = total.Add(types.GetReward(value, params.RewardPeriod, params.InflationPeriod))
	}
	return total, nil
}

// JobPeriodCredits returns the credits a full reward period of job's pledges mints at the
// current price.
func (k Keeper) JobPeriodCredits(ctx context.Context, job sdk.AccAddress) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return k.jobPeriodCredits(ctx, job, params, false)
}

// JobLiquidityCredits returns the liquidity credits job can spend right now.
func (k Keeper) JobLiquidityCredits(ctx context.Context, job sdk.AccAddress) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	stored, err := k.GetJobCredits(ctx, job)
	if err != nil {
		return math.ZeroInt(), err
	}
	periodCredits, err := k.jobPeriodCredits(ctx, job, params, false)
	if err != nil {
		return math.ZeroInt(), err
	}
	return types.LiquidityCreditsAt(stored, periodCredits, now(ctx), params.RewardPeriod), nil
}

// TotalJobCredits returns the liquidity credits job can spend plus those minted since its
// last reward.
func (k Keeper) TotalJobCredits(ctx context.Context, job sdk.AccAddress) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	stored, err := k.GetJobCredits(ctx, job)
	if err != nil {
		return math.ZeroInt(), err
	}
	periodCredits, err := k.jobPeriodCredits(ctx, job, params, false)
	if err != nil {
		return math.ZeroInt(), err
	}
	return types.TotalCreditsAt(stored, periodCredits, now(ctx), params.RewardPeriod), nil
}

// settleJobAccountance mints the credits job earned since its last reward, refreshes its
// period credits to current prices and moves its reward reference to now.
func (k Keeper) settleJobAccountance(ctx context.Context, job sdk.AccAddress, params types.Params) (types.JobCredits, error) {
	stored, err := k.GetJobCredits(ctx, job)
	if err != nil {
		return types.JobCredits{}, err
	}
	periodCredits, err := k.jobPeriodCredits(ctx, job, params, true)
	if err != nil {
		return types.JobCredits{}, err
	}

	settled := types.SettleCredits(stored, periodCredits, now(ctx), params.RewardPeriod)
	if err := k.SetJobCredits(ctx, job, settled); err != nil {
		return types.JobCredits{}, err
	}

	k.metrics.Settlements.Inc()
	k.Logger(ctx).Debug("job accountance settled",
		"job", job.String(),
		"period_credits", settled.PeriodCredits.String(),
		"liquidity_credits", settled.LiquidityCredits.String(),
	)
	emitLiquidityCreditsReward(ctx, job, settled)
	return settled, nil
}

// ForceLiquidityCreditsToJob grants amount of liquidity credits to job outside of the
// pledge mechanism. The job is settled first so no pending credits are lost.
func (k Keeper) ForceLiquidityCreditsToJob(ctx context.Context, caller, job sdk.AccAddress, amount math.Int) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.IsJob(ctx, job) {
			return types.ErrJobUnavailable.Wrapf("job %s", job)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		credits, err := k.settleJobAccountance(ctx, job, params)
		if err != nil {
			return err
		}
		credits.LiquidityCredits = credits.LiquidityCredits.Add(amount)
		if err := k.SetJobCredits(ctx, job, credits); err != nil {
			return err
		}

		k.metrics.ForcedCredit.Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityCreditsForced,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyRewardedAt, uintString(credits.RewardedAt)),
				sdk.NewAttribute(types.AttributeKeyLiquidityCredits, credits.LiquidityCredits.String()),
			),
		)
		return nil
	})
}

func emitLiquidityCreditsReward(ctx context.Context, job sdk.AccAddress, credits types.JobCredits) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityCreditsReward,
			sdk.NewAttribute(types.AttributeKeyJob, job.String()),
			sdk.NewAttribute(types.AttributeKeyRewardedAt, uintString(credits.RewardedAt)),
			sdk.NewAttribute(types.AttributeKeyLiquidityCredits, credits.LiquidityCredits.String()),
			sdk.NewAttribute(types.AttributeKeyPeriodCredits, credits.PeriodCredits.String()),
		),
	)
}

func uintString(v uint64) string {
	return strconv.FormatUint(v, 10)
}
