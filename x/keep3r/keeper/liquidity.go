package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// ApproveLiquidity allows liquidity to be pledged to jobs. The pool and token order are read
// from the liquidity position and the tick cache is seeded with a first observation.
func (k Keeper) ApproveLiquidity(ctx context.Context, caller sdk.AccAddress, liquidity string) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(liquidity); err != nil {
		return types.ErrInvalidDenom.Wrapf("liquidity %s: %v", liquidity, err)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.set(ctx, ApprovedLiquiditySetPrefix).Add([]byte(liquidity)) {
			return types.ErrLiquidityPairApproved.Wrapf("liquidity %s", liquidity)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		position, err := k.positionKeeper.GetPosition(ctx, liquidity)
		if err != nil {
			return types.ErrLiquidityPosition.Wrapf("liquidity %s: %v", liquidity, err)
		}
		if position.Token0 != params.Keep3rDenom && position.Token1 != params.Keep3rDenom {
			return types.ErrLiquidityPosition.Wrapf("pool %s does not hold %s", position.Pool, params.Keep3rDenom)
		}

		pair := types.LiquidityPair{
			Denom:      liquidity,
			Pool:       position.Pool,
			KP3RToken0: position.Token0 == params.Keep3rDenom,
		}
		if obs := k.observePair(ctx, pair, params.RewardPeriod); obs.Success {
			pair.Tick = obs.Tick
		}
		if err := k.setLiquidityPair(ctx, pair); err != nil {
			return err
		}

		k.Logger(ctx).Info("liquidity approved", "liquidity", liquidity, "pool", pair.Pool)
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityApproval,
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity),
				sdk.NewAttribute(types.AttributeKeyPool, pair.Pool),
			),
		)
		return nil
	})
}

// RevokeLiquidity stops liquidity from minting credits. Existing pledges stay withdrawable.
func (k Keeper) RevokeLiquidity(ctx context.Context, caller sdk.AccAddress, liquidity string) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.set(ctx, ApprovedLiquiditySetPrefix).Remove([]byte(liquidity)) {
			return types.ErrLiquidityPairUnexistent.Wrapf("liquidity %s", liquidity)
		}
		k.getStore(ctx).Delete(LiquidityPairKey(liquidity))

		k.Logger(ctx).Info("liquidity revoked", "liquidity", liquidity)
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityRevocation,
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity),
			),
		)
		return nil
	})
}

// AddLiquidityToJob pledges amount of liquidity from sender to job. The resulting pledge must
// be worth at least the liquidity minimum.
func (k Keeper) AddLiquidityToJob(ctx context.Context, sender, job sdk.AccAddress, liquidity string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		pair, found, err := k.GetLiquidityPair(ctx, liquidity)
		if err != nil {
			return err
		}
		if !found || !k.IsApprovedLiquidity(ctx, liquidity) {
			return types.ErrLiquidityPairUnapproved.Wrapf("liquidity %s", liquidity)
		}
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

		// settlement refreshed the cache, re-read it so pricing uses the same tick
		if pair, _, err = k.GetLiquidityPair(ctx, liquidity); err != nil {
			return err
		}
		tick := k.pricingTick(ctx, pair, params.RewardPeriod)

		current, err := k.LiquidityAmount(ctx, job, liquidity)
		if err != nil {
			return err
		}
		pledged := current.Add(amount)
		if liquidityValue(pair, tick, pledged, params.RewardPeriod).LT(params.LiquidityMinimum) {
			return types.ErrJobLiquidityLessThanMin.Wrapf("pledge of %s%s", pledged, liquidity)
		}

		if err := k.pullCoins(ctx, sender, liquidity, amount); err != nil {
			return err
		}
		if err := k.setLiquidityAmount(ctx, job, liquidity, pledged); err != nil {
			return err
		}
		reward := types.GetReward(liquidityValue(pair, tick, amount, params.RewardPeriod), params.RewardPeriod, params.InflationPeriod)
		credits.PeriodCredits = credits.PeriodCredits.Add(reward)
		if err := k.SetJobCredits(ctx, job, credits); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityAddition,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeySender, sender.String()),
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// unbondLiquidity removes amount from the pledge of job and the credits it accounts for, in
// proportion to the share of period credits it was worth.
func (k Keeper) unbondLiquidity(ctx context.Context, job sdk.AccAddress, liquidity string, amount math.Int, params types.Params) (math.Int, error) {
	if !k.set(ctx, JobLiquiditySetKey(job)).Contains([]byte(liquidity)) {
		return math.ZeroInt(), types.ErrJobLiquidityUnexistent.Wrapf("job %s liquidity %s", job, liquidity)
	}
	current, err := k.LiquidityAmount(ctx, job, liquidity)
	if err != nil {
		return math.ZeroInt(), err
	}
	if current.LT(amount) {
		return math.ZeroInt(), types.ErrJobLiquidityInsufficient.Wrapf("pledged %s, requested %s", current, amount)
	}

	credits, err := k.settleJobAccountance(ctx, job, params)
	if err != nil {
		return math.ZeroInt(), err
	}

	toRemove, err := k.QuoteLiquidity(ctx, liquidity, amount)
	if err != nil {
		return math.ZeroInt(), err
	}
	// a revoked liquidity leaves the job with no period credits to remove from
	if credits.PeriodCredits.IsPositive() {
		toRemove = math.MinInt(toRemove, credits.PeriodCredits)
		credits.LiquidityCredits = credits.LiquidityCredits.Sub(
			credits.LiquidityCredits.Mul(toRemove).Quo(credits.PeriodCredits),
		)
		credits.PeriodCredits = credits.PeriodCredits.Sub(toRemove)
		if err := k.SetJobCredits(ctx, job, credits); err != nil {
			return math.ZeroInt(), err
		}
	}

	remaining := current.Sub(amount)
	if err := k.setLiquidityAmount(ctx, job, liquidity, remaining); err != nil {
		return math.ZeroInt(), err
	}
	return remaining, nil
}

// UnbondLiquidityFromJob starts the withdrawal of amount of liquidity pledged to job. The
// remaining pledge must be zero or worth at least the liquidity minimum.
func (k Keeper) UnbondLiquidityFromJob(ctx context.Context, caller, job sdk.AccAddress, liquidity string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}
	if err := k.requireJobOwner(ctx, job, caller); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		remaining, err := k.unbondLiquidity(ctx, job, liquidity, amount, params)
		if err != nil {
			return err
		}
		if remaining.IsPositive() {
			value, err := k.LiquidityValue(ctx, liquidity, remaining)
			if err != nil {
				return err
			}
			if value.LT(params.LiquidityMinimum) {
				return types.ErrJobLiquidityLessThanMin.Wrapf("remaining pledge of %s%s", remaining, liquidity)
			}
		}

		balance, err := k.GetBondBalance(ctx, job, liquidity)
		if err != nil {
			return err
		}
		balance.PendingUnbond = balance.PendingUnbond.Add(amount)
		balance.CanWithdrawAfter = now(ctx) + params.UnbondTime
		if err := k.SetBondBalance(ctx, job, balance); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeUnbonding,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// WithdrawLiquidityFromJob sends the unbonded liquidity of job to receiver once the unbond
// time has elapsed.
func (k Keeper) WithdrawLiquidityFromJob(ctx context.Context, caller, job sdk.AccAddress, liquidity string, receiver sdk.AccAddress) error {
	if err := k.requireJobOwner(ctx, job, caller); err != nil {
		return err
	}
	if receiver.Empty() {
		return types.ErrInvalidAddress.Wrap("receiver cannot be empty")
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		balance, err := k.GetBondBalance(ctx, job, liquidity)
		if err != nil {
			return err
		}
		if balance.PendingUnbond.IsZero() {
			return types.ErrUnbondsUnexistent.Wrapf("job %s liquidity %s", job, liquidity)
		}
		if now(ctx) < balance.CanWithdrawAfter {
			return types.ErrUnbondsLocked.Wrapf("withdrawable after %d", balance.CanWithdrawAfter)
		}
		if k.IsDisputed(ctx, job) {
			return types.ErrDisputed.Wrapf("job %s", job)
		}

		amount := balance.PendingUnbond
		balance.PendingUnbond = math.ZeroInt()
		balance.CanWithdrawAfter = 0
		if err := k.SetBondBalance(ctx, job, balance); err != nil {
			return err
		}
		if err := k.mustTransfer(ctx, receiver, liquidity, amount); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeLiquidityWithdrawal,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity),
				sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}
