package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

func (k Keeper) requireDisputer(ctx context.Context, caller sdk.AccAddress) error {
	if k.IsDisputer(ctx, caller) || caller.Equals(k.GetGovernance(ctx)) {
		return nil
	}
	return types.ErrOnlyDisputer.Wrapf("caller %s", caller)
}

func (k Keeper) requireSlasher(ctx context.Context, caller sdk.AccAddress) error {
	if k.IsSlasher(ctx, caller) || caller.Equals(k.GetGovernance(ctx)) {
		return nil
	}
	return types.ErrOnlySlasher.Wrapf("caller %s", caller)
}

// Dispute flags a job or keeper.
func (k Keeper) Dispute(ctx context.Context, caller, target sdk.AccAddress) error {
	if err := k.requireDisputer(ctx, caller); err != nil {
		return err
	}
	if k.IsDisputed(ctx, target) {
		return types.ErrAlreadyDisputed.Wrapf("%s", target)
	}
	k.setDisputed(ctx, target, true)

	k.Logger(ctx).Info("dispute opened", "target", target.String(), "disputer", caller.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDispute,
			sdk.NewAttribute(types.AttributeKeyAccount, target.String()),
			sdk.NewAttribute(types.AttributeKeySender, caller.String()),
		),
	)
	return nil
}

// Resolve clears the dispute flag of a job or keeper.
func (k Keeper) Resolve(ctx context.Context, caller, target sdk.AccAddress) error {
	if err := k.requireDisputer(ctx, caller); err != nil {
		return err
	}
	if !k.IsDisputed(ctx, target) {
		return types.ErrNotDisputed.Wrapf("%s", target)
	}
	k.setDisputed(ctx, target, false)

	k.Logger(ctx).Info("dispute resolved", "target", target.String(), "disputer", caller.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResolve,
			sdk.NewAttribute(types.AttributeKeyAccount, target.String()),
			sdk.NewAttribute(types.AttributeKeySender, caller.String()),
		),
	)
	return nil
}

// slashKeeper removes bondAmount of bonds and unbondAmount of pending unbonds of keeper in
// denom. KP3R is simply destroyed; other denoms are sent to governance on a best-effort
// basis.
func (k Keeper) slashKeeper(ctx context.Context, keeper sdk.AccAddress, denom string, bondAmount, unbondAmount math.Int, params types.Params) error {
	balance, err := k.GetBondBalance(ctx, keeper, denom)
	if err != nil {
		return err
	}
	if balance.Bonded.LT(bondAmount) || balance.PendingUnbond.LT(unbondAmount) {
		return types.ErrInsufficientBond.Wrapf(
			"bonded %s pending unbond %s, slashing %s and %s",
			balance.Bonded, balance.PendingUnbond, bondAmount, unbondAmount,
		)
	}

	balance.Bonded = balance.Bonded.Sub(bondAmount)
	balance.PendingUnbond = balance.PendingUnbond.Sub(unbondAmount)
	if err := k.SetBondBalance(ctx, keeper, balance); err != nil {
		return err
	}

	transferred := true
	if denom != params.Keep3rDenom {
		transferred = k.tryTransfer(ctx, k.GetGovernance(ctx), denom, bondAmount.Add(unbondAmount))
	}

	k.metrics.Slashes.WithLabelValues("keeper").Inc()
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeKeeperSlash,
			sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyBondAmount, bondAmount.String()),
			sdk.NewAttribute(types.AttributeKeyUnbondAmount, unbondAmount.String()),
			sdk.NewAttribute(types.AttributeKeyTransferred, strconv.FormatBool(transferred)),
		),
	)
	return nil
}

// Slash removes bonds and pending unbonds of a disputed keeper.
func (k Keeper) Slash(ctx context.Context, caller, keeper sdk.AccAddress, denom string, bondAmount, unbondAmount math.Int) error {
	if err := k.requireSlasher(ctx, caller); err != nil {
		return err
	}
	if bondAmount.IsNil() || bondAmount.IsNegative() || unbondAmount.IsNil() || unbondAmount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("bond %s unbond %s", bondAmount, unbondAmount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.IsDisputed(ctx, keeper) {
			return types.ErrNotDisputed.Wrapf("keeper %s", keeper)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := k.slashKeeper(ctx, keeper, denom, bondAmount, unbondAmount, params); err != nil {
			return err
		}
		k.Logger(ctx).Info("keeper slashed",
			"keeper", keeper.String(),
			"denom", denom,
			"bond", bondAmount.String(),
			"unbond", unbondAmount.String(),
		)
		return nil
	})
}

// Revoke removes a disputed keeper from the keeper set and slashes its bonds and pending
// unbonds in every denom. The keeper stays disputed.
func (k Keeper) Revoke(ctx context.Context, caller, keeper sdk.AccAddress) error {
	if err := k.requireSlasher(ctx, caller); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.IsDisputed(ctx, keeper) {
			return types.ErrNotDisputed.Wrapf("keeper %s", keeper)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		keepers := k.set(ctx, KeeperSetPrefix)
		keepers.Remove(keeper)
		k.metrics.ActiveKeepers.Set(float64(keepers.Len()))

		balances, err := k.GetHolderBonds(ctx, keeper)
		if err != nil {
			return err
		}
		for _, balance := range balances {
			if balance.Bonded.IsZero() && balance.PendingUnbond.IsZero() {
				continue
			}
			if err := k.slashKeeper(ctx, keeper, balance.Denom, balance.Bonded, balance.PendingUnbond, params); err != nil {
				return err
			}
		}

		k.Logger(ctx).Info("keeper revoked", "keeper", keeper.String(), "slasher", caller.String())
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeKeeperRevoke,
				sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
				sdk.NewAttribute(types.AttributeKeySender, caller.String()),
			),
		)
		return nil
	})
}

// SlashTokenFromJob sends amount of the token credits of a disputed job to governance on a
// best-effort basis.
func (k Keeper) SlashTokenFromJob(ctx context.Context, caller, job sdk.AccAddress, denom string, amount math.Int) error {
	if err := k.requireSlasher(ctx, caller); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.IsDisputed(ctx, job) {
			return types.ErrNotDisputed.Wrapf("job %s", job)
		}
		if !k.set(ctx, JobTokenSetKey(job)).Contains([]byte(denom)) {
			return types.ErrJobTokenUnexistent.Wrapf("job %s token %s", job, denom)
		}
		credit, err := k.GetTokenCredit(ctx, job, denom)
		if err != nil {
			return err
		}
		if credit.Amount.LT(amount) {
			return types.ErrInsufficientJobTokenCredits.Wrapf("credits %s, slashing %s", credit.Amount, amount)
		}

		transferred := k.tryTransfer(ctx, k.GetGovernance(ctx), denom, amount)
		credit.Amount = credit.Amount.Sub(amount)
		if err := k.setTokenCredit(ctx, job, credit); err != nil {
			return err
		}

		k.metrics.Slashes.WithLabelValues("job_token").Inc()
		k.Logger(ctx).Info("job token credits slashed", "job", job.String(), "token", denom, "amount", amount.String())
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeJobSlashToken,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeySender, caller.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyTransferred, strconv.FormatBool(transferred)),
			),
		)
		return nil
	})
}

// SlashLiquidityFromJob removes amount of the liquidity pledged to a disputed job, with the
// credits it accounts for, and sends it to governance on a best-effort basis.
func (k Keeper) SlashLiquidityFromJob(ctx context.Context, caller, job sdk.AccAddress, liquidity string, amount math.Int) error {
	if err := k.requireSlasher(ctx, caller); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.IsDisputed(ctx, job) {
			return types.ErrNotDisputed.Wrapf("job %s", job)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if _, err := k.unbondLiquidity(ctx, job, liquidity, amount, params); err != nil {
			return err
		}
		transferred := k.tryTransfer(ctx, k.GetGovernance(ctx), liquidity, amount)

		k.metrics.Slashes.WithLabelValues("job_liquidity").Inc()
		k.Logger(ctx).Info("job liquidity slashed", "job", job.String(), "liquidity", liquidity, "amount", amount.String())
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeJobSlashLiquidity,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyLiquidity, liquidity),
				sdk.NewAttribute(types.AttributeKeySender, caller.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyTransferred, strconv.FormatBool(transferred)),
			),
		)
		return nil
	})
}
