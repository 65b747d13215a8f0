package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// Bond moves amount of denom from keeper into pending bonds, activatable after the bond time.
func (k Keeper) Bond(ctx context.Context, keeper sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDenom.Wrapf("bond %s: %v", denom, err)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if k.IsDisputed(ctx, keeper) {
			return types.ErrDisputed.Wrapf("keeper %s", keeper)
		}
		if k.IsJob(ctx, keeper) {
			return types.ErrAlreadyAJob.Wrapf("keeper %s", keeper)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		if err := k.pullCoins(ctx, keeper, denom, amount); err != nil {
			return err
		}

		balance, err := k.GetBondBalance(ctx, keeper, denom)
		if err != nil {
			return err
		}
		balance.PendingBond = balance.PendingBond.Add(amount)
		balance.CanActivateAfter = now(ctx) + params.BondTime
		if err := k.SetBondBalance(ctx, keeper, balance); err != nil {
			return err
		}

		info, err := k.GetHolderInfo(ctx, keeper)
		if err != nil {
			return err
		}
		info.HasBonded = true
		if err := k.SetHolderInfo(ctx, keeper, info); err != nil {
			return err
		}

		k.metrics.BondingEvents.WithLabelValues("bond").Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBonding,
				sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// Activate turns the pending bonds of keeper in denom into active bonds once the bond time
// has elapsed. Activated KP3R is burnt; it is minted back on withdrawal.
func (k Keeper) Activate(ctx context.Context, keeper sdk.AccAddress, denom string) error {
	return k.atomic(ctx, func(ctx sdk.Context) error {
		if k.IsDisputed(ctx, keeper) {
			return types.ErrDisputed.Wrapf("keeper %s", keeper)
		}
		balance, err := k.GetBondBalance(ctx, keeper, denom)
		if err != nil {
			return err
		}
		if balance.CanActivateAfter == 0 {
			return types.ErrBondsUnexistent.Wrapf("keeper %s denom %s", keeper, denom)
		}
		ts := now(ctx)
		if ts < balance.CanActivateAfter {
			return types.ErrBondsLocked.Wrapf("activatable after %d", balance.CanActivateAfter)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		info, err := k.GetHolderInfo(ctx, keeper)
		if err != nil {
			return err
		}
		if info.FirstSeen == 0 {
			info.FirstSeen = ts
			if err := k.SetHolderInfo(ctx, keeper, info); err != nil {
				return err
			}
		}
		keepers := k.set(ctx, KeeperSetPrefix)
		keepers.Add(keeper)
		k.metrics.ActiveKeepers.Set(float64(keepers.Len()))

		amount := balance.PendingBond
		balance.PendingBond = math.ZeroInt()
		balance.Bonded = balance.Bonded.Add(amount)
		if err := k.SetBondBalance(ctx, keeper, balance); err != nil {
			return err
		}
		if denom == params.Keep3rDenom && amount.IsPositive() {
			if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
				return types.ErrTransferFailed.Wrapf("burn %s%s: %v", amount, denom, err)
			}
		}

		k.metrics.BondingEvents.WithLabelValues("activate").Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeActivation,
				sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// Unbond moves amount of the active bonds of keeper into pending unbonds, withdrawable after
// the unbond time. Disputed keepers may still unbond.
func (k Keeper) Unbond(ctx context.Context, keeper sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		balance, err := k.GetBondBalance(ctx, keeper, denom)
		if err != nil {
			return err
		}
		if balance.Bonded.LT(amount) {
			return types.ErrInsufficientBond.Wrapf("bonded %s, requested %s", balance.Bonded, amount)
		}

		balance.Bonded = balance.Bonded.Sub(amount)
		balance.PendingUnbond = balance.PendingUnbond.Add(amount)
		balance.CanWithdrawAfter = now(ctx) + params.UnbondTime
		if err := k.SetBondBalance(ctx, keeper, balance); err != nil {
			return err
		}

		k.metrics.BondingEvents.WithLabelValues("unbond").Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeUnbonding,
				sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}

// Withdraw sends all pending unbonds of keeper in denom back to it once the unbond time has
// elapsed.
func (k Keeper) Withdraw(ctx context.Context, keeper sdk.AccAddress, denom string) error {
	return k.atomic(ctx, func(ctx sdk.Context) error {
		balance, err := k.GetBondBalance(ctx, keeper, denom)
		if err != nil {
			return err
		}
		if balance.CanWithdrawAfter == 0 {
			return types.ErrUnbondsUnexistent.Wrapf("keeper %s denom %s", keeper, denom)
		}
		if now(ctx) < balance.CanWithdrawAfter {
			return types.ErrUnbondsLocked.Wrapf("withdrawable after %d", balance.CanWithdrawAfter)
		}
		if k.IsDisputed(ctx, keeper) {
			return types.ErrDisputed.Wrapf("keeper %s", keeper)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}

		amount := balance.PendingUnbond
		balance.PendingUnbond = math.ZeroInt()
		balance.CanWithdrawAfter = 0
		if err := k.SetBondBalance(ctx, keeper, balance); err != nil {
			return err
		}
		if denom == params.Keep3rDenom && amount.IsPositive() {
			if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
				return types.ErrTransferFailed.Wrapf("mint %s%s: %v", amount, denom, err)
			}
		}
		if err := k.mustTransfer(ctx, keeper, denom, amount); err != nil {
			return err
		}

		k.metrics.BondingEvents.WithLabelValues("withdraw").Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWithdrawal,
				sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}
