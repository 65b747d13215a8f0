package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// atomic runs fn against a cached branch of ctx and commits its writes and events only
// when fn succeeds.
func (k Keeper) atomic(ctx context.Context, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	writeFn()
	return nil
}

// pullCoins moves amount of denom from sender into the module account. Failure aborts the
// caller: funds not received are never credited.
func (k Keeper) pullCoins(ctx context.Context, sender sdk.AccAddress, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("receive %s from %s: %v", coins, sender, err)
	}
	return nil
}

// mustTransfer sends amount of denom from the module account to recipient and propagates
// any failure.
func (k Keeper) mustTransfer(ctx context.Context, recipient sdk.AccAddress, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("send %s to %s: %v", coins, recipient, err)
	}
	return nil
}

// tryTransfer sends amount of denom from the module account to recipient in its own cached
// branch. A failed transfer leaves no trace and is reported only through the return value,
// the log and the swallowed transfer counter.
func (k Keeper) tryTransfer(ctx context.Context, recipient sdk.AccAddress, denom string, amount math.Int) bool {
	if !amount.IsPositive() {
		return true
	}
	err := k.atomic(ctx, func(cacheCtx sdk.Context) error {
		return k.mustTransfer(cacheCtx, recipient, denom, amount)
	})
	if err != nil {
		k.Logger(ctx).Error("best-effort transfer failed",
			"recipient", recipient.String(),
			"denom", denom,
			"amount", amount.String(),
			"error", err,
		)
		k.metrics.SwallowedTransfers.WithLabelValues(denom).Inc()
		return false
	}
	return true
}
