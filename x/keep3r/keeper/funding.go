package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// AddTokenCreditsToJob funds job with amount of denom from sender. The funding fee is
// forwarded to governance and the rest is credited to the job. KP3R cannot fund jobs
// directly.
func (k Keeper) AddTokenCreditsToJob(ctx context.Context, sender, job sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDenom.Wrapf("token %s: %v", denom, err)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if !k.IsJob(ctx, job) {
			return types.ErrJobUnavailable.Wrapf("job %s", job)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if denom == params.Keep3rDenom {
			return types.ErrTokenUnallowed.Wrapf("token %s", denom)
		}

		if err := k.pullCoins(ctx, sender, denom, amount); err != nil {
			return err
		}
		fee := amount.Mul(math.NewIntFromUint64(params.Fee)).QuoRaw(types.BoostBase)
		if err := k.mustTransfer(ctx, k.GetGovernance(ctx), denom, fee); err != nil {
			return err
		}

		credit, err := k.GetTokenCredit(ctx, job, denom)
		if err != nil {
			return err
		}
		credit.Amount = credit.Amount.Add(amount.Sub(fee))
		credit.AddedAt = now(ctx)
		if err := k.setTokenCredit(ctx, job, credit); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTokenCreditAddition,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeySender, sender.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
			),
		)
		return nil
	})
}

// WithdrawTokenCreditsFromJob sends amount of the token credits of job to receiver. Credits
// stay locked for the token withdraw cooldown after each funding.
func (k Keeper) WithdrawTokenCreditsFromJob(ctx context.Context, caller, job sdk.AccAddress, denom string, amount math.Int, receiver sdk.AccAddress) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}
	if receiver.Empty() {
		return types.ErrInvalidAddress.Wrap("receiver cannot be empty")
	}
	if err := k.requireJobOwner(ctx, job, caller); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		credit, err := k.GetTokenCredit(ctx, job, denom)
		if err != nil {
			return err
		}
		if now(ctx) <= credit.AddedAt+params.TokenWithdrawCooldown {
			return types.ErrJobTokenCreditsLocked.Wrapf("locked until %d", credit.AddedAt+params.TokenWithdrawCooldown)
		}
		if credit.Amount.LT(amount) {
			return types.ErrInsufficientJobTokenCredits.Wrapf("credits %s, requested %s", credit.Amount, amount)
		}
		if k.IsDisputed(ctx, job) {
			return types.ErrJobDisputed.Wrapf("job %s", job)
		}

		credit.Amount = credit.Amount.Sub(amount)
		if err := k.setTokenCredit(ctx, job, credit); err != nil {
			return err
		}
		if err := k.mustTransfer(ctx, receiver, denom, amount); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTokenCreditWithdrawal,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyToken, denom),
				sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)
		return nil
	})
}
