package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// workedGasOverhead is the gas Worked consumes after its last gas meter reading.
const workedGasOverhead uint64 = 5_000

// snapshotGas records the gas consumed so far in the transaction as the start of a unit of
// work.
func (k Keeper) snapshotGas(ctx context.Context) uint64 {
	consumed := sdk.UnwrapSDKContext(ctx).GasMeter().GasConsumed()
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, consumed)
	k.getTransientStore(ctx).Set(InitialGasKey, bz)
	return consumed
}

// initialGas returns the gas snapshot taken by IsKeeper or IsBondedKeeper.
func (k Keeper) initialGas(ctx context.Context) (uint64, bool) {
	bz := k.getTransientStore(ctx).Get(InitialGasKey)
	if bz == nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

func emitKeeperValidation(ctx context.Context, initialGas uint64) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeKeeperValidation,
			sdk.NewAttribute(types.AttributeKeyInitialGas, uintString(initialGas)),
		),
	)
}

// IsKeeper starts metering a unit of work and reports whether keeper is an activated keeper.
func (k Keeper) IsKeeper(ctx context.Context, keeper sdk.AccAddress) bool {
	initialGas := k.snapshotGas(ctx)
	if !k.IsActiveKeeper(ctx, keeper) {
		return false
	}
	emitKeeperValidation(ctx, initialGas)
	return true
}

// IsBondedKeeper starts metering a unit of work and reports whether keeper is an activated
// keeper with at least minBond of bond, earned at least earned KP3R and was first seen at
// least age seconds ago.
func (k Keeper) IsBondedKeeper(ctx context.Context, keeper sdk.AccAddress, bond string, minBond, earned math.Int, age uint64) (bool, error) {
	initialGas := k.snapshotGas(ctx)
	if !k.IsActiveKeeper(ctx, keeper) {
		return false, nil
	}
	bonds, err := k.Bonds(ctx, keeper, bond)
	if err != nil {
		return false, err
	}
	info, err := k.GetHolderInfo(ctx, keeper)
	if err != nil {
		return false, err
	}
	if bonds.LT(minBond) || info.WorkCompleted.LT(earned) || now(ctx)-info.FirstSeen < age {
		return false, nil
	}
	emitKeeperValidation(ctx, initialGas)
	return true, nil
}

func (k Keeper) requireWorkableJob(ctx context.Context, job sdk.AccAddress) error {
	if k.IsDisputed(ctx, job) {
		return types.ErrJobDisputed.Wrapf("job %s", job)
	}
	if !k.IsJob(ctx, job) {
		return types.ErrJobUnavailable.Wrapf("job %s", job)
	}
	return nil
}

// Worked pays keeper for the work metered since IsKeeper with the liquidity credits of job.
// The payment prices the gas used at the block base fee, boosted by the keeper's KP3R bonds.
func (k Keeper) Worked(ctx context.Context, job, keeper sdk.AccAddress) error {
	return k.atomic(ctx, func(ctx sdk.Context) error {
		initialGas, ok := k.initialGas(ctx)
		if !ok {
			return types.ErrGasNotInitialized
		}
		if err := k.requireWorkableJob(ctx, job); err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		bonds, err := k.Bonds(ctx, keeper, params.Keep3rDenom)
		if err != nil {
			return err
		}
		paymentParams, err := k.GetPaymentParams(ctx, bonds)
		if err != nil {
			return err
		}
		baseFee, err := k.baseFeeKeeper.GetBaseFee(ctx)
		if err != nil {
			return types.ErrBaseFeeUnavailable.Wrap(err.Error())
		}

		gasUsed := workedGasOverhead + paymentParams.ExtraGas
		if consumed := ctx.GasMeter().GasConsumed(); consumed > initialGas {
			gasUsed += consumed - initialGas
		}
		payment := types.WorkPayment(gasUsed, baseFee, paymentParams.Boost, paymentParams.OneEthQuote)

		k.getTransientStore(ctx).Delete(InitialGasKey)
		if err := k.bondedPayment(ctx, job, keeper, payment, params); err != nil {
			return err
		}

		k.metrics.PaidGas.Observe(float64(gasUsed))
		k.metrics.Payments.WithLabelValues("worked").Inc()
		emitKeeperWork(ctx, params.Keep3rDenom, job, keeper, payment)
		return nil
	})
}

// BondedPayment pays keeper amount KP3R out of the liquidity credits of job.
func (k Keeper) BondedPayment(ctx context.Context, job, keeper sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.requireWorkableJob(ctx, job); err != nil {
			return err
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := k.bondedPayment(ctx, job, keeper, amount, params); err != nil {
			return err
		}

		k.metrics.Payments.WithLabelValues("bonded").Inc()
		emitKeeperWork(ctx, params.Keep3rDenom, job, keeper, amount)
		return nil
	})
}

// bondedPayment moves amount of liquidity credits of job into the KP3R bonds of keeper. The
// job is settled first when its cached credits belong to a past period or fall short of
// amount; the payment is refused if it still falls short.
func (k Keeper) bondedPayment(ctx context.Context, job, keeper sdk.AccAddress, amount math.Int, params types.Params) error {
	credits, err := k.GetJobCredits(ctx, job)
	if err != nil {
		return err
	}
	ts := now(ctx)
	if amount.GT(credits.LiquidityCredits) || credits.RewardedAt < types.PeriodStart(ts, params.RewardPeriod) {
		if credits, err = k.settleJobAccountance(ctx, job, params); err != nil {
			return err
		}
	}
	if amount.GT(credits.LiquidityCredits) {
		return types.ErrInsufficientFunds.Wrapf("payment %s exceeds credits %s", amount, credits.LiquidityCredits)
	}

	credits.LiquidityCredits = credits.LiquidityCredits.Sub(amount)
	credits.WorkedAt = ts
	if err := k.SetJobCredits(ctx, job, credits); err != nil {
		return err
	}

	balance, err := k.GetBondBalance(ctx, keeper, params.Keep3rDenom)
	if err != nil {
		return err
	}
	balance.Bonded = balance.Bonded.Add(amount)
	if err := k.SetBondBalance(ctx, keeper, balance); err != nil {
		return err
	}
	info, err := k.GetHolderInfo(ctx, keeper)
	if err != nil {
		return err
	}
	info.WorkCompleted = info.WorkCompleted.Add(amount)
	if err := k.SetHolderInfo(ctx, keeper, info); err != nil {
		return err
	}

	k.metrics.PaidAmount.WithLabelValues(params.Keep3rDenom).Add(intToFloat(amount))
	return nil
}

// DirectTokenPayment pays keeper amount of denom out of the token credits of job.
func (k Keeper) DirectTokenPayment(ctx context.Context, job sdk.AccAddress, denom string, keeper sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("amount %s", amount)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if k.IsDisputed(ctx, job) {
			return types.ErrJobDisputed.Wrapf("job %s", job)
		}
		if k.IsDisputed(ctx, keeper) {
			return types.ErrDisputed.Wrapf("keeper %s", keeper)
		}
		if !k.IsJob(ctx, job) {
			return types.ErrJobUnavailable.Wrapf("job %s", job)
		}
		credit, err := k.GetTokenCredit(ctx, job, denom)
		if err != nil {
			return err
		}
		if credit.Amount.LT(amount) {
			return types.ErrInsufficientFunds.Wrapf("token credits %s, payment %s", credit.Amount, amount)
		}

		credit.Amount = credit.Amount.Sub(amount)
		if err := k.setTokenCredit(ctx, job, credit); err != nil {
			return err
		}
		if err := k.mustTransfer(ctx, keeper, denom, amount); err != nil {
			return err
		}

		k.metrics.Payments.WithLabelValues("direct").Inc()
		k.metrics.PaidAmount.WithLabelValues(denom).Add(intToFloat(amount))
		emitKeeperWork(ctx, denom, job, keeper, amount)
		return nil
	})
}

func emitKeeperWork(ctx sdk.Context, denom string, job, keeper sdk.AccAddress, amount math.Int) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeKeeperWork,
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyJob, job.String()),
			sdk.NewAttribute(types.AttributeKeyKeeper, keeper.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyGasLeft, uintString(ctx.GasMeter().GasRemaining())),
		),
	)
}
