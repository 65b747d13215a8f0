package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// RewardBoostFor returns the payment boost in basis points for a keeper holding bonds KP3R.
func (k Keeper) RewardBoostFor(ctx context.Context, bonds math.Int) (uint64, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	return types.RewardBoost(bonds, params.MinBoost, params.MaxBoost, params.TargetBond), nil
}

// QuoteETHInKP3R converts amount of native units into KP3R at the KP3R/WETH pool average
// price over the quote window.
func (k Keeper) QuoteETHInKP3R(ctx context.Context, amount math.Int) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return k.quoteETHInKP3R(ctx, params, amount)
}

func (k Keeper) quoteETHInKP3R(ctx context.Context, params types.Params, amount math.Int) (math.Int, error) {
	difference, err := k.observeQuotePool(ctx, params)
	if err != nil {
		return math.ZeroInt(), err
	}
	// the oriented tick prices KP3R in WETH, invert it to price WETH in KP3R
	tick := types.AverageTick(difference, uint64(params.QuoteTwapTime))
	return types.QuoteAtTick(amount, -tick), nil
}

// GetPaymentParams returns the boost, the KP3R value of one native unit (1e18) and the
// extra gas used to price work for a keeper holding bonds KP3R.
func (k Keeper) GetPaymentParams(ctx context.Context, bonds math.Int) (types.PaymentParams, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.PaymentParams{}, err
	}
	oneEthQuote, err := k.quoteETHInKP3R(ctx, params, math.NewIntWithDecimal(1, 18))
	if err != nil {
		return types.PaymentParams{}, err
	}
	return types.PaymentParams{
		Boost:       types.RewardBoost(bonds, params.MinBoost, params.MaxBoost, params.TargetBond),
		OneEthQuote: oneEthQuote,
		ExtraGas:    params.WorkExtraGas,
	}, nil
}
