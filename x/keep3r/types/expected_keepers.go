package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper. The module account must hold minter and
// burner permissions for the keep3r denom.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// PoolObserver reads tick cumulatives from AMM pool oracles.
// Observe returns one tick cumulative per entry of secondsAgo, in the same order.
type PoolObserver interface {
	Observe(ctx context.Context, pool string, secondsAgo []uint32) ([]int64, error)
}

// LiquidityPosition describes a tokenized concentrated liquidity position.
type LiquidityPosition struct {
	Pool   string
	Token0 string
	Token1 string
}

// LiquidityPositionKeeper resolves liquidity denoms to the pool they wrap.
type LiquidityPositionKeeper interface {
	GetPosition(ctx context.Context, denom string) (LiquidityPosition, error)
}

// BaseFeeKeeper supplies the gas price of the current block in native units per gas.
type BaseFeeKeeper interface {
	GetBaseFee(ctx context.Context) (sdkmath.Int, error)
}
