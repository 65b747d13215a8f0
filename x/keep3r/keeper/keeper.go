package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// Keeper of the keep3r store
type Keeper struct {
	storeKey  storetypes.StoreKey
	tstoreKey storetypes.StoreKey

	bankKeeper     types.BankKeeper
	accountKeeper  types.AccountKeeper
	poolObserver   types.PoolObserver
	positionKeeper types.LiquidityPositionKeeper
	baseFeeKeeper  types.BaseFeeKeeper

	// authority is the address allowed to act as governance until governance is handed over.
	authority string

	metrics *Keep3rMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new keep3r Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	tkey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	poolObserver types.PoolObserver,
	positionKeeper types.LiquidityPositionKeeper,
	baseFeeKeeper types.BaseFeeKeeper,
	authority string,
) *Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid keep3r authority address %q: %v", authority, err))
	}

	return &Keeper{
		storeKey:       key,
		tstoreKey:      tkey,
		bankKeeper:     bankKeeper,
		accountKeeper:  accountKeeper,
		poolObserver:   poolObserver,
		positionKeeper: positionKeeper,
		baseFeeKeeper:  baseFeeKeeper,
		authority:      authority,
		metrics:        NewKeep3rMetrics(),
	}
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the address of the module account holding bonds and credits.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	if k.accountKeeper != nil {
		if addr := k.accountKeeper.GetModuleAddress(types.ModuleName); addr != nil {
			return addr
		}
	}
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the keep3r module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// getTransientStore returns the per-block transient store
func (k Keeper) getTransientStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).TransientStore(k.tstoreKey)
}

// now returns the current block time in unix seconds.
func now(ctx context.Context) uint64 {
	t := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

// getJSON decodes the value stored under key into v and reports whether it was present.
func (k Keeper) getJSON(ctx context.Context, key []byte, v any) (bool, error) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return false, nil
	}
	if err := json.Unmarshal(bz, v); err != nil {
		return false, fmt.Errorf("unmarshal %x: %w", key, err)
	}
	return true, nil
}

// setJSON encodes v and stores it under key.
func (k Keeper) setJSON(ctx context.Context, key []byte, v any) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %x: %w", key, err)
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}

// iterateJSON decodes every value stored under prefix in key order.
func iterateJSON[T any](store storetypes.KVStore, prefix []byte) ([]T, error) {
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var out []T
	for ; iterator.Valid(); iterator.Next() {
		var v T
		if err := json.Unmarshal(iterator.Value(), &v); err != nil {
			return nil, fmt.Errorf("unmarshal %x: %w", iterator.Key(), err)
		}
		out = append(out, v)
	}
	return out, nil
}
