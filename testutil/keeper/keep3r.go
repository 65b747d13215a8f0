package keeper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/keep3r-network/keep3r/x/keep3r/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// GenesisTime is the block time of a fresh test context. It starts a reward period for any
// period dividing one day.
var GenesisTime = time.Unix(1_000*24*60*60, 0).UTC()

// BlockedAddr is refused by the bank keeper as a recipient, making every transfer to it fail.
var BlockedAddr = sdk.AccAddress([]byte("blocked_recipient___"))

// PoolOracle is an in-memory PoolObserver. Each pool trades at a piecewise constant tick
// starting at time zero, so the tick cumulative at time t integrates the schedule up to t.
type PoolOracle struct {
	mu        sync.Mutex
	schedules map[string][]tickChange
	failing   map[string]bool
	calls     int
}

type tickChange struct {
	at   int64
	tick int64
}

// NewPoolOracle returns an oracle where every pool trades at tick zero.
func NewPoolOracle() *PoolOracle {
	return &PoolOracle{schedules: make(map[string][]tickChange), failing: make(map[string]bool)}
}

// SetTick makes pool trade at tick for all time, dropping any earlier schedule.
func (o *PoolOracle) SetTick(pool string, tick int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.schedules[pool] = []tickChange{{at: 0, tick: tick}}
}

// SetTickFrom makes pool trade at tick from at onwards. Changes must be scheduled in time
// order.
func (o *PoolOracle) SetTickFrom(pool string, at time.Time, tick int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	schedule := o.schedules[pool]
	if len(schedule) == 0 {
		schedule = []tickChange{{at: 0, tick: 0}}
	}
	if last := schedule[len(schedule)-1]; at.Unix() <= last.at {
		panic(fmt.Sprintf("pool %s: tick change at %d not after %d", pool, at.Unix(), last.at))
	}
	o.schedules[pool] = append(schedule, tickChange{at: at.Unix(), tick: tick})
}

// SetFailing makes observations of pool fail.
func (o *PoolOracle) SetFailing(pool string, failing bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failing[pool] = failing
}

// Calls returns the number of observations served or refused so far.
func (o *PoolOracle) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

// Observe implements types.PoolObserver.
func (o *PoolOracle) Observe(ctx context.Context, pool string, secondsAgo []uint32) ([]int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if o.failing[pool] {
		return nil, fmt.Errorf("pool %s: observation reverted", pool)
	}
	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	out := make([]int64, len(secondsAgo))
	for i, s := range secondsAgo {
		out[i] = o.cumulative(pool, now-int64(s))
	}
	return out, nil
}

// TickCumulative returns the tick cumulative of pool at t.
func (o *PoolOracle) TickCumulative(pool string, t time.Time) int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cumulative(pool, t.Unix())
}

func (o *PoolOracle) cumulative(pool string, t int64) int64 {
	schedule := o.schedules[pool]
	var sum int64
	for i, change := range schedule {
		if change.at >= t {
			break
		}
		end := t
		if i+1 < len(schedule) && schedule[i+1].at < t {
			end = schedule[i+1].at
		}
		sum += change.tick * (end - change.at)
	}
	return sum
}

// Positions is an in-memory LiquidityPositionKeeper.
type Positions map[string]types.LiquidityPosition

// GetPosition implements types.LiquidityPositionKeeper.
func (p Positions) GetPosition(_ context.Context, denom string) (types.LiquidityPosition, error) {
	position, ok := p[denom]
	if !ok {
		return types.LiquidityPosition{}, fmt.Errorf("unknown liquidity position %s", denom)
	}
	return position, nil
}

// BaseFee is a settable BaseFeeKeeper.
type BaseFee struct {
	Fee math.Int
	Err error
}

// GetBaseFee implements types.BaseFeeKeeper.
func (b *BaseFee) GetBaseFee(context.Context) (math.Int, error) {
	if b.Err != nil {
		return math.ZeroInt(), b.Err
	}
	return b.Fee, nil
}

// Keep3rFixture bundles a keep3r keeper with the dependencies tests drive directly.
type Keep3rFixture struct {
	Keeper    *keeper.Keeper
	Ctx       sdk.Context
	Bank      bankkeeper.BaseKeeper
	Oracle    *PoolOracle
	Positions Positions
	BaseFee   *BaseFee
	Authority sdk.AccAddress
}

// Keep3rKeeper creates a test keeper for the keep3r module backed by real auth and bank
// keepers on an in-memory store.
func Keep3rKeeper(t testing.TB) *Keep3rFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	tStoreKey := storetypes.NewTransientStoreKey(types.TStoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(tStoreKey, storetypes.StoreTypeTransient, nil)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		minttypes.ModuleName: {authtypes.Minter},
		types.ModuleName:     {authtypes.Minter, authtypes.Burner},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{BlockedAddr.String(): true},
		authority.String(),
		log.NewNopLogger(),
	)

	oracle := NewPoolOracle()
	positions := Positions{}
	baseFee := &BaseFee{Fee: math.NewInt(1_000_000_000)}

	k := keeper.NewKeeper(
		storeKey,
		tStoreKey,
		bankKeeper,
		accountKeeper,
		oracle,
		positions,
		baseFee,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return &Keep3rFixture{
		Keeper:    k,
		Ctx:       ctx,
		Bank:      bankKeeper,
		Oracle:    oracle,
		Positions: positions,
		BaseFee:   baseFee,
		Authority: authority,
	}
}

// Fund mints coins to addr.
func (f *Keep3rFixture) Fund(t testing.TB, addr sdk.AccAddress, coins ...sdk.Coin) {
	amount := sdk.NewCoins(coins...)
	require.NoError(t, f.Bank.MintCoins(f.Ctx, minttypes.ModuleName, amount))
	require.NoError(t, f.Bank.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, amount))
}

// Balance returns the balance of addr in denom.
func (f *Keep3rFixture) Balance(addr sdk.AccAddress, denom string) math.Int {
	return f.Bank.GetBalance(f.Ctx, addr, denom).Amount
}

// Advance moves the block time forward by d.
func (f *Keep3rFixture) Advance(d time.Duration) {
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(d))
}

// AdvanceSeconds moves the block time forward by s seconds.
func (f *Keep3rFixture) AdvanceSeconds(s uint64) {
	f.Advance(time.Duration(s) * time.Second)
}

// SetParams overwrites the module parameters.
func (f *Keep3rFixture) SetParams(t testing.TB, mutate func(*types.Params)) {
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	mutate(&params)
	require.NoError(t, f.Keeper.UpdateParams(f.Ctx, f.Authority, params))
}

// ApproveLiquidity registers liquidity as an LP position of pool holding KP3R and approves it.
func (f *Keep3rFixture) ApproveLiquidity(t testing.TB, liquidity, pool string) {
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	f.Positions[liquidity] = types.LiquidityPosition{Pool: pool, Token0: params.Keep3rDenom, Token1: "uweth"}
	require.NoError(t, f.Keeper.ApproveLiquidity(f.Ctx, f.Authority, liquidity))
}

// AddJob registers job owned by owner.
func (f *Keep3rFixture) AddJob(t testing.TB, owner, job sdk.AccAddress) {
	require.NoError(t, f.Keeper.AddJob(f.Ctx, owner, job))
}

// ActivateKeeper bonds a positive amount of denom for keeper and activates it after the bond
// time.
func (f *Keep3rFixture) ActivateKeeper(t testing.TB, keeperAddr sdk.AccAddress, denom string, amount math.Int) {
	params, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	f.Fund(t, keeperAddr, sdk.NewCoin(denom, amount))
	require.NoError(t, f.Keeper.Bond(f.Ctx, keeperAddr, denom, amount))
	f.AdvanceSeconds(params.BondTime)
	require.NoError(t, f.Keeper.Activate(f.Ctx, keeperAddr, denom))
}

// Addr returns a deterministic 20 byte test address derived from name.
func Addr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}
