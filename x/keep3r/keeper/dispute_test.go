package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

const bondToken = "uatom"

func TestDisputeAndResolve(t *testing.T) {
	f := newFixture(t)
	target := keepertest.Addr("target")

	require.ErrorIs(t, f.Keeper.Dispute(f.Ctx, keepertest.Addr("stranger"), target), types.ErrOnlyDisputer)
	require.ErrorIs(t, f.Keeper.Resolve(f.Ctx, f.Authority, target), types.ErrNotDisputed)

	require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, target))
	require.True(t, f.Keeper.IsDisputed(f.Ctx, target))
	require.ErrorIs(t, f.Keeper.Dispute(f.Ctx, f.Authority, target), types.ErrAlreadyDisputed)

	require.NoError(t, f.Keeper.Resolve(f.Ctx, f.Authority, target))
	require.False(t, f.Keeper.IsDisputed(f.Ctx, target))
}

func TestDisputerAndSlasherRoles(t *testing.T) {
	f := newFixture(t)
	disputer, slasher := keepertest.Addr("disputer"), keepertest.Addr("slasher")
	target := keepertest.Addr("target")

	require.ErrorIs(t, f.Keeper.AddDisputer(f.Ctx, disputer, disputer), types.ErrOnlyGovernance)
	require.NoError(t, f.Keeper.AddDisputer(f.Ctx, f.Authority, disputer))
	require.ErrorIs(t, f.Keeper.AddDisputer(f.Ctx, f.Authority, disputer), types.ErrDisputerExistent)
	require.NoError(t, f.Keeper.AddSlasher(f.Ctx, f.Authority, slasher))
	require.ErrorIs(t, f.Keeper.AddSlasher(f.Ctx, f.Authority, slasher), types.ErrSlasherExistent)
	require.Equal(t, []sdk.AccAddress{disputer}, f.Keeper.GetDisputers(f.Ctx))
	require.Equal(t, []sdk.AccAddress{slasher}, f.Keeper.GetSlashers(f.Ctx))

	// a slasher is not a disputer
	require.ErrorIs(t, f.Keeper.Dispute(f.Ctx, slasher, target), types.ErrOnlyDisputer)
	require.NoError(t, f.Keeper.Dispute(f.Ctx, disputer, target))
	require.ErrorIs(t, f.Keeper.Revoke(f.Ctx, disputer, target), types.ErrOnlySlasher)

	require.NoError(t, f.Keeper.RemoveDisputer(f.Ctx, f.Authority, disputer))
	require.ErrorIs(t, f.Keeper.RemoveDisputer(f.Ctx, f.Authority, disputer), types.ErrDisputerUnexistent)
	require.NoError(t, f.Keeper.RemoveSlasher(f.Ctx, f.Authority, slasher))
	require.ErrorIs(t, f.Keeper.RemoveSlasher(f.Ctx, f.Authority, slasher), types.ErrSlasherUnexistent)
	require.ErrorIs(t, f.Keeper.Resolve(f.Ctx, disputer, target), types.ErrOnlyDisputer)
}

func TestSlashSendsBondsToGovernance(t *testing.T) {
	f := newFixture(t)
	keeperAddr := keepertest.Addr("keeper")
	f.ActivateKeeper(t, keeperAddr, bondToken, math.NewInt(1_000))

	err := f.Keeper.Slash(f.Ctx, f.Authority, keeperAddr, bondToken, math.NewInt(400), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrNotDisputed)
	err = f.Keeper.Slash(f.Ctx, keepertest.Addr("stranger"), keeperAddr, bondToken, math.NewInt(400), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOnlySlasher)

	require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, keeperAddr))
	err = f.Keeper.Slash(f.Ctx, f.Authority, keeperAddr, bondToken, math.NewInt(1_001), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientBond)

	require.NoError(t, f.Keeper.Slash(f.Ctx, f.Authority, keeperAddr, bondToken, math.NewInt(400), math.ZeroInt()))
	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, bondToken)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), bonds)
	require.Equal(t, math.NewInt(400), f.Balance(f.Authority, bondToken))

	value, ok := findAttribute(f.Ctx, types.EventTypeKeeperSlash, types.AttributeKeyTransferred)
	require.True(t, ok)
	require.Equal(t, "true", value)
	requireInvariants(t, f)
}

func TestSlashSwallowsFailedTransfer(t *testing.T) {
	f := newFixture(t)
	keeperAddr := keepertest.Addr("keeper")
	f.ActivateKeeper(t, keeperAddr, bondToken, math.NewInt(1_000))

	// governance moves to an address the bank refuses to pay
	gov := keepertest.BlockedAddr
	require.NoError(t, f.Keeper.SetGovernance(f.Ctx, f.Authority, gov))
	require.NoError(t, f.Keeper.AcceptGovernance(f.Ctx, gov))

	require.NoError(t, f.Keeper.Dispute(f.Ctx, gov, keeperAddr))
	require.NoError(t, f.Keeper.Slash(f.Ctx, gov, keeperAddr, bondToken, math.NewInt(400), math.ZeroInt()))

	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, bondToken)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), bonds)
	require.True(t, f.Balance(gov, bondToken).IsZero())
	require.Equal(t, math.NewInt(1_000), f.Balance(f.Keeper.GetModuleAddress(), bondToken))

	value, ok := findAttribute(f.Ctx, types.EventTypeKeeperSlash, types.AttributeKeyTransferred)
	require.True(t, ok)
	require.Equal(t, "false", value)
	requireInvariants(t, f)
}

func TestRevoke(t *testing.T) {
	f := newFixture(t)
	keeperAddr := keepertest.Addr("keeper")
	f.ActivateKeeper(t, keeperAddr, kp3r, kp3rs(50))
	f.ActivateKeeper(t, keeperAddr, bondToken, math.NewInt(500))
	require.NoError(t, f.Keeper.Unbond(f.Ctx, keeperAddr, bondToken, math.NewInt(200)))

	require.ErrorIs(t, f.Keeper.Revoke(f.Ctx, f.Authority, keeperAddr), types.ErrNotDisputed)
	require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, keeperAddr))
	require.NoError(t, f.Keeper.Revoke(f.Ctx, f.Authority, keeperAddr))

	require.False(t, f.Keeper.IsActiveKeeper(f.Ctx, keeperAddr))
	require.True(t, f.Keeper.IsDisputed(f.Ctx, keeperAddr))
	for _, denom := range []string{kp3r, bondToken} {
		balance, err := f.Keeper.GetBondBalance(f.Ctx, keeperAddr, denom)
		require.NoError(t, err)
		require.True(t, balance.Bonded.IsZero(), denom)
		require.True(t, balance.PendingUnbond.IsZero(), denom)
	}
	require.Equal(t, math.NewInt(500), f.Balance(f.Keeper.GetGovernance(f.Ctx), bondToken))

	_, ok := findAttribute(f.Ctx, types.EventTypeKeeperRevoke, types.AttributeKeyKeeper)
	require.True(t, ok)
	requireInvariants(t, f)
}

func TestSlashTokenFromJob(t *testing.T) {
	f := newFixture(t)
	owner, job := keepertest.Addr("owner"), keepertest.Addr("job")
	f.AddJob(t, owner, job)
	credited := addTokenCredits(t, f, job, math.NewInt(1_000_000))

	err := f.Keeper.SlashTokenFromJob(f.Ctx, f.Authority, job, testToken, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrNotDisputed)
	require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, job))

	err = f.Keeper.SlashTokenFromJob(f.Ctx, f.Authority, job, "uother", math.NewInt(1))
	require.ErrorIs(t, err, types.ErrJobTokenUnexistent)
	err = f.Keeper.SlashTokenFromJob(f.Ctx, f.Authority, job, testToken, credited.AddRaw(1))
	require.ErrorIs(t, err, types.ErrInsufficientJobTokenCredits)

	require.NoError(t, f.Keeper.SlashTokenFromJob(f.Ctx, f.Authority, job, testToken, math.NewInt(1_000)))
	require.Equal(t, []string{testToken}, f.Keeper.GetJobTokens(f.Ctx, job))

	// slashing the rest drops the token from the job
	require.NoError(t, f.Keeper.SlashTokenFromJob(f.Ctx, f.Authority, job, testToken, credited.SubRaw(1_000)))
	require.Empty(t, f.Keeper.GetJobTokens(f.Ctx, job))
	remaining, err := f.Keeper.JobTokenCredits(f.Ctx, job, testToken)
	require.NoError(t, err)
	require.True(t, remaining.IsZero())
	requireInvariants(t, f)
}

func TestSlashLiquidityFromJob(t *testing.T) {
	f := newFixture(t)
	owner, job := keepertest.Addr("owner"), keepertest.Addr("job")
	fundJob(t, f, owner, job, kp3rs(10))
	f.AdvanceSeconds(rewardPeriod(t, f))

	err := f.Keeper.SlashLiquidityFromJob(f.Ctx, f.Authority, job, testLiquidity, kp3rs(4))
	require.ErrorIs(t, err, types.ErrNotDisputed)
	require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, job))

	require.NoError(t, f.Keeper.SlashLiquidityFromJob(f.Ctx, f.Authority, job, testLiquidity, kp3rs(4)))
	amount, err := f.Keeper.LiquidityAmount(f.Ctx, job, testLiquidity)
	require.NoError(t, err)
	require.Equal(t, kp3rs(6), amount)
	require.Equal(t, kp3rs(4), f.Balance(f.Authority, testLiquidity))

	credits, err := f.Keeper.GetJobCredits(f.Ctx, job)
	require.NoError(t, err)
	require.Equal(t, kp3rs(6), credits.LiquidityCredits)
	requireInvariants(t, f)
}
