package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// migrationFixture sets up two funded jobs sharing an owner.
func migrationFixture(t *testing.T) (f *keepertest.Keep3rFixture, owner, from, to sdk.AccAddress) {
	t.Helper()
	f = newFixture(t)
	owner, from, to = keepertest.Addr("owner"), keepertest.Addr("from"), keepertest.Addr("to")
	fundJob(t, f, owner, from, kp3rs(10))
	fundJob(t, f, owner, to, kp3rs(5))
	addTokenCredits(t, f, from, math.NewInt(1_000_000))
	addTokenCredits(t, f, to, math.NewInt(1_000_000))
	return f, owner, from, to
}

func TestJobMigration(t *testing.T) {
	f, owner, from, to := migrationFixture(t)

	require.NoError(t, f.Keeper.MigrateJob(f.Ctx, owner, from, to))
	migration, err := f.Keeper.GetPendingMigration(f.Ctx, from)
	require.NoError(t, err)
	require.NotNil(t, migration)
	require.Equal(t, to.String(), migration.To)

	err = f.Keeper.AcceptJobMigration(f.Ctx, owner, from, to)
	require.ErrorIs(t, err, types.ErrJobMigrationLocked)

	f.AdvanceSeconds(types.DefaultMigrationCooldown)
	require.NoError(t, f.Keeper.AcceptJobMigration(f.Ctx, owner, from, to))

	require.False(t, f.Keeper.IsJob(f.Ctx, from))
	require.True(t, f.Keeper.IsJob(f.Ctx, to))
	require.Nil(t, f.Keeper.GetJobOwner(f.Ctx, from))
	require.Empty(t, f.Keeper.GetJobTokens(f.Ctx, from))
	require.Empty(t, f.Keeper.GetJobLiquidities(f.Ctx, from))

	tokens, err := f.Keeper.JobTokenCredits(f.Ctx, to, testToken)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_994_000), tokens)
	liquidity, err := f.Keeper.LiquidityAmount(f.Ctx, to, testLiquidity)
	require.NoError(t, err)
	require.Equal(t, kp3rs(15), liquidity)
	periodCredits, err := f.Keeper.JobPeriodCredits(f.Ctx, to)
	require.NoError(t, err)
	require.Equal(t, kp3rs(15), periodCredits)

	migration, err = f.Keeper.GetPendingMigration(f.Ctx, from)
	require.NoError(t, err)
	require.Nil(t, migration)
	requireInvariants(t, f)
}

func TestJobMigrationValidation(t *testing.T) {
	t.Run("not the owner", func(t *testing.T) {
		f, _, from, to := migrationFixture(t)
		err := f.Keeper.MigrateJob(f.Ctx, keepertest.Addr("stranger"), from, to)
		require.ErrorIs(t, err, types.ErrOnlyJobOwner)
	})

	t.Run("into itself", func(t *testing.T) {
		f, owner, from, _ := migrationFixture(t)
		err := f.Keeper.MigrateJob(f.Ctx, owner, from, from)
		require.ErrorIs(t, err, types.ErrJobMigrationImpossible)
	})

	t.Run("other target", func(t *testing.T) {
		f, owner, from, to := migrationFixture(t)
		other := keepertest.Addr("other")
		f.AddJob(t, owner, other)
		require.NoError(t, f.Keeper.MigrateJob(f.Ctx, owner, from, to))
		f.AdvanceSeconds(types.DefaultMigrationCooldown)

		err := f.Keeper.AcceptJobMigration(f.Ctx, owner, from, other)
		require.ErrorIs(t, err, types.ErrJobMigrationUnavailable)
	})

	t.Run("not requested", func(t *testing.T) {
		f, owner, from, to := migrationFixture(t)
		err := f.Keeper.AcceptJobMigration(f.Ctx, owner, from, to)
		require.ErrorIs(t, err, types.ErrJobMigrationUnavailable)
	})

	t.Run("target owner accepts", func(t *testing.T) {
		f, owner, from, to := migrationFixture(t)
		require.NoError(t, f.Keeper.MigrateJob(f.Ctx, owner, from, to))
		f.AdvanceSeconds(types.DefaultMigrationCooldown)
		err := f.Keeper.AcceptJobMigration(f.Ctx, keepertest.Addr("stranger"), from, to)
		require.ErrorIs(t, err, types.ErrOnlyJobOwner)
	})

	t.Run("disputed", func(t *testing.T) {
		f, owner, from, to := migrationFixture(t)
		require.NoError(t, f.Keeper.MigrateJob(f.Ctx, owner, from, to))
		f.AdvanceSeconds(types.DefaultMigrationCooldown)
		require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, from))

		err := f.Keeper.AcceptJobMigration(f.Ctx, owner, from, to)
		require.ErrorIs(t, err, types.ErrJobDisputed)
		require.True(t, f.Keeper.IsJob(f.Ctx, from))
	})
}
