package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

func TestInvariantsHoldAfterActivity(t *testing.T) {
	f := newFixture(t)
	populate(t, f)
	requireInvariants(t, f)

	f.AdvanceSeconds(types.DefaultMigrationCooldown)
	require.NoError(t, f.Keeper.AcceptJobMigration(f.Ctx, keepertest.Addr("owner"), keepertest.Addr("other"), keepertest.Addr("job")))
	requireInvariants(t, f)
}

func TestModuleSolvencyInvariantBroken(t *testing.T) {
	f := keepertest.Keep3rKeeper(t)

	gs := types.DefaultGenesis()
	gs.Jobs = []types.GenesisJob{{
		Address: keepertest.Addr("job").String(),
		Owner:   keepertest.Addr("owner").String(),
		Credits: types.JobCredits{PeriodCredits: math.ZeroInt(), LiquidityCredits: math.ZeroInt()},
		Tokens:  []types.TokenCredit{{Denom: testToken, Amount: math.NewInt(1_000)}},
	}}
	require.NoError(t, f.Keeper.InitGenesis(f.Ctx, *gs))

	msg, broken := keeper.ModuleSolvencyInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken)
	require.Contains(t, msg, "owes 1000"+testToken)

	_, broken = keeper.JobLedgerInvariant(*f.Keeper)(f.Ctx)
	require.False(t, broken)
}

func TestKeeperSetInvariantBroken(t *testing.T) {
	f := keepertest.Keep3rKeeper(t)

	addr := keepertest.Addr("ghost").String()
	gs := types.DefaultGenesis()
	gs.Keepers = []string{addr}
	require.NoError(t, f.Keeper.InitGenesis(f.Ctx, *gs))

	msg, broken := keeper.KeeperSetInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken)
	require.Contains(t, msg, "without first seen time")
}
