package keep3r_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

func TestAppModuleBasicGenesis(t *testing.T) {
	basic := keep3r.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())

	bz := basic.DefaultGenesis(nil)
	require.NoError(t, basic.ValidateGenesis(nil, nil, bz))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`{"params":{"reward_period":0}}`)))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`not json`)))
}

func TestAppModuleGenesisRoundTrip(t *testing.T) {
	f := keepertest.Keep3rKeeper(t)
	am := keep3r.NewAppModule(f.Keeper)

	exported := am.ExportGenesis(f.Ctx, nil)
	var gs types.GenesisState
	require.NoError(t, json.Unmarshal(exported, &gs))
	require.Equal(t, f.Authority.String(), gs.Governance)

	g := keepertest.Keep3rKeeper(t)
	keep3r.NewAppModule(g.Keeper).InitGenesis(g.Ctx, nil, exported)
	require.JSONEq(t, string(exported), string(keep3r.NewAppModule(g.Keeper).ExportGenesis(g.Ctx, nil)))

	require.Panics(t, func() {
		keep3r.NewAppModule(g.Keeper).InitGenesis(g.Ctx, nil, json.RawMessage(`{"params":{}}`))
	})
	require.NotNil(t, am.MsgServer())
}
