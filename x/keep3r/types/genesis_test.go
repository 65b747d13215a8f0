package types

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func testAddr(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

func TestGenesisStateValidate(t *testing.T) {
	job := GenesisJob{
		Address: testAddr("job"),
		Owner:   testAddr("owner"),
		Credits: NewJobCredits(),
		Tokens:  []TokenCredit{{Denom: "uusdc", Amount: math.NewInt(10)}},
	}

	tests := []struct {
		name    string
		genesis func() GenesisState
		valid   bool
	}{
		{
			name:    "default",
			genesis: func() GenesisState { return *DefaultGenesis() },
			valid:   true,
		},
		{
			name: "populated",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Governance = testAddr("gov")
				gs.Slashers = []string{testAddr("slasher")}
				gs.Liquidities = []LiquidityPair{{Denom: "ulp", Pool: "pool", Tick: TickCache{Period: 2 * DefaultRewardPeriod}}}
				gs.Jobs = []GenesisJob{job}
				gs.Keepers = []string{testAddr("keeper")}
				gs.Holders = []GenesisHolder{{
					Address: testAddr("keeper"),
					Info:    HolderInfo{FirstSeen: 1, WorkCompleted: math.ZeroInt(), HasBonded: true},
					Bonds:   []BondBalance{NewBondBalance("kp3r")},
				}}
				return gs
			},
			valid: true,
		},
		{
			name: "invalid params",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Params.RewardPeriod = 0
				return gs
			},
		},
		{
			name: "invalid governance",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Governance = "not-an-address"
				return gs
			},
		},
		{
			name: "duplicate disputer",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Disputers = []string{testAddr("d"), testAddr("d")}
				return gs
			},
		},
		{
			name: "misaligned tick period",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Liquidities = []LiquidityPair{{Denom: "ulp", Pool: "pool", Tick: TickCache{Period: DefaultRewardPeriod + 1}}}
				return gs
			},
		},
		{
			name: "liquidity without pool",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Liquidities = []LiquidityPair{{Denom: "ulp"}}
				return gs
			},
		},
		{
			name: "duplicate job",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Jobs = []GenesisJob{job, job}
				return gs
			},
		},
		{
			name: "job with zero token credits",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				j := job
				j.Tokens = []TokenCredit{{Denom: "uusdc", Amount: math.ZeroInt()}}
				gs.Jobs = []GenesisJob{j}
				return gs
			},
		},
		{
			name: "job that bonded",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				gs.Jobs = []GenesisJob{job}
				gs.Holders = []GenesisHolder{{
					Address: job.Address,
					Info:    HolderInfo{WorkCompleted: math.ZeroInt(), HasBonded: true},
				}}
				return gs
			},
		},
		{
			name: "negative bond",
			genesis: func() GenesisState {
				gs := *DefaultGenesis()
				bond := NewBondBalance("kp3r")
				bond.Bonded = math.NewInt(-1)
				gs.Holders = []GenesisHolder{{Address: testAddr("keeper"), Info: NewHolderInfo(), Bonds: []BondBalance{bond}}}
				return gs
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genesis().Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
