package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisJob is the exported state of a registered job.
type GenesisJob struct {
	Address          string            `json:"address"`
	Owner            string            `json:"owner"`
	PendingOwner     string            `json:"pending_owner,omitempty"`
	Credits          JobCredits        `json:"credits"`
	Tokens           []TokenCredit     `json:"tokens,omitempty"`
	Liquidities      []LiquidityAmount `json:"liquidities,omitempty"`
	PendingMigration *PendingMigration `json:"pending_migration,omitempty"`
}

// GenesisHolder is the exported keeper-side state of an address. Jobs appear here too
// when they have unbonded liquidity pending withdrawal.
type GenesisHolder struct {
	Address string        `json:"address"`
	Info    HolderInfo    `json:"info"`
	Bonds   []BondBalance `json:"bonds,omitempty"`
}

// GenesisState defines the keep3r module's genesis state.
type GenesisState struct {
	Params            Params          `json:"params"`
	Governance        string          `json:"governance"`
	PendingGovernance string          `json:"pending_governance,omitempty"`
	Slashers          []string        `json:"slashers,omitempty"`
	Disputers         []string        `json:"disputers,omitempty"`
	Liquidities       []LiquidityPair `json:"liquidities,omitempty"`
	Jobs              []GenesisJob    `json:"jobs,omitempty"`
	Keepers           []string        `json:"keepers,omitempty"`
	Holders           []GenesisHolder `json:"holders,omitempty"`
	Disputes          []string        `json:"disputes,omitempty"`
}

// DefaultGenesis returns the default genesis state. An empty governance is replaced by the
// keeper's authority on init.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.Governance != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Governance); err != nil {
			return fmt.Errorf("invalid governance address %s: %w", gs.Governance, err)
		}
	}
	if gs.PendingGovernance != "" {
		if _, err := sdk.AccAddressFromBech32(gs.PendingGovernance); err != nil {
			return fmt.Errorf("invalid pending governance address %s: %w", gs.PendingGovernance, err)
		}
	}

	for name, list := range map[string][]string{
		"slasher":  gs.Slashers,
		"disputer": gs.Disputers,
		"keeper":   gs.Keepers,
		"dispute":  gs.Disputes,
	} {
		if err := validateAddressList(name, list); err != nil {
			return err
		}
	}

	seenLiquidity := make(map[string]bool, len(gs.Liquidities))
	for i, lp := range gs.Liquidities {
		if err := sdk.ValidateDenom(lp.Denom); err != nil {
			return fmt.Errorf("liquidity %d: invalid denom %s: %w", i, lp.Denom, err)
		}
		if seenLiquidity[lp.Denom] {
			return fmt.Errorf("liquidity %d: duplicate denom %s", i, lp.Denom)
		}
		seenLiquidity[lp.Denom] = true
		if lp.Pool == "" {
			return fmt.Errorf("liquidity %d (%s): pool cannot be empty", i, lp.Denom)
		}
		if lp.Tick.Period%gs.Params.RewardPeriod != 0 {
			return fmt.Errorf("liquidity %d (%s): tick period %d not aligned to reward period", i, lp.Denom, lp.Tick.Period)
		}
	}

	seenJobs := make(map[string]bool, len(gs.Jobs))
	for i, job := range gs.Jobs {
		if _, err := sdk.AccAddressFromBech32(job.Address); err != nil {
			return fmt.Errorf("job %d: invalid address %s: %w", i, job.Address, err)
		}
		if seenJobs[job.Address] {
			return fmt.Errorf("job %d: duplicate address %s", i, job.Address)
		}
		seenJobs[job.Address] = true
		if _, err := sdk.AccAddressFromBech32(job.Owner); err != nil {
			return fmt.Errorf("job %d (%s): invalid owner %s: %w", i, job.Address, job.Owner, err)
		}
		if err := validateJobCredits(job.Credits); err != nil {
			return fmt.Errorf("job %d (%s): %w", i, job.Address, err)
		}
		for _, tc := range job.Tokens {
			if tc.Amount.IsNil() || !tc.Amount.IsPositive() {
				return fmt.Errorf("job %d (%s): token %s credits must be positive", i, job.Address, tc.Denom)
			}
		}
		for _, la := range job.Liquidities {
			if la.Amount.IsNil() || !la.Amount.IsPositive() {
				return fmt.Errorf("job %d (%s): liquidity %s amount must be positive", i, job.Address, la.Denom)
			}
		}
		if job.PendingMigration != nil {
			if _, err := sdk.AccAddressFromBech32(job.PendingMigration.To); err != nil {
				return fmt.Errorf("job %d (%s): invalid migration target: %w", i, job.Address, err)
			}
		}
	}

	for i, holder := range gs.Holders {
		if _, err := sdk.AccAddressFromBech32(holder.Address); err != nil {
			return fmt.Errorf("holder %d: invalid address %s: %w", i, holder.Address, err)
		}
		if seenJobs[holder.Address] && holder.Info.HasBonded {
			return fmt.Errorf("holder %d: %s is both a job and a bonded keeper", i, holder.Address)
		}
		for _, b := range holder.Bonds {
			if nilOrNegative(b.Bonded) || nilOrNegative(b.PendingBond) || nilOrNegative(b.PendingUnbond) {
				return fmt.Errorf("holder %d (%s): missing or negative %s balance", i, holder.Address, b.Denom)
			}
		}
	}

	return nil
}

func validateAddressList(name string, list []string) error {
	seen := make(map[string]bool, len(list))
	for i, addr := range list {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("%s %d: invalid address %s: %w", name, i, addr, err)
		}
		if seen[addr] {
			return fmt.Errorf("%s %d: duplicate address %s", name, i, addr)
		}
		seen[addr] = true
	}
	return nil
}

func nilOrNegative(i math.Int) bool {
	return i.IsNil() || i.IsNegative()
}

func validateJobCredits(c JobCredits) error {
	if nilOrNegative(c.PeriodCredits) {
		return fmt.Errorf("period credits must be non-negative")
	}
	if nilOrNegative(c.LiquidityCredits) {
		return fmt.Errorf("liquidity credits must be non-negative")
	}
	return nil
}
