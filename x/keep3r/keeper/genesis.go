package keeper

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// InitGenesis initializes the keep3r module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return types.ErrInvalidGenesis.Wrap(err.Error())
	}
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	if data.Governance != "" {
		k.setGovernance(ctx, sdk.MustAccAddressFromBech32(data.Governance))
	}
	if data.PendingGovernance != "" {
		store.Set(PendingGovernanceKey, sdk.MustAccAddressFromBech32(data.PendingGovernance))
	}
	for _, addr := range data.Slashers {
		k.set(ctx, SlasherSetPrefix).Add(sdk.MustAccAddressFromBech32(addr))
	}
	for _, addr := range data.Disputers {
		k.set(ctx, DisputerSetPrefix).Add(sdk.MustAccAddressFromBech32(addr))
	}

	for _, pair := range data.Liquidities {
		k.set(ctx, ApprovedLiquiditySetPrefix).Add([]byte(pair.Denom))
		if err := k.setLiquidityPair(ctx, pair); err != nil {
			return fmt.Errorf("failed to initialize liquidity %s: %w", pair.Denom, err)
		}
	}

	for _, job := range data.Jobs {
		addr := sdk.MustAccAddressFromBech32(job.Address)
		k.set(ctx, JobSetPrefix).Add(addr)
		store.Set(JobOwnerKey(addr), sdk.MustAccAddressFromBech32(job.Owner))
		if job.PendingOwner != "" {
			store.Set(JobPendingOwnerKey(addr), sdk.MustAccAddressFromBech32(job.PendingOwner))
		}
		if err := k.writeJobLedger(ctx, addr, types.JobLedger{
			Credits:     job.Credits,
			Tokens:      job.Tokens,
			Liquidities: job.Liquidities,
		}); err != nil {
			return fmt.Errorf("failed to initialize job %s: %w", job.Address, err)
		}
		if job.PendingMigration != nil {
			if err := k.setJSON(ctx, PendingMigrationKey(addr), *job.PendingMigration); err != nil {
				return fmt.Errorf("failed to initialize migration of %s: %w", job.Address, err)
			}
		}
	}

	for _, addr := range data.Keepers {
		k.set(ctx, KeeperSetPrefix).Add(sdk.MustAccAddressFromBech32(addr))
	}
	for _, holder := range data.Holders {
		addr := sdk.MustAccAddressFromBech32(holder.Address)
		if err := k.SetHolderInfo(ctx, addr, holder.Info); err != nil {
			return fmt.Errorf("failed to initialize holder %s: %w", holder.Address, err)
		}
		for _, bond := range holder.Bonds {
			if err := k.SetBondBalance(ctx, addr, bond); err != nil {
				return fmt.Errorf("failed to initialize %s bonds of %s: %w", bond.Denom, holder.Address, err)
			}
		}
	}
	for _, addr := range data.Disputes {
		k.setDisputed(ctx, sdk.MustAccAddressFromBech32(addr), true)
	}

	k.metrics.ActiveJobs.Set(float64(len(data.Jobs)))
	k.metrics.ActiveKeepers.Set(float64(len(data.Keepers)))
	return nil
}

// ExportGenesis returns the keep3r module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	gs := &types.GenesisState{
		Params:     params,
		Governance: k.GetGovernance(ctx).String(),
		Slashers:   bech32s(k.GetSlashers(ctx)),
		Disputers:  bech32s(k.GetDisputers(ctx)),
		Keepers:    bech32s(k.GetKeepers(ctx)),
	}
	if pending := k.GetPendingGovernance(ctx); pending != nil {
		gs.PendingGovernance = pending.String()
	}

	for _, denom := range k.GetApprovedLiquidities(ctx) {
		pair, found, err := k.GetLiquidityPair(ctx, denom)
		if err != nil {
			return nil, fmt.Errorf("failed to export liquidity %s: %w", denom, err)
		}
		if found {
			gs.Liquidities = append(gs.Liquidities, pair)
		}
	}

	for _, addr := range k.GetJobs(ctx) {
		ledger, err := k.GetJobLedger(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("failed to export job %s: %w", addr, err)
		}
		job := types.GenesisJob{
			Address:     addr.String(),
			Owner:       k.GetJobOwner(ctx, addr).String(),
			Credits:     ledger.Credits,
			Tokens:      ledger.Tokens,
			Liquidities: ledger.Liquidities,
		}
		if pending := k.GetJobPendingOwner(ctx, addr); pending != nil {
			job.PendingOwner = pending.String()
		}
		if job.PendingMigration, err = k.GetPendingMigration(ctx, addr); err != nil {
			return nil, fmt.Errorf("failed to export migration of %s: %w", addr, err)
		}
		gs.Jobs = append(gs.Jobs, job)
	}

	for _, addr := range k.holderAddresses(ctx) {
		info, err := k.GetHolderInfo(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("failed to export holder %s: %w", addr, err)
		}
		bonds, err := k.GetHolderBonds(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("failed to export bonds of %s: %w", addr, err)
		}
		gs.Holders = append(gs.Holders, types.GenesisHolder{Address: addr.String(), Info: info, Bonds: bonds})
	}

	gs.Disputes = bech32s(keyAddresses(k.getStore(ctx), DisputeKeyPrefix))
	return gs, nil
}

// holderAddresses returns every address with keeper statistics or bonding state in byte order.
func (k Keeper) holderAddresses(ctx context.Context) []sdk.AccAddress {
	store := k.getStore(ctx)
	seen := make(map[string]bool)
	var out []sdk.AccAddress
	for _, p := range [][]byte{HolderInfoKeyPrefix, BondBalanceKeyPrefix} {
		for _, addr := range keyAddresses(store, p) {
			if seen[string(addr)] {
				continue
			}
			seen[string(addr)] = true
			out = append(out, addr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })
	return out
}

// keyAddresses returns the distinct length-prefixed addresses following prefix in the keys
// stored under it.
func keyAddresses(store storetypes.KVStore, prefix []byte) []sdk.AccAddress {
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var (
		out  []sdk.AccAddress
		last []byte
	)
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(prefix):]
		if len(key) == 0 || len(key) < 1+int(key[0]) {
			continue
		}
		addr := key[1 : 1+int(key[0])]
		if string(addr) == string(last) {
			continue
		}
		last = addr
		out = append(out, sdk.AccAddress(append([]byte{}, addr...)))
	}
	return out
}

func bech32s(addrs []sdk.AccAddress) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, len(addrs))
	for i, addr := range addrs {
		out[i] = addr.String()
	}
	return out
}
