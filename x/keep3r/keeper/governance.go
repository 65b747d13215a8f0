package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// GetGovernance returns the governance address, falling back to the module authority.
func (k Keeper) GetGovernance(ctx context.Context) sdk.AccAddress {
	if bz := k.getStore(ctx).Get(GovernanceKey); bz != nil {
		return sdk.AccAddress(bz)
	}
	return sdk.MustAccAddressFromBech32(k.authority)
}

func (k Keeper) setGovernance(ctx context.Context, gov sdk.AccAddress) {
	k.getStore(ctx).Set(GovernanceKey, gov)
}

// GetPendingGovernance returns the proposed governance address, if any.
func (k Keeper) GetPendingGovernance(ctx context.Context) sdk.AccAddress {
	bz := k.getStore(ctx).Get(PendingGovernanceKey)
	if bz == nil {
		return nil
	}
	return sdk.AccAddress(bz)
}

func (k Keeper) requireGovernance(ctx context.Context, caller sdk.AccAddress) error {
	if !caller.Equals(k.GetGovernance(ctx)) {
		return types.ErrOnlyGovernance.Wrapf("caller %s", caller)
	}
	return nil
}

// SetGovernance proposes a new governance address. The proposal takes effect once the
// pending governance accepts it.
func (k Keeper) SetGovernance(ctx context.Context, caller, pending sdk.AccAddress) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if pending.Empty() {
		return types.ErrInvalidAddress.Wrap("pending governance cannot be empty")
	}
	k.getStore(ctx).Set(PendingGovernanceKey, pending)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGovernanceProposal,
			sdk.NewAttribute(types.AttributeKeyGovernance, pending.String()),
		),
	)
	return nil
}

// AcceptGovernance hands governance over to the pending governance address.
func (k Keeper) AcceptGovernance(ctx context.Context, caller sdk.AccAddress) error {
	pending := k.GetPendingGovernance(ctx)
	if pending == nil || !caller.Equals(pending) {
		return types.ErrOnlyPendingGovernance.Wrapf("caller %s", caller)
	}
	k.setGovernance(ctx, pending)
	k.getStore(ctx).Delete(PendingGovernanceKey)

	k.Logger(ctx).Info("governance handed over", "governance", pending.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGovernanceSet,
			sdk.NewAttribute(types.AttributeKeyGovernance, pending.String()),
		),
	)
	return nil
}

// UpdateParams replaces the module parameters.
func (k Keeper) UpdateParams(ctx context.Context, caller sdk.AccAddress, params types.Params) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.Logger(ctx).Info("params updated", "params", params.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyGovernance, caller.String()),
		),
	)
	return nil
}

// IsSlasher reports whether addr holds the slasher role.
func (k Keeper) IsSlasher(ctx context.Context, addr sdk.AccAddress) bool {
	return k.set(ctx, SlasherSetPrefix).Contains(addr)
}

// IsDisputer reports whether addr holds the disputer role.
func (k Keeper) IsDisputer(ctx context.Context, addr sdk.AccAddress) bool {
	return k.set(ctx, DisputerSetPrefix).Contains(addr)
}

// GetSlashers returns all slashers.
func (k Keeper) GetSlashers(ctx context.Context) []sdk.AccAddress {
	return addresses(k.set(ctx, SlasherSetPrefix).Values())
}

// GetDisputers returns all disputers.
func (k Keeper) GetDisputers(ctx context.Context) []sdk.AccAddress {
	return addresses(k.set(ctx, DisputerSetPrefix).Values())
}

// AddSlasher grants the slasher role.
func (k Keeper) AddSlasher(ctx context.Context, caller, slasher sdk.AccAddress) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if !k.set(ctx, SlasherSetPrefix).Add(slasher) {
		return types.ErrSlasherExistent.Wrapf("slasher %s", slasher)
	}
	emitRoleEvent(ctx, types.EventTypeSlasherAdded, slasher, caller)
	return nil
}

// RemoveSlasher revokes the slasher role.
func (k Keeper) RemoveSlasher(ctx context.Context, caller, slasher sdk.AccAddress) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if !k.set(ctx, SlasherSetPrefix).Remove(slasher) {
		return types.ErrSlasherUnexistent.Wrapf("slasher %s", slasher)
	}
	emitRoleEvent(ctx, types.EventTypeSlasherRemoved, slasher, caller)
	return nil
}

// AddDisputer grants the disputer role.
func (k Keeper) AddDisputer(ctx context.Context, caller, disputer sdk.AccAddress) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if !k.set(ctx, DisputerSetPrefix).Add(disputer) {
		return types.ErrDisputerExistent.Wrapf("disputer %s", disputer)
	}
	emitRoleEvent(ctx, types.EventTypeDisputerAdded, disputer, caller)
	return nil
}

// RemoveDisputer revokes the disputer role.
func (k Keeper) RemoveDisputer(ctx context.Context, caller, disputer sdk.AccAddress) error {
	if err := k.requireGovernance(ctx, caller); err != nil {
		return err
	}
	if !k.set(ctx, DisputerSetPrefix).Remove(disputer) {
		return types.ErrDisputerUnexistent.Wrapf("disputer %s", disputer)
	}
	emitRoleEvent(ctx, types.EventTypeDisputerRemoved, disputer, caller)
	return nil
}

func emitRoleEvent(ctx context.Context, eventType string, account, governance sdk.AccAddress) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyGovernance, governance.String()),
		),
	)
}

func addresses(values [][]byte) []sdk.AccAddress {
	addrs := make([]sdk.AccAddress, len(values))
	for i, v := range values {
		addrs[i] = sdk.AccAddress(v)
	}
	return addrs
}
