package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// AddJob registers job with owner as its owner. Addresses that ever bonded as keepers
// cannot become jobs.
func (k Keeper) AddJob(ctx context.Context, owner, job sdk.AccAddress) error {
	if job.Empty() {
		return types.ErrInvalidAddress.Wrap("job cannot be empty")
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if k.IsJob(ctx, job) {
			return types.ErrJobAlreadyAdded.Wrapf("job %s", job)
		}
		info, err := k.GetHolderInfo(ctx, job)
		if err != nil {
			return err
		}
		if info.HasBonded {
			return types.ErrAlreadyAKeeper.Wrapf("job %s", job)
		}

		jobs := k.set(ctx, JobSetPrefix)
		jobs.Add(job)
		k.getStore(ctx).Set(JobOwnerKey(job), owner)
		k.metrics.ActiveJobs.Set(float64(jobs.Len()))

		k.Logger(ctx).Info("job added", "job", job.String(), "owner", owner.String())
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeJobAddition,
				sdk.NewAttribute(types.AttributeKeyJob, job.String()),
				sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			),
		)
		return nil
	})
}

// ChangeJobOwnership proposes newOwner as the owner of job.
func (k Keeper) ChangeJobOwnership(ctx context.Context, caller, job, newOwner sdk.AccAddress) error {
	if err := k.requireJobOwner(ctx, job, caller); err != nil {
		return err
	}
	if newOwner.Empty() {
		return types.ErrInvalidAddress.Wrap("new owner cannot be empty")
	}
	k.getStore(ctx).Set(JobPendingOwnerKey(job), newOwner)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobOwnershipChange,
			sdk.NewAttribute(types.AttributeKeyJob, job.String()),
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
			sdk.NewAttribute(types.AttributeKeyPendingOwner, newOwner.String()),
		),
	)
	return nil
}

// AcceptJobOwnership completes an ownership change proposed for job.
func (k Keeper) AcceptJobOwnership(ctx context.Context, caller, job sdk.AccAddress) error {
	pending := k.GetJobPendingOwner(ctx, job)
	if pending == nil || !pending.Equals(caller) {
		return types.ErrOnlyPendingJobOwner.Wrapf("job %s caller %s", job, caller)
	}
	previous := k.GetJobOwner(ctx, job)

	store := k.getStore(ctx)
	store.Set(JobOwnerKey(job), pending)
	store.Delete(JobPendingOwnerKey(job))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobOwnershipAssent,
			sdk.NewAttribute(types.AttributeKeyJob, job.String()),
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, previous.String()),
		),
	)
	return nil
}
