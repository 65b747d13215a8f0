package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// MigrateJob requests the migration of everything from holds into to. The owner of to must
// accept the request once the migration cooldown has elapsed.
func (k Keeper) MigrateJob(ctx context.Context, caller, from, to sdk.AccAddress) error {
	if err := k.requireJobOwner(ctx, from, caller); err != nil {
		return err
	}
	if from.Equals(to) {
		return types.ErrJobMigrationImpossible.Wrapf("job %s", from)
	}

	migration := types.PendingMigration{To: to.String(), CreatedAt: now(ctx)}
	if err := k.setJSON(ctx, PendingMigrationKey(from), migration); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobMigrationRequested,
			sdk.NewAttribute(types.AttributeKeyFromJob, from.String()),
			sdk.NewAttribute(types.AttributeKeyToJob, to.String()),
		),
	)
	return nil
}

// AcceptJobMigration settles both jobs, merges the ledger of from into to and deregisters
// from.
func (k Keeper) AcceptJobMigration(ctx context.Context, caller, from, to sdk.AccAddress) error {
	if err := k.requireJobOwner(ctx, to, caller); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if k.IsDisputed(ctx, from) || k.IsDisputed(ctx, to) {
			return types.ErrJobDisputed.Wrapf("migration %s to %s", from, to)
		}
		migration, err := k.GetPendingMigration(ctx, from)
		if err != nil {
			return err
		}
		if migration == nil || migration.To != to.String() {
			return types.ErrJobMigrationUnavailable.Wrapf("migration %s to %s", from, to)
		}
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if now(ctx) < migration.CreatedAt+params.MigrationCooldown {
			return types.ErrJobMigrationLocked.Wrapf("acceptable from %d", migration.CreatedAt+params.MigrationCooldown)
		}

		if _, err := k.settleJobAccountance(ctx, from, params); err != nil {
			return err
		}
		if _, err := k.settleJobAccountance(ctx, to, params); err != nil {
			return err
		}
		fromLedger, err := k.GetJobLedger(ctx, from)
		if err != nil {
			return err
		}
		toLedger, err := k.GetJobLedger(ctx, to)
		if err != nil {
			return err
		}
		merged := types.MergeJobLedgers(fromLedger, toLedger)

		if err := k.clearJobLedger(ctx, from, fromLedger); err != nil {
			return err
		}
		if err := k.writeJobLedger(ctx, to, merged); err != nil {
			return err
		}

		store := k.getStore(ctx)
		store.Delete(JobCreditsKey(from))
		store.Delete(JobOwnerKey(from))
		store.Delete(JobPendingOwnerKey(from))
		store.Delete(PendingMigrationKey(from))
		jobs := k.set(ctx, JobSetPrefix)
		jobs.Remove(from)

		k.metrics.ActiveJobs.Set(float64(jobs.Len()))
		k.metrics.Migrations.Inc()
		k.Logger(ctx).Info("job migrated", "from", from.String(), "to", to.String())
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeJobMigrationSuccessful,
				sdk.NewAttribute(types.AttributeKeyFromJob, from.String()),
				sdk.NewAttribute(types.AttributeKeyToJob, to.String()),
			),
		)
		return nil
	})
}

// clearJobLedger zeroes every token credit and liquidity pledge of job.
func (k Keeper) clearJobLedger(ctx context.Context, job sdk.AccAddress, ledger types.JobLedger) error {
	for _, credit := range ledger.Tokens {
		credit.Amount = math.ZeroInt()
		if err := k.setTokenCredit(ctx, job, credit); err != nil {
			return err
		}
	}
	for _, liquidity := range ledger.Liquidities {
		if err := k.setLiquidityAmount(ctx, job, liquidity.Denom, math.ZeroInt()); err != nil {
			return err
		}
	}
	return nil
}

// writeJobLedger stores ledger as the full state of job.
func (k Keeper) writeJobLedger(ctx context.Context, job sdk.AccAddress, ledger types.JobLedger) error {
	if err := k.SetJobCredits(ctx, job, ledger.Credits); err != nil {
		return err
	}
	for _, credit := range ledger.Tokens {
		if err := k.setTokenCredit(ctx, job, credit); err != nil {
			return err
		}
	}
	for _, liquidity := range ledger.Liquidities {
		if err := k.setLiquidityAmount(ctx, job, liquidity.Denom, liquidity.Amount); err != nil {
			return err
		}
	}
	return nil
}
