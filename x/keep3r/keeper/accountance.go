package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// IsJob reports whether addr is a registered job.
func (k Keeper) IsJob(ctx context.Context, addr sdk.AccAddress) bool {
	return k.set(ctx, JobSetPrefix).Contains(addr)
}

// GetJobs returns all registered jobs in registration order, as modified by removals.
func (k Keeper) GetJobs(ctx context.Context) []sdk.AccAddress {
	return addresses(k.set(ctx, JobSetPrefix).Values())
}

// IsActiveKeeper reports whether addr is an activated keeper.
func (k Keeper) IsActiveKeeper(ctx context.Context, addr sdk.AccAddress) bool {
	return k.set(ctx, KeeperSetPrefix).Contains(addr)
}

// GetKeepers returns all activated keepers.
func (k Keeper) GetKeepers(ctx context.Context) []sdk.AccAddress {
	return addresses(k.set(ctx, KeeperSetPrefix).Values())
}

// GetJobOwner returns the owner of job, nil when unset.
func (k Keeper) GetJobOwner(ctx context.Context, job sdk.AccAddress) sdk.AccAddress {
	bz := k.getStore(ctx).Get(JobOwnerKey(job))
	if bz == nil {
		return nil
	}
	return sdk.AccAddress(bz)
}

// GetJobPendingOwner returns the proposed owner of job, nil when unset.
func (k Keeper) GetJobPendingOwner(ctx context.Context, job sdk.AccAddress) sdk.AccAddress {
	bz := k.getStore(ctx).Get(JobPendingOwnerKey(job))
	if bz == nil {
		return nil
	}
	return sdk.AccAddress(bz)
}

func (k Keeper) requireJobOwner(ctx context.Context, job, caller sdk.AccAddress) error {
	owner := k.GetJobOwner(ctx, job)
	if owner == nil || !owner.Equals(caller) {
		return types.ErrOnlyJobOwner.Wrapf("job %s caller %s", job, caller)
	}
	return nil
}

// IsDisputed reports whether a job or keeper is under dispute.
func (k Keeper) IsDisputed(ctx context.Context, addr sdk.AccAddress) bool {
	return k.getStore(ctx).Has(DisputeKey(addr))
}

func (k Keeper) setDisputed(ctx context.Context, addr sdk.AccAddress, disputed bool) {
	if disputed {
		k.getStore(ctx).Set(DisputeKey(addr), []byte{1})
		return
	}
	k.getStore(ctx).Delete(DisputeKey(addr))
}

// GetBondBalance returns the bonding state of holder for denom.
func (k Keeper) GetBondBalance(ctx context.Context, holder sdk.AccAddress, denom string) (types.BondBalance, error) {
	balance := types.NewBondBalance(denom)
	if _, err := k.getJSON(ctx, BondBalanceKey(holder, denom), &balance); err != nil {
		return types.BondBalance{}, err
	}
	return balance, nil
}

// SetBondBalance stores the bonding state of holder, deleting it when empty.
func (k Keeper) SetBondBalance(ctx context.Context, holder sdk.AccAddress, balance types.BondBalance) error {
	if balance.IsEmpty() {
		k.getStore(ctx).Delete(BondBalanceKey(holder, balance.Denom))
		return nil
	}
	return k.setJSON(ctx, BondBalanceKey(holder, balance.Denom), balance)
}

// GetHolderBonds returns all bonding states of holder.
func (k Keeper) GetHolderBonds(ctx context.Context, holder sdk.AccAddress) ([]types.BondBalance, error) {
	return iterateJSON[types.BondBalance](k.getStore(ctx), HolderBondsPrefix(holder))
}

// Bonds returns the activated bonds of keeper in denom.
func (k Keeper) Bonds(ctx context.Context, keeper sdk.AccAddress, denom string) (math.Int, error) {
	balance, err := k.GetBondBalance(ctx, keeper, denom)
	if err != nil {
		return math.ZeroInt(), err
	}
	return balance.Bonded, nil
}

// GetHolderInfo returns the keeper statistics of holder.
func (k Keeper) GetHolderInfo(ctx context.Context, holder sdk.AccAddress) (types.HolderInfo, error) {
	info := types.NewHolderInfo()
	if _, err := k.getJSON(ctx, HolderInfoKey(holder), &info); err != nil {
		return types.HolderInfo{}, err
	}
	return info, nil
}

// SetHolderInfo stores the keeper statistics of holder.
func (k Keeper) SetHolderInfo(ctx context.Context, holder sdk.AccAddress, info types.HolderInfo) error {
	return k.setJSON(ctx, HolderInfoKey(holder), info)
}

// GetJobCredits returns the liquidity credit accountance of job as stored.
func (k Keeper) GetJobCredits(ctx context.Context, job sdk.AccAddress) (types.JobCredits, error) {
	credits := types.NewJobCredits()
	if _, err := k.getJSON(ctx, JobCreditsKey(job), &credits); err != nil {
		return types.JobCredits{}, err
	}
	return credits, nil
}

// SetJobCredits stores the liquidity credit accountance of job.
func (k Keeper) SetJobCredits(ctx context.Context, job sdk.AccAddress, credits types.JobCredits) error {
	return k.setJSON(ctx, JobCreditsKey(job), credits)
}

// GetJobTokens returns the denoms job holds token credits for.
func (k Keeper) GetJobTokens(ctx context.Context, job sdk.AccAddress) []string {
	return denoms(k.set(ctx, JobTokenSetKey(job)).Values())
}

// GetTokenCredit returns the token credits of job in denom.
func (k Keeper) GetTokenCredit(ctx context.Context, job sdk.AccAddress, denom string) (types.TokenCredit, error) {
	credit := types.TokenCredit{Denom: denom, Amount: math.ZeroInt()}
	if _, err := k.getJSON(ctx, JobTokenCreditKey(job, denom), &credit); err != nil {
		return types.TokenCredit{}, err
	}
	return credit, nil
}

// setTokenCredit stores a token credit and keeps the job token set in sync with its balance.
func (k Keeper) setTokenCredit(ctx context.Context, job sdk.AccAddress, credit types.TokenCredit) error {
	tokens := k.set(ctx, JobTokenSetKey(job))
	if credit.Amount.IsZero() {
		tokens.Remove([]byte(credit.Denom))
		k.getStore(ctx).Delete(JobTokenCreditKey(job, credit.Denom))
		return nil
	}
	tokens.Add([]byte(credit.Denom))
	return k.setJSON(ctx, JobTokenCreditKey(job, credit.Denom), credit)
}

// JobTokenCredits returns the token credits of job in denom.
func (k Keeper) JobTokenCredits(ctx context.Context, job sdk.AccAddress, denom string) (math.Int, error) {
	credit, err := k.GetTokenCredit(ctx, job, denom)
	if err != nil {
		return math.ZeroInt(), err
	}
	return credit.Amount, nil
}

// GetJobLiquidities returns the liquidity denoms pledged to job.
func (k Keeper) GetJobLiquidities(ctx context.Context, job sdk.AccAddress) []string {
	return denoms(k.set(ctx, JobLiquiditySetKey(job)).Values())
}

// LiquidityAmount returns the amount of liquidity pledged to job.
func (k Keeper) LiquidityAmount(ctx context.Context, job sdk.AccAddress, liquidity string) (math.Int, error) {
	amount := math.ZeroInt()
	bz := k.getStore(ctx).Get(LiquidityAmountKey(job, liquidity))
	if bz == nil {
		return amount, nil
	}
	if err := amount.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return amount, nil
}

// setLiquidityAmount stores a liquidity pledge and keeps the job liquidity set in sync with it.
func (k Keeper) setLiquidityAmount(ctx context.Context, job sdk.AccAddress, liquidity string, amount math.Int) error {
	liquidities := k.set(ctx, JobLiquiditySetKey(job))
	if amount.IsZero() {
		liquidities.Remove([]byte(liquidity))
		k.getStore(ctx).Delete(LiquidityAmountKey(job, liquidity))
		return nil
	}
	liquidities.Add([]byte(liquidity))
	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(LiquidityAmountKey(job, liquidity), bz)
	return nil
}

// GetPendingMigration returns the pending migration of job, if any.
func (k Keeper) GetPendingMigration(ctx context.Context, job sdk.AccAddress) (*types.PendingMigration, error) {
	var migration types.PendingMigration
	found, err := k.getJSON(ctx, PendingMigrationKey(job), &migration)
	if err != nil || !found {
		return nil, err
	}
	return &migration, nil
}

// GetJobLedger snapshots everything job holds.
func (k Keeper) GetJobLedger(ctx context.Context, job sdk.AccAddress) (types.JobLedger, error) {
	credits, err := k.GetJobCredits(ctx, job)
	if err != nil {
		return types.JobLedger{}, err
	}
	ledger := types.JobLedger{Credits: credits}

	for _, denom := range k.GetJobTokens(ctx, job) {
		credit, err := k.GetTokenCredit(ctx, job, denom)
		if err != nil {
			return types.JobLedger{}, err
		}
		ledger.Tokens = append(ledger.Tokens, credit)
	}
	for _, liquidity := range k.GetJobLiquidities(ctx, job) {
		amount, err := k.LiquidityAmount(ctx, job, liquidity)
		if err != nil {
			return types.JobLedger{}, err
		}
		ledger.Liquidities = append(ledger.Liquidities, types.LiquidityAmount{Denom: liquidity, Amount: amount})
	}
	return ledger, nil
}

func denoms(values [][]byte) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
