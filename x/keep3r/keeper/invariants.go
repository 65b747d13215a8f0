package keeper

import (
	"fmt"
	"sort"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// RegisterInvariants registers all keep3r module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-solvency",
		ModuleSolvencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "job-ledger",
		JobLedgerInvariant(k))
	ir.RegisterRoute(types.ModuleName, "keeper-set",
		KeeperSetInvariant(k))
	ir.RegisterRoute(types.ModuleName, "tick-period",
		TickPeriodInvariant(k))
}

// AllInvariants runs all invariants of the keep3r module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleSolvencyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = JobLedgerInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = KeeperSetInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return TickPeriodInvariant(k)(ctx)
	}
}

// ModuleSolvencyInvariant checks that the module account holds every token it owes: token
// credits, liquidity pledges and bonding balances. Active KP3R bonds are burnt, so only
// pending KP3R bonds must be held.
func ModuleSolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-solvency", fmt.Sprintf("error reading params: %v", err)), true
		}

		owed := make(map[string]math.Int)
		add := func(denom string, amount math.Int) {
			if cur, ok := owed[denom]; ok {
				owed[denom] = cur.Add(amount)
				return
			}
			owed[denom] = amount
		}

		for _, job := range k.GetJobs(ctx) {
			ledger, err := k.GetJobLedger(ctx, job)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "module-solvency", fmt.Sprintf("error reading job %s: %v", job, err)), true
			}
			for _, credit := range ledger.Tokens {
				add(credit.Denom, credit.Amount)
			}
			for _, liquidity := range ledger.Liquidities {
				add(liquidity.Denom, liquidity.Amount)
			}
		}

		balances, err := iterateJSON[types.BondBalance](k.getStore(ctx), BondBalanceKeyPrefix)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-solvency", fmt.Sprintf("error reading bonds: %v", err)), true
		}
		for _, b := range balances {
			if b.Denom == params.Keep3rDenom {
				add(b.Denom, b.PendingBond)
				continue
			}
			add(b.Denom, b.Bonded.Add(b.PendingBond).Add(b.PendingUnbond))
		}

		moduleAddr := k.GetModuleAddress()
		var msg strings.Builder
		broken := false
		sorted := make([]string, 0, len(owed))
		for denom := range owed {
			sorted = append(sorted, denom)
		}
		sort.Strings(sorted)
		for _, denom := range sorted {
			amount := owed[denom]
			held := k.bankKeeper.GetBalance(ctx, moduleAddr, denom).Amount
			if held.LT(amount) {
				broken = true
				fmt.Fprintf(&msg, "\tmodule holds %s%s, owes %s%s\n", held, denom, amount, denom)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "module-solvency", msg.String()), broken
	}
}

// JobLedgerInvariant checks that job token and liquidity sets list exactly the positive
// balances of each job and that every job has an owner.
func JobLedgerInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg strings.Builder
		broken := false

		for _, job := range k.GetJobs(ctx) {
			if k.GetJobOwner(ctx, job) == nil {
				broken = true
				fmt.Fprintf(&msg, "\tjob %s has no owner\n", job)
			}
			for _, denom := range k.GetJobTokens(ctx, job) {
				amount, err := k.JobTokenCredits(ctx, job, denom)
				if err != nil || !amount.IsPositive() {
					broken = true
					fmt.Fprintf(&msg, "\tjob %s lists token %s without credits\n", job, denom)
				}
			}
			for _, liquidity := range k.GetJobLiquidities(ctx, job) {
				amount, err := k.LiquidityAmount(ctx, job, liquidity)
				if err != nil || !amount.IsPositive() {
					broken = true
					fmt.Fprintf(&msg, "\tjob %s lists liquidity %s without a pledge\n", job, liquidity)
				}
			}
			credits, err := k.GetJobCredits(ctx, job)
			if err != nil {
				broken = true
				fmt.Fprintf(&msg, "\tjob %s credits unreadable: %v\n", job, err)
				continue
			}
			if credits.PeriodCredits.IsNegative() || credits.LiquidityCredits.IsNegative() {
				broken = true
				fmt.Fprintf(&msg, "\tjob %s has negative credits\n", job)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "job-ledger", msg.String()), broken
	}
}

// KeeperSetInvariant checks that every activated keeper has been seen and is not a job.
func KeeperSetInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg strings.Builder
		broken := false

		for _, keeper := range k.GetKeepers(ctx) {
			info, err := k.GetHolderInfo(ctx, keeper)
			if err != nil {
				broken = true
				fmt.Fprintf(&msg, "\tkeeper %s info unreadable: %v\n", keeper, err)
				continue
			}
			if info.FirstSeen == 0 {
				broken = true
				fmt.Fprintf(&msg, "\tkeeper %s activated without first seen time\n", keeper)
			}
			if k.IsJob(ctx, keeper) {
				broken = true
				fmt.Fprintf(&msg, "\tkeeper %s is also a job\n", keeper)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "keeper-set", msg.String()), broken
	}
}

// TickPeriodInvariant checks that every cached tick period starts a reward period.
func TickPeriodInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "tick-period", fmt.Sprintf("error reading params: %v", err)), true
		}

		var msg strings.Builder
		broken := false
		for _, denom := range k.GetApprovedLiquidities(ctx) {
			pair, found, err := k.GetLiquidityPair(ctx, denom)
			if err != nil || !found {
				broken = true
				fmt.Fprintf(&msg, "\tapproved liquidity %s has no pair\n", denom)
				continue
			}
			if pair.Tick.Period%params.RewardPeriod != 0 {
				broken = true
				fmt.Fprintf(&msg, "\tliquidity %s tick period %d not aligned\n", denom, pair.Tick.Period)
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "tick-period", msg.String()), broken
	}
}
