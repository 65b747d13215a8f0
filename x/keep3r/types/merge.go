package types

import (
	"cosmossdk.io/math"
)

// JobLedger is a snapshot of everything a job holds: liquidity credit accountance, token
// credits and liquidity pledges, in set order.
type JobLedger struct {
	Credits     JobCredits        `json:"credits"`
	Tokens      []TokenCredit     `json:"tokens"`
	Liquidities []LiquidityAmount `json:"liquidities"`
}

// MergeJobLedgers returns the ledger of a job that absorbed from into to. Balances held in
// both ledgers are summed; denoms only held by from are appended after to's own denoms.
// Neither input is modified. The token credit lock keeps the most recent funding time.
func MergeJobLedgers(from, to JobLedger) JobLedger {
	merged := JobLedger{
		Credits: JobCredits{
			PeriodCredits:    to.Credits.PeriodCredits.Add(from.Credits.PeriodCredits),
			LiquidityCredits: to.Credits.LiquidityCredits.Add(from.Credits.LiquidityCredits),
			RewardedAt:       to.Credits.RewardedAt,
			WorkedAt:         to.Credits.WorkedAt,
		},
		Tokens:      make([]TokenCredit, 0, len(to.Tokens)+len(from.Tokens)),
		Liquidities: make([]LiquidityAmount, 0, len(to.Liquidities)+len(from.Liquidities)),
	}

	tokenIdx := make(map[string]int, len(to.Tokens)+len(from.Tokens))
	for _, tc := range append(append([]TokenCredit{}, to.Tokens...), from.Tokens...) {
		if i, ok := tokenIdx[tc.Denom]; ok {
			merged.Tokens[i].Amount = merged.Tokens[i].Amount.Add(tc.Amount)
			if tc.AddedAt > merged.Tokens[i].AddedAt {
				merged.Tokens[i].AddedAt = tc.AddedAt
			}
			continue
		}
		tokenIdx[tc.Denom] = len(merged.Tokens)
		merged.Tokens = append(merged.Tokens, TokenCredit{Denom: tc.Denom, Amount: tc.Amount, AddedAt: tc.AddedAt})
	}

	liqIdx := make(map[string]int, len(to.Liquidities)+len(from.Liquidities))
	for _, la := range append(append([]LiquidityAmount{}, to.Liquidities...), from.Liquidities...) {
		if i, ok := liqIdx[la.Denom]; ok {
			merged.Liquidities[i].Amount = merged.Liquidities[i].Amount.Add(la.Amount)
			continue
		}
		liqIdx[la.Denom] = len(merged.Liquidities)
		merged.Liquidities = append(merged.Liquidities, LiquidityAmount{Denom: la.Denom, Amount: la.Amount})
	}

	return merged
}

// TotalTokens sums the token credits of a ledger per denom.
func (l JobLedger) TotalTokens() map[string]math.Int {
	totals := make(map[string]math.Int, len(l.Tokens))
	for _, tc := range l.Tokens {
		if cur, ok := totals[tc.Denom]; ok {
			totals[tc.Denom] = cur.Add(tc.Amount)
		} else {
			totals[tc.Denom] = tc.Amount
		}
	}
	return totals
}

// TotalLiquidities sums the liquidity pledges of a ledger per denom.
func (l JobLedger) TotalLiquidities() map[string]math.Int {
	totals := make(map[string]math.Int, len(l.Liquidities))
	for _, la := range l.Liquidities {
		if cur, ok := totals[la.Denom]; ok {
			totals[la.Denom] = cur.Add(la.Amount)
		} else {
			totals[la.Denom] = la.Amount
		}
	}
	return totals
}
