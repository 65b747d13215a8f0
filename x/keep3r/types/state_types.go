package types

import (
	"cosmossdk.io/math"
)

// TickCache is the cached oracle state of an approved liquidity.
// Current is a tick cumulative, Difference the cumulative delta over the last observed
// reward period, and Period the start of the reward period the cache was refreshed in.
type TickCache struct {
	Current    int64  `json:"current"`
	Difference int64  `json:"difference"`
	Period     uint64 `json:"period"`
}

// LiquidityPair binds an approved liquidity denom to its oracle pool.
type LiquidityPair struct {
	Denom      string    `json:"denom"`
	Pool       string    `json:"pool"`
	KP3RToken0 bool      `json:"kp3r_token0"`
	Tick       TickCache `json:"tick"`
}

// JobCredits is the liquidity credit accountance of a job.
type JobCredits struct {
	PeriodCredits    math.Int `json:"period_credits"`
	LiquidityCredits math.Int `json:"liquidity_credits"`
	RewardedAt       uint64   `json:"rewarded_at"`
	WorkedAt         uint64   `json:"worked_at"`
}

// NewJobCredits returns an empty accountance record.
func NewJobCredits() JobCredits {
	return JobCredits{
		PeriodCredits:    math.ZeroInt(),
		LiquidityCredits: math.ZeroInt(),
	}
}

// TokenCredit is the balance of a token funded directly to a job.
type TokenCredit struct {
	Denom   string   `json:"denom"`
	Amount  math.Int `json:"amount"`
	AddedAt uint64   `json:"added_at"`
}

// LiquidityAmount is the amount of a liquidity denom pledged to a job.
type LiquidityAmount struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// PendingMigration is a job migration request awaiting acceptance by the target job owner.
type PendingMigration struct {
	To        string `json:"to"`
	CreatedAt uint64 `json:"created_at"`
}

// BondBalance is the bonding state of a holder for one denom. Keepers bond any denom,
// jobs reuse PendingUnbond and CanWithdrawAfter for unbonded liquidity.
type BondBalance struct {
	Denom            string   `json:"denom"`
	Bonded           math.Int `json:"bonded"`
	PendingBond      math.Int `json:"pending_bond"`
	PendingUnbond    math.Int `json:"pending_unbond"`
	CanActivateAfter uint64   `json:"can_activate_after"`
	CanWithdrawAfter uint64   `json:"can_withdraw_after"`
}

// NewBondBalance returns an empty bonding state for denom.
func NewBondBalance(denom string) BondBalance {
	return BondBalance{
		Denom:         denom,
		Bonded:        math.ZeroInt(),
		PendingBond:   math.ZeroInt(),
		PendingUnbond: math.ZeroInt(),
	}
}

// IsEmpty reports whether the balance carries no amounts and no locks.
func (b BondBalance) IsEmpty() bool {
	return b.Bonded.IsZero() && b.PendingBond.IsZero() && b.PendingUnbond.IsZero() &&
		b.CanActivateAfter == 0 && b.CanWithdrawAfter == 0
}

// HolderInfo carries the per-address keeper statistics.
type HolderInfo struct {
	FirstSeen     uint64   `json:"first_seen"`
	WorkCompleted math.Int `json:"work_completed"`
	HasBonded     bool     `json:"has_bonded"`
}

// NewHolderInfo returns empty keeper statistics.
func NewHolderInfo() HolderInfo {
	return HolderInfo{WorkCompleted: math.ZeroInt()}
}

// PaymentParams are the values the payment helper supplies to price a unit of work.
type PaymentParams struct {
	Boost       uint64   `json:"boost"`
	OneEthQuote math.Int `json:"one_eth_quote"`
	ExtraGas    uint64   `json:"extra_gas"`
}
