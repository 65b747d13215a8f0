package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// GovernanceKey stores the current governance address
	GovernanceKey = []byte{0x02}

	// PendingGovernanceKey stores the proposed governance address
	PendingGovernanceKey = []byte{0x03}

	// SlasherSetPrefix is the enumerable set of slashers
	SlasherSetPrefix = []byte{0x04}

	// DisputerSetPrefix is the enumerable set of disputers
	DisputerSetPrefix = []byte{0x05}

	// JobSetPrefix is the enumerable set of registered jobs
	JobSetPrefix = []byte{0x10}

	// JobOwnerKeyPrefix is the prefix for job owners
	JobOwnerKeyPrefix = []byte{0x11}

	// JobPendingOwnerKeyPrefix is the prefix for proposed job owners
	JobPendingOwnerKeyPrefix = []byte{0x12}

	// JobCreditsKeyPrefix is the prefix for job liquidity credit accountance
	JobCreditsKeyPrefix = []byte{0x13}

	// JobTokenSetPrefix is the prefix for the per-job set of credited tokens
	JobTokenSetPrefix = []byte{0x14}

	// JobTokenCreditKeyPrefix is the prefix for per-job token credits
	JobTokenCreditKeyPrefix = []byte{0x15}

	// JobLiquiditySetPrefix is the prefix for the per-job set of pledged liquidities
	JobLiquiditySetPrefix = []byte{0x16}

	// LiquidityAmountKeyPrefix is the prefix for per-job liquidity amounts
	LiquidityAmountKeyPrefix = []byte{0x17}

	// PendingMigrationKeyPrefix is the prefix for pending job migrations
	PendingMigrationKeyPrefix = []byte{0x18}

	// KeeperSetPrefix is the enumerable set of activated keepers
	KeeperSetPrefix = []byte{0x20}

	// BondBalanceKeyPrefix is the prefix for per holder and denom bonding state
	BondBalanceKeyPrefix = []byte{0x21}

	// HolderInfoKeyPrefix is the prefix for per holder keeper statistics
	HolderInfoKeyPrefix = []byte{0x22}

	// DisputeKeyPrefix is the prefix for dispute flags
	DisputeKeyPrefix = []byte{0x30}

	// ApprovedLiquiditySetPrefix is the enumerable set of approved liquidity denoms
	ApprovedLiquiditySetPrefix = []byte{0x40}

	// LiquidityPairKeyPrefix is the prefix for approved liquidity pool bindings and tick caches
	LiquidityPairKeyPrefix = []byte{0x41}

	// InitialGasKey is the transient store key of the gas snapshot taken by IsKeeper
	InitialGasKey = []byte{0x01}
)

// JobOwnerKey returns the store key for a job owner
func JobOwnerKey(job sdk.AccAddress) []byte {
	return append(JobOwnerKeyPrefix, address.MustLengthPrefix(job)...)
}

// JobPendingOwnerKey returns the store key for a job pending owner
func JobPendingOwnerKey(job sdk.AccAddress) []byte {
	return append(JobPendingOwnerKeyPrefix, address.MustLengthPrefix(job)...)
}

// JobCreditsKey returns the store key for a job credit accountance
func JobCreditsKey(job sdk.AccAddress) []byte {
	return append(JobCreditsKeyPrefix, address.MustLengthPrefix(job)...)
}

// JobTokenSetKey returns the prefix of the token set of a job
func JobTokenSetKey(job sdk.AccAddress) []byte {
	return append(JobTokenSetPrefix, address.MustLengthPrefix(job)...)
}

// JobTokenCreditKey returns the store key for a job token credit
func JobTokenCreditKey(job sdk.AccAddress, denom string) []byte {
	key := append(JobTokenCreditKeyPrefix, address.MustLengthPrefix(job)...)
	return append(key, []byte(denom)...)
}

// JobLiquiditySetKey returns the prefix of the liquidity set of a job
func JobLiquiditySetKey(job sdk.AccAddress) []byte {
	return append(JobLiquiditySetPrefix, address.MustLengthPrefix(job)...)
}

// LiquidityAmountKey returns the store key for the amount of a liquidity pledged to a job
func LiquidityAmountKey(job sdk.AccAddress, denom string) []byte {
	key := append(LiquidityAmountKeyPrefix, address.MustLengthPrefix(job)...)
	return append(key, []byte(denom)...)
}

// PendingMigrationKey returns the store key for the pending migration of a job
func PendingMigrationKey(from sdk.AccAddress) []byte {
	return append(PendingMigrationKeyPrefix, address.MustLengthPrefix(from)...)
}

// BondBalanceKey returns the store key for the bonding state of a holder and denom
func BondBalanceKey(holder sdk.AccAddress, denom string) []byte {
	key := append(BondBalanceKeyPrefix, address.MustLengthPrefix(holder)...)
	return append(key, []byte(denom)...)
}

// HolderBondsPrefix returns the prefix of all bonding states of a holder
func HolderBondsPrefix(holder sdk.AccAddress) []byte {
	return append(BondBalanceKeyPrefix, address.MustLengthPrefix(holder)...)
}

// HolderInfoKey returns the store key for the keeper statistics of a holder
func HolderInfoKey(holder sdk.AccAddress) []byte {
	return append(HolderInfoKeyPrefix, address.MustLengthPrefix(holder)...)
}

// DisputeKey returns the store key for the dispute flag of a job or keeper
func DisputeKey(addr sdk.AccAddress) []byte {
	return append(DisputeKeyPrefix, address.MustLengthPrefix(addr)...)
}

// LiquidityPairKey returns the store key for an approved liquidity
func LiquidityPairKey(denom string) []byte {
	return append(LiquidityPairKeyPrefix, []byte(denom)...)
}
