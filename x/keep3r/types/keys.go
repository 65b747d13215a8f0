package types

const (
	// ModuleName defines the module name
	ModuleName = "keep3r"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// TStoreKey defines the transient store key holding the per-transaction gas snapshot
	TStoreKey = "transient_" + ModuleName

	// BoostBase is the basis point denominator used for boosts and fees
	BoostBase = 10_000

	// MinTick and MaxTick bound the average tick accepted from pool observations
	MinTick = -887272
	MaxTick = 887272
)
