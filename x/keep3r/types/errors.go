package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Keep3r module sentinel errors

var (
	// Authorization errors
	ErrOnlyGovernance        = sdkerrors.Register(ModuleName, 2, "only governance")
	ErrOnlyPendingGovernance = sdkerrors.Register(ModuleName, 3, "only pending governance")
	ErrOnlyJobOwner          = sdkerrors.Register(ModuleName, 4, "only job owner")
	ErrOnlyPendingJobOwner   = sdkerrors.Register(ModuleName, 5, "only pending job owner")
	ErrOnlySlasher           = sdkerrors.Register(ModuleName, 6, "only slasher")
	ErrOnlyDisputer          = sdkerrors.Register(ModuleName, 7, "only disputer")

	// Validation errors
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 10, "invalid address")
	ErrInvalidAmount    = sdkerrors.Register(ModuleName, 11, "invalid amount")
	ErrInvalidDenom     = sdkerrors.Register(ModuleName, 12, "invalid denom")
	ErrInvalidParams    = sdkerrors.Register(ModuleName, 13, "invalid params")
	ErrInvalidGenesis   = sdkerrors.Register(ModuleName, 14, "invalid genesis state")
	ErrValidationFailed = sdkerrors.Register(ModuleName, 15, "message validation failed")

	// Job and keeper registry errors
	ErrJobUnavailable  = sdkerrors.Register(ModuleName, 20, "job unavailable")
	ErrJobAlreadyAdded = sdkerrors.Register(ModuleName, 21, "job already added")
	ErrAlreadyAKeeper  = sdkerrors.Register(ModuleName, 22, "address already bonded as a keeper")
	ErrAlreadyAJob     = sdkerrors.Register(ModuleName, 23, "address already registered as a job")
	ErrTokenUnallowed  = sdkerrors.Register(ModuleName, 24, "token not allowed for direct credits")

	// Liquidity registry errors
	ErrLiquidityPairApproved   = sdkerrors.Register(ModuleName, 30, "liquidity pair already approved")
	ErrLiquidityPairUnexistent = sdkerrors.Register(ModuleName, 31, "liquidity pair does not exist")
	ErrLiquidityPairUnapproved = sdkerrors.Register(ModuleName, 32, "liquidity pair not approved")
	ErrJobLiquidityUnexistent  = sdkerrors.Register(ModuleName, 33, "job has no such liquidity")
	ErrJobTokenUnexistent      = sdkerrors.Register(ModuleName, 34, "job has no such token credits")

	// Role and dispute errors
	ErrSlasherExistent    = sdkerrors.Register(ModuleName, 40, "slasher already exists")
	ErrSlasherUnexistent  = sdkerrors.Register(ModuleName, 41, "slasher does not exist")
	ErrDisputerExistent   = sdkerrors.Register(ModuleName, 42, "disputer already exists")
	ErrDisputerUnexistent = sdkerrors.Register(ModuleName, 43, "disputer does not exist")
	ErrAlreadyDisputed    = sdkerrors.Register(ModuleName, 44, "already disputed")
	ErrNotDisputed        = sdkerrors.Register(ModuleName, 45, "not disputed")
	ErrDisputed           = sdkerrors.Register(ModuleName, 46, "disputed")
	ErrJobDisputed        = sdkerrors.Register(ModuleName, 47, "job disputed")

	// Migration errors
	ErrJobMigrationImpossible  = sdkerrors.Register(ModuleName, 50, "job cannot migrate to itself")
	ErrJobMigrationUnavailable = sdkerrors.Register(ModuleName, 51, "job migration unavailable")

	// Bonding errors
	ErrBondsUnexistent   = sdkerrors.Register(ModuleName, 60, "no pending bonds")
	ErrUnbondsUnexistent = sdkerrors.Register(ModuleName, 61, "no pending unbonds")
	ErrGasNotInitialized = sdkerrors.Register(ModuleName, 62, "gas snapshot not initialized")

	// Timing errors
	ErrBondsLocked           = sdkerrors.Register(ModuleName, 70, "bonds locked")
	ErrUnbondsLocked         = sdkerrors.Register(ModuleName, 71, "unbonds locked")
	ErrJobMigrationLocked    = sdkerrors.Register(ModuleName, 72, "job migration locked")
	ErrJobTokenCreditsLocked = sdkerrors.Register(ModuleName, 73, "job token credits locked")

	// Insufficiency errors
	ErrInsufficientFunds           = sdkerrors.Register(ModuleName, 80, "insufficient funds")
	ErrInsufficientJobTokenCredits = sdkerrors.Register(ModuleName, 81, "insufficient job token credits")
	ErrJobLiquidityInsufficient    = sdkerrors.Register(ModuleName, 82, "insufficient job liquidity")
	ErrJobLiquidityLessThanMin     = sdkerrors.Register(ModuleName, 83, "job liquidity below minimum")
	ErrInsufficientBond            = sdkerrors.Register(ModuleName, 84, "insufficient bonded balance")

	// External call errors
	ErrTransferFailed     = sdkerrors.Register(ModuleName, 90, "token transfer failed")
	ErrOracleUnavailable  = sdkerrors.Register(ModuleName, 91, "price oracle unavailable")
	ErrLiquidityPosition  = sdkerrors.Register(ModuleName, 92, "liquidity position lookup failed")
	ErrBaseFeeUnavailable = sdkerrors.Register(ModuleName, 93, "base fee unavailable")
)
