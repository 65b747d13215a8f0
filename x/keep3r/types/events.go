package types

// Event types for the Keep3r module
const (
	// Registry events
	EventTypeJobAddition         = "keep3r_job_addition"
	EventTypeJobOwnershipChange  = "keep3r_job_ownership_change"
	EventTypeJobOwnershipAssent  = "keep3r_job_ownership_assent"
	EventTypeGovernanceProposal  = "keep3r_governance_proposal"
	EventTypeGovernanceSet       = "keep3r_governance_set"
	EventTypeParamsUpdated       = "keep3r_params_updated"
	EventTypeSlasherAdded        = "keep3r_slasher_added"
	EventTypeSlasherRemoved      = "keep3r_slasher_removed"
	EventTypeDisputerAdded       = "keep3r_disputer_added"
	EventTypeDisputerRemoved     = "keep3r_disputer_removed"
	EventTypeLiquidityApproval   = "keep3r_liquidity_approval"
	EventTypeLiquidityRevocation = "keep3r_liquidity_revocation"

	// Credit events
	EventTypeTokenCreditAddition    = "keep3r_token_credit_addition"
	EventTypeTokenCreditWithdrawal  = "keep3r_token_credit_withdrawal"
	EventTypeLiquidityAddition      = "keep3r_liquidity_addition"
	EventTypeLiquidityWithdrawal    = "keep3r_liquidity_withdrawal"
	EventTypeLiquidityCreditsReward = "keep3r_liquidity_credits_reward"
	EventTypeLiquidityCreditsForced = "keep3r_liquidity_credits_forced"

	// Bonding events
	EventTypeBonding    = "keep3r_bonding"
	EventTypeActivation = "keep3r_activation"
	EventTypeUnbonding  = "keep3r_unbonding"
	EventTypeWithdrawal = "keep3r_withdrawal"

	// Work events
	EventTypeKeeperValidation = "keep3r_keeper_validation"
	EventTypeKeeperWork       = "keep3r_keeper_work"

	// Dispute events
	EventTypeDispute           = "keep3r_dispute"
	EventTypeResolve           = "keep3r_resolve"
	EventTypeKeeperSlash       = "keep3r_keeper_slash"
	EventTypeKeeperRevoke      = "keep3r_keeper_revoke"
	EventTypeJobSlashToken     = "keep3r_job_slash_token"
	EventTypeJobSlashLiquidity = "keep3r_job_slash_liquidity"

	// Migration events
	EventTypeJobMigrationRequested  = "keep3r_job_migration_requested"
	EventTypeJobMigrationSuccessful = "keep3r_job_migration_successful"
)

// Event attribute keys for the Keep3r module
const (
	AttributeKeyJob              = "job"
	AttributeKeyKeeper           = "keeper"
	AttributeKeyOwner            = "owner"
	AttributeKeyPendingOwner     = "pending_owner"
	AttributeKeyGovernance       = "governance"
	AttributeKeyAccount          = "account"
	AttributeKeySender           = "sender"
	AttributeKeyReceiver         = "receiver"
	AttributeKeyToken            = "token"
	AttributeKeyLiquidity        = "liquidity"
	AttributeKeyPool             = "pool"
	AttributeKeyAmount           = "amount"
	AttributeKeyFee              = "fee"
	AttributeKeyBondAmount       = "bond_amount"
	AttributeKeyUnbondAmount     = "unbond_amount"
	AttributeKeyRewardedAt       = "rewarded_at"
	AttributeKeyLiquidityCredits = "liquidity_credits"
	AttributeKeyPeriodCredits    = "period_credits"
	AttributeKeyGasLeft          = "gas_left"
	AttributeKeyInitialGas       = "initial_gas"
	AttributeKeyFromJob          = "from_job"
	AttributeKeyToJob            = "to_job"
	AttributeKeySlashed          = "slashed"
	AttributeKeyTransferred      = "transferred"
)
