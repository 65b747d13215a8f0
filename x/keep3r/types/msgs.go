package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the server API for keep3r messages
type MsgServer interface {
	SetGovernance(context.Context, *MsgSetGovernance) (*MsgResponse, error)
	AcceptGovernance(context.Context, *MsgAcceptGovernance) (*MsgResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgResponse, error)
	AddSlasher(context.Context, *MsgAddSlasher) (*MsgResponse, error)
	RemoveSlasher(context.Context, *MsgRemoveSlasher) (*MsgResponse, error)
	AddDisputer(context.Context, *MsgAddDisputer) (*MsgResponse, error)
	RemoveDisputer(context.Context, *MsgRemoveDisputer) (*MsgResponse, error)
	ApproveLiquidity(context.Context, *MsgApproveLiquidity) (*MsgResponse, error)
	RevokeLiquidity(context.Context, *MsgRevokeLiquidity) (*MsgResponse, error)
	ForceLiquidityCreditsToJob(context.Context, *MsgForceLiquidityCreditsToJob) (*MsgResponse, error)
	AddJob(context.Context, *MsgAddJob) (*MsgResponse, error)
	ChangeJobOwnership(context.Context, *MsgChangeJobOwnership) (*MsgResponse, error)
	AcceptJobOwnership(context.Context, *MsgAcceptJobOwnership) (*MsgResponse, error)
	AddTokenCreditsToJob(context.Context, *MsgAddTokenCreditsToJob) (*MsgResponse, error)
	WithdrawTokenCreditsFromJob(context.Context, *MsgWithdrawTokenCreditsFromJob) (*MsgResponse, error)
	AddLiquidityToJob(context.Context, *MsgAddLiquidityToJob) (*MsgResponse, error)
	UnbondLiquidityFromJob(context.Context, *MsgUnbondLiquidityFromJob) (*MsgResponse, error)
	WithdrawLiquidityFromJob(context.Context, *MsgWithdrawLiquidityFromJob) (*MsgResponse, error)
	MigrateJob(context.Context, *MsgMigrateJob) (*MsgResponse, error)
	AcceptJobMigration(context.Context, *MsgAcceptJobMigration) (*MsgResponse, error)
	Bond(context.Context, *MsgBond) (*MsgResponse, error)
	Activate(context.Context, *MsgActivate) (*MsgResponse, error)
	Unbond(context.Context, *MsgUnbond) (*MsgResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgResponse, error)
	IsKeeper(context.Context, *MsgIsKeeper) (*MsgIsKeeperResponse, error)
	Worked(context.Context, *MsgWorked) (*MsgResponse, error)
	BondedPayment(context.Context, *MsgBondedPayment) (*MsgResponse, error)
	DirectTokenPayment(context.Context, *MsgDirectTokenPayment) (*MsgResponse, error)
	Dispute(context.Context, *MsgDispute) (*MsgResponse, error)
	Resolve(context.Context, *MsgResolve) (*MsgResponse, error)
	Slash(context.Context, *MsgSlash) (*MsgResponse, error)
	Revoke(context.Context, *MsgRevoke) (*MsgResponse, error)
	SlashTokenFromJob(context.Context, *MsgSlashTokenFromJob) (*MsgResponse, error)
	SlashLiquidityFromJob(context.Context, *MsgSlashLiquidityFromJob) (*MsgResponse, error)
}

// MsgResponse is the empty response of every keep3r message
type MsgResponse struct{}

// MsgSetGovernance proposes a new governance address
type MsgSetGovernance struct {
	Governance string `json:"governance"`
	Pending    string `json:"pending"`
}

// MsgAcceptGovernance completes a governance hand-over
type MsgAcceptGovernance struct {
	Pending string `json:"pending"`
}

// MsgUpdateParams replaces the module parameters
type MsgUpdateParams struct {
	Governance string `json:"governance"`
	Params     Params `json:"params"`
}

// MsgAddSlasher grants the slasher role
type MsgAddSlasher struct {
	Governance string `json:"governance"`
	Slasher    string `json:"slasher"`
}

// MsgRemoveSlasher revokes the slasher role
type MsgRemoveSlasher struct {
	Governance string `json:"governance"`
	Slasher    string `json:"slasher"`
}

// MsgAddDisputer grants the disputer role
type MsgAddDisputer struct {
	Governance string `json:"governance"`
	Disputer   string `json:"disputer"`
}

// MsgRemoveDisputer revokes the disputer role
type MsgRemoveDisputer struct {
	Governance string `json:"governance"`
	Disputer   string `json:"disputer"`
}

// MsgApproveLiquidity allows a liquidity denom to mint credits
type MsgApproveLiquidity struct {
	Governance string `json:"governance"`
	Liquidity  string `json:"liquidity"`
}

// MsgRevokeLiquidity stops a liquidity denom from minting credits
type MsgRevokeLiquidity struct {
	Governance string `json:"governance"`
	Liquidity  string `json:"liquidity"`
}

// MsgForceLiquidityCreditsToJob grants liquidity credits to a job without a pledge
type MsgForceLiquidityCreditsToJob struct {
	Governance string   `json:"governance"`
	Job        string   `json:"job"`
	Amount     math.Int `json:"amount"`
}

// MsgAddJob registers a job
type MsgAddJob struct {
	Owner string `json:"owner"`
	Job   string `json:"job"`
}

// MsgChangeJobOwnership proposes a new job owner
type MsgChangeJobOwnership struct {
	Owner    string `json:"owner"`
	Job      string `json:"job"`
	NewOwner string `json:"new_owner"`
}

// MsgAcceptJobOwnership completes a job ownership transfer
type MsgAcceptJobOwnership struct {
	PendingOwner string `json:"pending_owner"`
	Job          string `json:"job"`
}

// MsgAddTokenCreditsToJob funds a job with token credits
type MsgAddTokenCreditsToJob struct {
	Sender string   `json:"sender"`
	Job    string   `json:"job"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// MsgWithdrawTokenCreditsFromJob withdraws token credits of a job
type MsgWithdrawTokenCreditsFromJob struct {
	Owner    string   `json:"owner"`
	Job      string   `json:"job"`
	Denom    string   `json:"denom"`
	Amount   math.Int `json:"amount"`
	Receiver string   `json:"receiver"`
}

// MsgAddLiquidityToJob pledges liquidity to a job
type MsgAddLiquidityToJob struct {
	Sender    string   `json:"sender"`
	Job       string   `json:"job"`
	Liquidity string   `json:"liquidity"`
	Amount    math.Int `json:"amount"`
}

// MsgUnbondLiquidityFromJob starts the withdrawal of pledged liquidity
type MsgUnbondLiquidityFromJob struct {
	Owner     string   `json:"owner"`
	Job       string   `json:"job"`
	Liquidity string   `json:"liquidity"`
	Amount    math.Int `json:"amount"`
}

// MsgWithdrawLiquidityFromJob withdraws unbonded liquidity
type MsgWithdrawLiquidityFromJob struct {
	Owner     string `json:"owner"`
	Job       string `json:"job"`
	Liquidity string `json:"liquidity"`
	Receiver  string `json:"receiver"`
}

// MsgMigrateJob requests a job migration
type MsgMigrateJob struct {
	Owner string `json:"owner"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// MsgAcceptJobMigration completes a job migration
type MsgAcceptJobMigration struct {
	Owner string `json:"owner"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// MsgBond bonds tokens as a keeper
type MsgBond struct {
	Keeper string   `json:"keeper"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// MsgActivate activates pending bonds
type MsgActivate struct {
	Keeper string `json:"keeper"`
	Denom  string `json:"denom"`
}

// MsgUnbond starts unbonding active bonds
type MsgUnbond struct {
	Keeper string   `json:"keeper"`
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// MsgWithdraw withdraws pending unbonds
type MsgWithdraw struct {
	Keeper string `json:"keeper"`
	Denom  string `json:"denom"`
}

// MsgIsKeeper starts metering a unit of work for the signing job. When Bond is set the keeper
// must also hold MinBond of it, have earned Earned and be at least Age seconds old.
type MsgIsKeeper struct {
	Job     string   `json:"job"`
	Keeper  string   `json:"keeper"`
	Bond    string   `json:"bond,omitempty"`
	MinBond math.Int `json:"min_bond"`
	Earned  math.Int `json:"earned"`
	Age     uint64   `json:"age,omitempty"`
}

// MsgIsKeeperResponse reports whether the keeper qualified
type MsgIsKeeperResponse struct {
	IsKeeper bool `json:"is_keeper"`
}

// MsgWorked pays a keeper for metered work out of the liquidity credits of the signing job
type MsgWorked struct {
	Job    string `json:"job"`
	Keeper string `json:"keeper"`
}

// MsgBondedPayment pays a keeper a fixed amount of liquidity credits
type MsgBondedPayment struct {
	Job    string   `json:"job"`
	Keeper string   `json:"keeper"`
	Amount math.Int `json:"amount"`
}

// MsgDirectTokenPayment pays a keeper out of token credits
type MsgDirectTokenPayment struct {
	Job    string   `json:"job"`
	Denom  string   `json:"denom"`
	Keeper string   `json:"keeper"`
	Amount math.Int `json:"amount"`
}

// MsgDispute flags a job or keeper
type MsgDispute struct {
	Disputer string `json:"disputer"`
	Target   string `json:"target"`
}

// MsgResolve clears a dispute
type MsgResolve struct {
	Disputer string `json:"disputer"`
	Target   string `json:"target"`
}

// MsgSlash slashes bonds of a disputed keeper
type MsgSlash struct {
	Slasher      string   `json:"slasher"`
	Keeper       string   `json:"keeper"`
	Denom        string   `json:"denom"`
	BondAmount   math.Int `json:"bond_amount"`
	UnbondAmount math.Int `json:"unbond_amount"`
}

// MsgRevoke removes a disputed keeper and slashes its KP3R
type MsgRevoke struct {
	Slasher string `json:"slasher"`
	Keeper  string `json:"keeper"`
}

// MsgSlashTokenFromJob slashes token credits of a disputed job
type MsgSlashTokenFromJob struct {
	Slasher string   `json:"slasher"`
	Job     string   `json:"job"`
	Denom   string   `json:"denom"`
	Amount  math.Int `json:"amount"`
}

// MsgSlashLiquidityFromJob slashes pledged liquidity of a disputed job
type MsgSlashLiquidityFromJob struct {
	Slasher   string   `json:"slasher"`
	Job       string   `json:"job"`
	Liquidity string   `json:"liquidity"`
	Amount    math.Int `json:"amount"`
}

func validateAddress(field, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return fmt.Errorf("invalid %s address: %w", field, err)
	}
	return nil
}

func validateAddresses(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if err := validateAddress(fields[i], fields[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func validatePositive(field string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return fmt.Errorf("%s must be positive", field)
	}
	return nil
}

func validateDenom(field, denom string) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	return nil
}

func signer(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// GetSigners implementations assume addresses were validated in ValidateBasic

// GetSigners returns the expected signers for MsgSetGovernance
func (msg *MsgSetGovernance) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgAcceptGovernance
func (msg *MsgAcceptGovernance) GetSigners() []sdk.AccAddress { return signer(msg.Pending) }

// GetSigners returns the expected signers for MsgUpdateParams
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgAddSlasher
func (msg *MsgAddSlasher) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgRemoveSlasher
func (msg *MsgRemoveSlasher) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgAddDisputer
func (msg *MsgAddDisputer) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgRemoveDisputer
func (msg *MsgRemoveDisputer) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgApproveLiquidity
func (msg *MsgApproveLiquidity) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgRevokeLiquidity
func (msg *MsgRevokeLiquidity) GetSigners() []sdk.AccAddress { return signer(msg.Governance) }

// GetSigners returns the expected signers for MsgForceLiquidityCreditsToJob
func (msg *MsgForceLiquidityCreditsToJob) GetSigners() []sdk.AccAddress {
	return signer(msg.Governance)
}

// GetSigners returns the expected signers for MsgAddJob
func (msg *MsgAddJob) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// GetSigners returns the expected signers for MsgChangeJobOwnership
func (msg *MsgChangeJobOwnership) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// GetSigners returns the expected signers for MsgAcceptJobOwnership
func (msg *MsgAcceptJobOwnership) GetSigners() []sdk.AccAddress { return signer(msg.PendingOwner) }

// GetSigners returns the expected signers for MsgAddTokenCreditsToJob
func (msg *MsgAddTokenCreditsToJob) GetSigners() []sdk.AccAddress { return signer(msg.Sender) }

// GetSigners returns the expected signers for MsgWithdrawTokenCreditsFromJob
func (msg *MsgWithdrawTokenCreditsFromJob) GetSigners() []sdk.AccAddress {
	return signer(msg.Owner)
}

// GetSigners returns the expected signers for MsgAddLiquidityToJob
func (msg *MsgAddLiquidityToJob) GetSigners() []sdk.AccAddress { return signer(msg.Sender) }

// GetSigners returns the expected signers for MsgUnbondLiquidityFromJob
func (msg *MsgUnbondLiquidityFromJob) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// GetSigners returns the expected signers for MsgWithdrawLiquidityFromJob
func (msg *MsgWithdrawLiquidityFromJob) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// GetSigners returns the expected signers for MsgMigrateJob
func (msg *MsgMigrateJob) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// GetSigners returns the expected signers for MsgAcceptJobMigration
func (msg *MsgAcceptJobMigration) GetSigners() []sdk.AccAddress { return signer(msg.Owner) }

// GetSigners returns the expected signers for MsgBond
func (msg *MsgBond) GetSigners() []sdk.AccAddress { return signer(msg.Keeper) }

// GetSigners returns the expected signers for MsgActivate
func (msg *MsgActivate) GetSigners() []sdk.AccAddress { return signer(msg.Keeper) }

// GetSigners returns the expected signers for MsgUnbond
func (msg *MsgUnbond) GetSigners() []sdk.AccAddress { return signer(msg.Keeper) }

// GetSigners returns the expected signers for MsgWithdraw
func (msg *MsgWithdraw) GetSigners() []sdk.AccAddress { return signer(msg.Keeper) }

// GetSigners returns the expected signers for MsgIsKeeper
func (msg *MsgIsKeeper) GetSigners() []sdk.AccAddress { return signer(msg.Job) }

// GetSigners returns the expected signers for MsgWorked
func (msg *MsgWorked) GetSigners() []sdk.AccAddress { return signer(msg.Job) }

// GetSigners returns the expected signers for MsgBondedPayment
func (msg *MsgBondedPayment) GetSigners() []sdk.AccAddress { return signer(msg.Job) }

// GetSigners returns the expected signers for MsgDirectTokenPayment
func (msg *MsgDirectTokenPayment) GetSigners() []sdk.AccAddress { return signer(msg.Job) }

// GetSigners returns the expected signers for MsgDispute
func (msg *MsgDispute) GetSigners() []sdk.AccAddress { return signer(msg.Disputer) }

// GetSigners returns the expected signers for MsgResolve
func (msg *MsgResolve) GetSigners() []sdk.AccAddress { return signer(msg.Disputer) }

// GetSigners returns the expected signers for MsgSlash
func (msg *MsgSlash) GetSigners() []sdk.AccAddress { return signer(msg.Slasher) }

// GetSigners returns the expected signers for MsgRevoke
func (msg *MsgRevoke) GetSigners() []sdk.AccAddress { return signer(msg.Slasher) }

// GetSigners returns the expected signers for MsgSlashTokenFromJob
func (msg *MsgSlashTokenFromJob) GetSigners() []sdk.AccAddress { return signer(msg.Slasher) }

// GetSigners returns the expected signers for MsgSlashLiquidityFromJob
func (msg *MsgSlashLiquidityFromJob) GetSigners() []sdk.AccAddress { return signer(msg.Slasher) }

// ValidateBasic performs basic validation of MsgSetGovernance
func (msg *MsgSetGovernance) ValidateBasic() error {
	return validateAddresses("governance", msg.Governance, "pending governance", msg.Pending)
}

// ValidateBasic performs basic validation of MsgAcceptGovernance
func (msg *MsgAcceptGovernance) ValidateBasic() error {
	return validateAddress("pending governance", msg.Pending)
}

// ValidateBasic performs basic validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if err := validateAddress("governance", msg.Governance); err != nil {
		return err
	}
	return msg.Params.Validate()
}

// ValidateBasic performs basic validation of MsgAddSlasher
func (msg *MsgAddSlasher) ValidateBasic() error {
	return validateAddresses("governance", msg.Governance, "slasher", msg.Slasher)
}

// ValidateBasic performs basic validation of MsgRemoveSlasher
func (msg *MsgRemoveSlasher) ValidateBasic() error {
	return validateAddresses("governance", msg.Governance, "slasher", msg.Slasher)
}

// ValidateBasic performs basic validation of MsgAddDisputer
func (msg *MsgAddDisputer) ValidateBasic() error {
	return validateAddresses("governance", msg.Governance, "disputer", msg.Disputer)
}

// ValidateBasic performs basic validation of MsgRemoveDisputer
func (msg *MsgRemoveDisputer) ValidateBasic() error {
	return validateAddresses("governance", msg.Governance, "disputer", msg.Disputer)
}

// ValidateBasic performs basic validation of MsgApproveLiquidity
func (msg *MsgApproveLiquidity) ValidateBasic() error {
	if err := validateAddress("governance", msg.Governance); err != nil {
		return err
	}
	return validateDenom("liquidity", msg.Liquidity)
}

// ValidateBasic performs basic validation of MsgRevokeLiquidity
func (msg *MsgRevokeLiquidity) ValidateBasic() error {
	if err := validateAddress("governance", msg.Governance); err != nil {
		return err
	}
	return validateDenom("liquidity", msg.Liquidity)
}

// ValidateBasic performs basic validation of MsgForceLiquidityCreditsToJob
func (msg *MsgForceLiquidityCreditsToJob) ValidateBasic() error {
	if err := validateAddresses("governance", msg.Governance, "job", msg.Job); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgAddJob
func (msg *MsgAddJob) ValidateBasic() error {
	return validateAddresses("owner", msg.Owner, "job", msg.Job)
}

// ValidateBasic performs basic validation of MsgChangeJobOwnership
func (msg *MsgChangeJobOwnership) ValidateBasic() error {
	return validateAddresses("owner", msg.Owner, "job", msg.Job, "new owner", msg.NewOwner)
}

// ValidateBasic performs basic validation of MsgAcceptJobOwnership
func (msg *MsgAcceptJobOwnership) ValidateBasic() error {
	return validateAddresses("pending owner", msg.PendingOwner, "job", msg.Job)
}

// ValidateBasic performs basic validation of MsgAddTokenCreditsToJob
func (msg *MsgAddTokenCreditsToJob) ValidateBasic() error {
	if err := validateAddresses("sender", msg.Sender, "job", msg.Job); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgWithdrawTokenCreditsFromJob
func (msg *MsgWithdrawTokenCreditsFromJob) ValidateBasic() error {
	if err := validateAddresses("owner", msg.Owner, "job", msg.Job, "receiver", msg.Receiver); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgAddLiquidityToJob
func (msg *MsgAddLiquidityToJob) ValidateBasic() error {
	if err := validateAddresses("sender", msg.Sender, "job", msg.Job); err != nil {
		return err
	}
	if err := validateDenom("liquidity", msg.Liquidity); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgUnbondLiquidityFromJob
func (msg *MsgUnbondLiquidityFromJob) ValidateBasic() error {
	if err := validateAddresses("owner", msg.Owner, "job", msg.Job); err != nil {
		return err
	}
	if err := validateDenom("liquidity", msg.Liquidity); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgWithdrawLiquidityFromJob
func (msg *MsgWithdrawLiquidityFromJob) ValidateBasic() error {
	if err := validateAddresses("owner", msg.Owner, "job", msg.Job, "receiver", msg.Receiver); err != nil {
		return err
	}
	return validateDenom("liquidity", msg.Liquidity)
}

// ValidateBasic performs basic validation of MsgMigrateJob
func (msg *MsgMigrateJob) ValidateBasic() error {
	if err := validateAddresses("owner", msg.Owner, "from job", msg.From, "to job", msg.To); err != nil {
		return err
	}
	if msg.From == msg.To {
		return fmt.Errorf("job cannot migrate to itself")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgAcceptJobMigration
func (msg *MsgAcceptJobMigration) ValidateBasic() error {
	return validateAddresses("owner", msg.Owner, "from job", msg.From, "to job", msg.To)
}

// ValidateBasic performs basic validation of MsgBond
func (msg *MsgBond) ValidateBasic() error {
	if err := validateAddress("keeper", msg.Keeper); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgActivate
func (msg *MsgActivate) ValidateBasic() error {
	if err := validateAddress("keeper", msg.Keeper); err != nil {
		return err
	}
	return validateDenom("denom", msg.Denom)
}

// ValidateBasic performs basic validation of MsgUnbond
func (msg *MsgUnbond) ValidateBasic() error {
	if err := validateAddress("keeper", msg.Keeper); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgWithdraw
func (msg *MsgWithdraw) ValidateBasic() error {
	if err := validateAddress("keeper", msg.Keeper); err != nil {
		return err
	}
	return validateDenom("denom", msg.Denom)
}

// ValidateBasic performs basic validation of MsgIsKeeper
func (msg *MsgIsKeeper) ValidateBasic() error {
	if err := validateAddresses("job", msg.Job, "keeper", msg.Keeper); err != nil {
		return err
	}
	if msg.Bond == "" {
		return nil
	}
	if err := validateDenom("bond", msg.Bond); err != nil {
		return err
	}
	if msg.MinBond.IsNil() || msg.MinBond.IsNegative() {
		return fmt.Errorf("min bond must be non-negative")
	}
	if msg.Earned.IsNil() || msg.Earned.IsNegative() {
		return fmt.Errorf("earned must be non-negative")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgWorked
func (msg *MsgWorked) ValidateBasic() error {
	return validateAddresses("job", msg.Job, "keeper", msg.Keeper)
}

// ValidateBasic performs basic validation of MsgBondedPayment
func (msg *MsgBondedPayment) ValidateBasic() error {
	if err := validateAddresses("job", msg.Job, "keeper", msg.Keeper); err != nil {
		return err
	}
	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgDirectTokenPayment
func (msg *MsgDirectTokenPayment) ValidateBasic() error {
	if err := validateAddresses("job", msg.Job, "keeper", msg.Keeper); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgDispute
func (msg *MsgDispute) ValidateBasic() error {
	return validateAddresses("disputer", msg.Disputer, "target", msg.Target)
}

// ValidateBasic performs basic validation of MsgResolve
func (msg *MsgResolve) ValidateBasic() error {
	return validateAddresses("disputer", msg.Disputer, "target", msg.Target)
}

// ValidateBasic performs basic validation of MsgSlash
func (msg *MsgSlash) ValidateBasic() error {
	if err := validateAddresses("slasher", msg.Slasher, "keeper", msg.Keeper); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	if msg.BondAmount.IsNil() || msg.BondAmount.IsNegative() {
		return fmt.Errorf("bond amount must be non-negative")
	}
	if msg.UnbondAmount.IsNil() || msg.UnbondAmount.IsNegative() {
		return fmt.Errorf("unbond amount must be non-negative")
	}
	if msg.BondAmount.IsZero() && msg.UnbondAmount.IsZero() {
		return fmt.Errorf("nothing to slash")
	}
	return nil
}

// ValidateBasic performs basic validation of MsgRevoke
func (msg *MsgRevoke) ValidateBasic() error {
	return validateAddresses("slasher", msg.Slasher, "keeper", msg.Keeper)
}

// ValidateBasic performs basic validation of MsgSlashTokenFromJob
func (msg *MsgSlashTokenFromJob) ValidateBasic() error {
	if err := validateAddresses("slasher", msg.Slasher, "job", msg.Job); err != nil {
		return err
	}
	if err := validateDenom("denom", msg.Denom); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}

// ValidateBasic performs basic validation of MsgSlashLiquidityFromJob
func (msg *MsgSlashLiquidityFromJob) ValidateBasic() error {
	if err := validateAddresses("slasher", msg.Slasher, "job", msg.Job); err != nil {
		return err
	}
	if err := validateDenom("liquidity", msg.Liquidity); err != nil {
		return err
	}
	return validatePositive("amount", msg.Amount)
}
