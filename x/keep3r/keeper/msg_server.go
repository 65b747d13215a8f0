package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

type validatable interface {
	ValidateBasic() error
}

// validate runs ValidateBasic on msg. Addresses of a validated message parse without error.
func validate(msg validatable) error {
	if err := msg.ValidateBasic(); err != nil {
		return types.ErrValidationFailed.Wrap(err.Error())
	}
	return nil
}

func acc(addr string) sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(addr)
}

var empty = &types.MsgResponse{}

// respond maps a keeper error to a message response.
func respond(err error) (*types.MsgResponse, error) {
	if err != nil {
		return nil, err
	}
	return empty, nil
}

// SetGovernance handles a governance hand-over proposal
func (ms msgServer) SetGovernance(ctx context.Context, msg *types.MsgSetGovernance) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.SetGovernance(ctx, acc(msg.Governance), acc(msg.Pending)))
}

// AcceptGovernance handles a governance hand-over acceptance
func (ms msgServer) AcceptGovernance(ctx context.Context, msg *types.MsgAcceptGovernance) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AcceptGovernance(ctx, acc(msg.Pending)))
}

// UpdateParams handles parameter updates
func (ms msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.UpdateParams(ctx, acc(msg.Governance), msg.Params))
}

// AddSlasher handles slasher role grants
func (ms msgServer) AddSlasher(ctx context.Context, msg *types.MsgAddSlasher) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AddSlasher(ctx, acc(msg.Governance), acc(msg.Slasher)))
}

// RemoveSlasher handles slasher role revocations
func (ms msgServer) RemoveSlasher(ctx context.Context, msg *types.MsgRemoveSlasher) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.RemoveSlasher(ctx, acc(msg.Governance), acc(msg.Slasher)))
}

// AddDisputer handles disputer role grants
func (ms msgServer) AddDisputer(ctx context.Context, msg *types.MsgAddDisputer) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AddDisputer(ctx, acc(msg.Governance), acc(msg.Disputer)))
}

// RemoveDisputer handles disputer role revocations
func (ms msgServer) RemoveDisputer(ctx context.Context, msg *types.MsgRemoveDisputer) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.RemoveDisputer(ctx, acc(msg.Governance), acc(msg.Disputer)))
}

// ApproveLiquidity handles liquidity approvals
func (ms msgServer) ApproveLiquidity(ctx context.Context, msg *types.MsgApproveLiquidity) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.ApproveLiquidity(ctx, acc(msg.Governance), msg.Liquidity))
}

// RevokeLiquidity handles liquidity revocations
func (ms msgServer) RevokeLiquidity(ctx context.Context, msg *types.MsgRevokeLiquidity) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.RevokeLiquidity(ctx, acc(msg.Governance), msg.Liquidity))
}

// ForceLiquidityCreditsToJob handles governance credit grants
func (ms msgServer) ForceLiquidityCreditsToJob(ctx context.Context, msg *types.MsgForceLiquidityCreditsToJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.ForceLiquidityCreditsToJob(ctx, acc(msg.Governance), acc(msg.Job), msg.Amount))
}

// AddJob handles job registration
func (ms msgServer) AddJob(ctx context.Context, msg *types.MsgAddJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AddJob(ctx, acc(msg.Owner), acc(msg.Job)))
}

// ChangeJobOwnership handles job ownership proposals
func (ms msgServer) ChangeJobOwnership(ctx context.Context, msg *types.MsgChangeJobOwnership) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.ChangeJobOwnership(ctx, acc(msg.Owner), acc(msg.Job), acc(msg.NewOwner)))
}

// AcceptJobOwnership handles job ownership acceptance
func (ms msgServer) AcceptJobOwnership(ctx context.Context, msg *types.MsgAcceptJobOwnership) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AcceptJobOwnership(ctx, acc(msg.PendingOwner), acc(msg.Job)))
}

// AddTokenCreditsToJob handles token credit funding
func (ms msgServer) AddTokenCreditsToJob(ctx context.Context, msg *types.MsgAddTokenCreditsToJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AddTokenCreditsToJob(ctx, acc(msg.Sender), acc(msg.Job), msg.Denom, msg.Amount))
}

// WithdrawTokenCreditsFromJob handles token credit withdrawals
func (ms msgServer) WithdrawTokenCreditsFromJob(ctx context.Context, msg *types.MsgWithdrawTokenCreditsFromJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.WithdrawTokenCreditsFromJob(
		ctx, acc(msg.Owner), acc(msg.Job), msg.Denom, msg.Amount, acc(msg.Receiver),
	))
}

// AddLiquidityToJob handles liquidity pledges
func (ms msgServer) AddLiquidityToJob(ctx context.Context, msg *types.MsgAddLiquidityToJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AddLiquidityToJob(ctx, acc(msg.Sender), acc(msg.Job), msg.Liquidity, msg.Amount))
}

// UnbondLiquidityFromJob handles liquidity unbonding
func (ms msgServer) UnbondLiquidityFromJob(ctx context.Context, msg *types.MsgUnbondLiquidityFromJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.UnbondLiquidityFromJob(ctx, acc(msg.Owner), acc(msg.Job), msg.Liquidity, msg.Amount))
}

// WithdrawLiquidityFromJob handles unbonded liquidity withdrawals
func (ms msgServer) WithdrawLiquidityFromJob(ctx context.Context, msg *types.MsgWithdrawLiquidityFromJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.WithdrawLiquidityFromJob(
		ctx, acc(msg.Owner), acc(msg.Job), msg.Liquidity, acc(msg.Receiver),
	))
}

// MigrateJob handles job migration requests
func (ms msgServer) MigrateJob(ctx context.Context, msg *types.MsgMigrateJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.MigrateJob(ctx, acc(msg.Owner), acc(msg.From), acc(msg.To)))
}

// AcceptJobMigration handles job migration acceptance
func (ms msgServer) AcceptJobMigration(ctx context.Context, msg *types.MsgAcceptJobMigration) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.AcceptJobMigration(ctx, acc(msg.Owner), acc(msg.From), acc(msg.To)))
}

// Bond handles keeper bonding
func (ms msgServer) Bond(ctx context.Context, msg *types.MsgBond) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Bond(ctx, acc(msg.Keeper), msg.Denom, msg.Amount))
}

// Activate handles bond activation
func (ms msgServer) Activate(ctx context.Context, msg *types.MsgActivate) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Activate(ctx, acc(msg.Keeper), msg.Denom))
}

// Unbond handles keeper unbonding
func (ms msgServer) Unbond(ctx context.Context, msg *types.MsgUnbond) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Unbond(ctx, acc(msg.Keeper), msg.Denom, msg.Amount))
}

// Withdraw handles unbonded withdrawals
func (ms msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Withdraw(ctx, acc(msg.Keeper), msg.Denom))
}

// IsKeeper starts metering a unit of work for the signing job
func (ms msgServer) IsKeeper(ctx context.Context, msg *types.MsgIsKeeper) (*types.MsgIsKeeperResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	if err := ms.requireWorkableJob(ctx, acc(msg.Job)); err != nil {
		return nil, err
	}
	if msg.Bond == "" {
		return &types.MsgIsKeeperResponse{IsKeeper: ms.Keeper.IsKeeper(ctx, acc(msg.Keeper))}, nil
	}
	ok, err := ms.Keeper.IsBondedKeeper(ctx, acc(msg.Keeper), msg.Bond, msg.MinBond, msg.Earned, msg.Age)
	if err != nil {
		return nil, err
	}
	return &types.MsgIsKeeperResponse{IsKeeper: ok}, nil
}

// Worked handles metered work payments
func (ms msgServer) Worked(ctx context.Context, msg *types.MsgWorked) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Worked(ctx, acc(msg.Job), acc(msg.Keeper)))
}

// BondedPayment handles fixed liquidity credit payments
func (ms msgServer) BondedPayment(ctx context.Context, msg *types.MsgBondedPayment) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.BondedPayment(ctx, acc(msg.Job), acc(msg.Keeper), msg.Amount))
}

// DirectTokenPayment handles token credit payments
func (ms msgServer) DirectTokenPayment(ctx context.Context, msg *types.MsgDirectTokenPayment) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.DirectTokenPayment(ctx, acc(msg.Job), msg.Denom, acc(msg.Keeper), msg.Amount))
}

// Dispute handles dispute openings
func (ms msgServer) Dispute(ctx context.Context, msg *types.MsgDispute) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Dispute(ctx, acc(msg.Disputer), acc(msg.Target)))
}

// Resolve handles dispute resolutions
func (ms msgServer) Resolve(ctx context.Context, msg *types.MsgResolve) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Resolve(ctx, acc(msg.Disputer), acc(msg.Target)))
}

// Slash handles keeper slashing
func (ms msgServer) Slash(ctx context.Context, msg *types.MsgSlash) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Slash(ctx, acc(msg.Slasher), acc(msg.Keeper), msg.Denom, msg.BondAmount, msg.UnbondAmount))
}

// Revoke handles keeper revocation
func (ms msgServer) Revoke(ctx context.Context, msg *types.MsgRevoke) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.Revoke(ctx, acc(msg.Slasher), acc(msg.Keeper)))
}

// SlashTokenFromJob handles job token credit slashing
func (ms msgServer) SlashTokenFromJob(ctx context.Context, msg *types.MsgSlashTokenFromJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.SlashTokenFromJob(ctx, acc(msg.Slasher), acc(msg.Job), msg.Denom, msg.Amount))
}

// SlashLiquidityFromJob handles job liquidity slashing
func (ms msgServer) SlashLiquidityFromJob(ctx context.Context, msg *types.MsgSlashLiquidityFromJob) (*types.MsgResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	return respond(ms.Keeper.SlashLiquidityFromJob(ctx, acc(msg.Slasher), acc(msg.Job), msg.Liquidity, msg.Amount))
}
