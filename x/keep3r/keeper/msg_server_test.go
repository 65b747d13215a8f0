package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

func TestMsgServerValidatesMessages(t *testing.T) {
	f := newFixture(t)
	ms := keeper.NewMsgServerImpl(*f.Keeper)

	_, err := ms.AddJob(f.Ctx, &types.MsgAddJob{Owner: "bad", Job: keepertest.Addr("job").String()})
	require.ErrorIs(t, err, types.ErrValidationFailed)

	_, err = ms.Bond(f.Ctx, &types.MsgBond{Keeper: keepertest.Addr("keeper").String(), Denom: kp3r, Amount: math.NewInt(-1)})
	require.ErrorIs(t, err, types.ErrValidationFailed)
}

func TestMsgServerJobLifecycle(t *testing.T) {
	f := newFixture(t)
	ms := keeper.NewMsgServerImpl(*f.Keeper)
	owner, job, newOwner := keepertest.Addr("owner"), keepertest.Addr("job"), keepertest.Addr("new_owner")

	_, err := ms.AddJob(f.Ctx, &types.MsgAddJob{Owner: owner.String(), Job: job.String()})
	require.NoError(t, err)
	require.True(t, f.Keeper.IsJob(f.Ctx, job))

	_, err = ms.AddJob(f.Ctx, &types.MsgAddJob{Owner: owner.String(), Job: job.String()})
	require.ErrorIs(t, err, types.ErrJobAlreadyAdded)

	_, err = ms.ChangeJobOwnership(f.Ctx, &types.MsgChangeJobOwnership{Owner: owner.String(), Job: job.String(), NewOwner: newOwner.String()})
	require.NoError(t, err)
	_, err = ms.AcceptJobOwnership(f.Ctx, &types.MsgAcceptJobOwnership{PendingOwner: newOwner.String(), Job: job.String()})
	require.NoError(t, err)
	require.Equal(t, newOwner, f.Keeper.GetJobOwner(f.Ctx, job))
}

func TestMsgServerIsKeeperAndWorked(t *testing.T) {
	f := newFixture(t)
	ms := keeper.NewMsgServerImpl(*f.Keeper)
	owner, job, keeperAddr := keepertest.Addr("owner"), keepertest.Addr("job"), keepertest.Addr("keeper")

	f.ActivateKeeper(t, keeperAddr, kp3r, kp3rs(50))
	fundJob(t, f, owner, job, kp3rs(10))
	f.AdvanceSeconds(rewardPeriod(t, f))

	_, err := ms.IsKeeper(f.Ctx, &types.MsgIsKeeper{Job: keepertest.Addr("nojob").String(), Keeper: keeperAddr.String()})
	require.ErrorIs(t, err, types.ErrJobUnavailable)

	res, err := ms.IsKeeper(f.Ctx, &types.MsgIsKeeper{Job: job.String(), Keeper: keepertest.Addr("stranger").String()})
	require.NoError(t, err)
	require.False(t, res.IsKeeper)

	res, err = ms.IsKeeper(f.Ctx, &types.MsgIsKeeper{
		Job:     job.String(),
		Keeper:  keeperAddr.String(),
		Bond:    kp3r,
		MinBond: kp3rs(100),
		Earned:  math.ZeroInt(),
	})
	require.NoError(t, err)
	require.False(t, res.IsKeeper)

	res, err = ms.IsKeeper(f.Ctx, &types.MsgIsKeeper{Job: job.String(), Keeper: keeperAddr.String()})
	require.NoError(t, err)
	require.True(t, res.IsKeeper)

	_, err = ms.Worked(f.Ctx, &types.MsgWorked{Job: job.String(), Keeper: keeperAddr.String()})
	require.NoError(t, err)

	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
	require.NoError(t, err)
	require.True(t, bonds.GT(kp3rs(50)))
	requireInvariants(t, f)
}

func TestMsgServerGovernance(t *testing.T) {
	f := newFixture(t)
	ms := keeper.NewMsgServerImpl(*f.Keeper)
	next := keepertest.Addr("next_gov")

	params := types.DefaultParams()
	params.Fee = 50
	_, err := ms.UpdateParams(f.Ctx, &types.MsgUpdateParams{Governance: next.String(), Params: params})
	require.ErrorIs(t, err, types.ErrOnlyGovernance)

	_, err = ms.SetGovernance(f.Ctx, &types.MsgSetGovernance{Governance: f.Authority.String(), Pending: next.String()})
	require.NoError(t, err)
	_, err = ms.AcceptGovernance(f.Ctx, &types.MsgAcceptGovernance{Pending: keepertest.Addr("stranger").String()})
	require.ErrorIs(t, err, types.ErrOnlyPendingGovernance)
	_, err = ms.AcceptGovernance(f.Ctx, &types.MsgAcceptGovernance{Pending: next.String()})
	require.NoError(t, err)
	require.Equal(t, next, f.Keeper.GetGovernance(f.Ctx))
	require.Nil(t, f.Keeper.GetPendingGovernance(f.Ctx))

	_, err = ms.UpdateParams(f.Ctx, &types.MsgUpdateParams{Governance: next.String(), Params: params})
	require.NoError(t, err)
	got, err := f.Keeper.GetParams(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(50), got.Fee)

	params.RewardPeriod = 0
	_, err = ms.UpdateParams(f.Ctx, &types.MsgUpdateParams{Governance: next.String(), Params: params})
	require.Error(t, err)
}
