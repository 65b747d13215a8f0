package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/keep3r-network/keep3r/testutil/keeper"
	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

// workFixture returns a fixture with an activated keeper bonding 100 KP3R and a job holding a
// full period of liquidity credits. Store access is free so gas readings are exact.
func workFixture(t *testing.T) (f *keepertest.Keep3rFixture, job, keeperAddr sdk.AccAddress) {
	t.Helper()
	f = newFixture(t)
	f.Ctx = f.Ctx.WithKVGasConfig(storetypes.GasConfig{}).WithTransientKVGasConfig(storetypes.GasConfig{})

	job, keeperAddr = keepertest.Addr("job"), keepertest.Addr("keeper")
	f.ActivateKeeper(t, keeperAddr, kp3r, kp3rs(100))
	fundJob(t, f, keepertest.Addr("owner"), job, kp3rs(10))
	f.AdvanceSeconds(rewardPeriod(t, f))
	return f, job, keeperAddr
}

func TestWorkedPaysBoostedGas(t *testing.T) {
	f, job, keeperAddr := workFixture(t)

	require.True(t, f.Keeper.IsKeeper(f.Ctx, keeperAddr))
	f.Ctx.GasMeter().ConsumeGas(50_000, "work")
	require.NoError(t, f.Keeper.Worked(f.Ctx, job, keeperAddr))

	// (5k overhead + 34k extra + 50k work) gas at 1 gwei, boosted 1.15x with 100 of 200 target bonds
	payment := math.NewInt(89_000).MulRaw(1_000_000_000).MulRaw(11_500).QuoRaw(types.BoostBase)
	require.Equal(t, math.NewInt(102_350_000_000_000), payment)

	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
	require.NoError(t, err)
	require.Equal(t, kp3rs(100).Add(payment), bonds)

	info, err := f.Keeper.GetHolderInfo(f.Ctx, keeperAddr)
	require.NoError(t, err)
	require.Equal(t, payment, info.WorkCompleted)

	credits, err := f.Keeper.GetJobCredits(f.Ctx, job)
	require.NoError(t, err)
	require.Equal(t, kp3rs(10).Sub(payment), credits.LiquidityCredits)
	require.Equal(t, uint64(f.Ctx.BlockTime().Unix()), credits.WorkedAt)

	value, ok := findAttribute(f.Ctx, types.EventTypeKeeperWork, types.AttributeKeyAmount)
	require.True(t, ok)
	require.Equal(t, payment.String(), value)

	// the snapshot is consumed by the payment
	err = f.Keeper.Worked(f.Ctx, job, keeperAddr)
	require.ErrorIs(t, err, types.ErrGasNotInitialized)
	requireInvariants(t, f)
}

func TestWorkedRequiresSnapshot(t *testing.T) {
	f, job, keeperAddr := workFixture(t)

	err := f.Keeper.Worked(f.Ctx, job, keeperAddr)
	require.ErrorIs(t, err, types.ErrGasNotInitialized)
}

func TestWorkedFailures(t *testing.T) {
	t.Run("disputed job", func(t *testing.T) {
		f, job, keeperAddr := workFixture(t)
		require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, job))
		f.Keeper.IsKeeper(f.Ctx, keeperAddr)
		require.ErrorIs(t, f.Keeper.Worked(f.Ctx, job, keeperAddr), types.ErrJobDisputed)
	})

	t.Run("unknown job", func(t *testing.T) {
		f, _, keeperAddr := workFixture(t)
		f.Keeper.IsKeeper(f.Ctx, keeperAddr)
		require.ErrorIs(t, f.Keeper.Worked(f.Ctx, keepertest.Addr("nojob"), keeperAddr), types.ErrJobUnavailable)
	})

	t.Run("base fee unavailable", func(t *testing.T) {
		f, job, keeperAddr := workFixture(t)
		f.BaseFee.Err = errors.New("no fee market")
		f.Keeper.IsKeeper(f.Ctx, keeperAddr)
		require.ErrorIs(t, f.Keeper.Worked(f.Ctx, job, keeperAddr), types.ErrBaseFeeUnavailable)
	})

	t.Run("quote unavailable", func(t *testing.T) {
		f, job, keeperAddr := workFixture(t)
		f.Oracle.SetFailing(quotePool, true)
		f.Keeper.IsKeeper(f.Ctx, keeperAddr)
		require.ErrorIs(t, f.Keeper.Worked(f.Ctx, job, keeperAddr), types.ErrOracleUnavailable)

		bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
		require.NoError(t, err)
		require.Equal(t, kp3rs(100), bonds)
	})
}

func TestBondedPayment(t *testing.T) {
	f, job, keeperAddr := workFixture(t)

	err := f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, kp3rs(11))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
	require.NoError(t, err)
	require.Equal(t, kp3rs(100), bonds)

	require.NoError(t, f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, kp3rs(4)))
	bonds, err = f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
	require.NoError(t, err)
	require.Equal(t, kp3rs(104), bonds)

	spendable, err := f.Keeper.JobLiquidityCredits(f.Ctx, job)
	require.NoError(t, err)
	require.Equal(t, kp3rs(6), spendable)

	err = f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, kp3rs(7))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
	requireInvariants(t, f)
}

func TestBondedPaymentSettlesNewPeriod(t *testing.T) {
	f, job, keeperAddr := workFixture(t)
	require.NoError(t, f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, kp3rs(10)))

	spendable, err := f.Keeper.JobLiquidityCredits(f.Ctx, job)
	require.NoError(t, err)
	require.True(t, spendable.IsZero())

	// the next period refills the job
	f.AdvanceSeconds(rewardPeriod(t, f))
	require.NoError(t, f.Keeper.BondedPayment(f.Ctx, job, keeperAddr, kp3rs(10)))
	bonds, err := f.Keeper.Bonds(f.Ctx, keeperAddr, kp3r)
	require.NoError(t, err)
	require.Equal(t, kp3rs(120), bonds)
}

func TestDirectTokenPayment(t *testing.T) {
	f, job, keeperAddr := workFixture(t)
	credited := addTokenCredits(t, f, job, math.NewInt(1_000_000))

	err := f.Keeper.DirectTokenPayment(f.Ctx, job, testToken, keeperAddr, credited.AddRaw(1))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)

	require.NoError(t, f.Keeper.DirectTokenPayment(f.Ctx, job, testToken, keeperAddr, math.NewInt(500_000)))
	require.Equal(t, math.NewInt(500_000), f.Balance(keeperAddr, testToken))

	remaining, err := f.Keeper.JobTokenCredits(f.Ctx, job, testToken)
	require.NoError(t, err)
	require.Equal(t, credited.SubRaw(500_000), remaining)

	require.NoError(t, f.Keeper.Dispute(f.Ctx, f.Authority, keeperAddr))
	err = f.Keeper.DirectTokenPayment(f.Ctx, job, testToken, keeperAddr, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrDisputed)
	requireInvariants(t, f)
}
