package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultKeep3rDenom           = "kp3r"
	DefaultRewardPeriod          = uint64(5 * 24 * 60 * 60)  // 5 days
	DefaultInflationPeriod       = uint64(34 * 24 * 60 * 60) // 34 days
	DefaultBondTime              = uint64(3 * 24 * 60 * 60)  // 3 days
	DefaultUnbondTime            = uint64(14 * 24 * 60 * 60) // 14 days
	DefaultFee                   = uint64(30)                // 0.3%
	DefaultMigrationCooldown     = uint64(60)
	DefaultTokenWithdrawCooldown = uint64(60)
	DefaultMinBoost              = uint64(11_000)
	DefaultMaxBoost              = uint64(12_000)
	DefaultWorkExtraGas          = uint64(34_000)
	DefaultQuoteTwapTime         = uint32(10 * 60)

	// MaxRewardPeriod keeps an expired observation window of two periods within uint32
	// oracle offsets.
	MaxRewardPeriod = uint64(1<<31 - 1)
)

// PoolBinding ties a price source to its AMM pool and records which side KP3R sits on.
type PoolBinding struct {
	Pool       string `json:"pool" mapstructure:"pool"`
	KP3RToken0 bool   `json:"kp3r_token0" mapstructure:"kp3r_token0"`
}

// Params holds the governance-settable configuration of the keep3r module.
type Params struct {
	Keep3rDenom           string      `json:"keep3r_denom" mapstructure:"keep3r_denom"`
	RewardPeriod          uint64      `json:"reward_period" mapstructure:"reward_period"`
	InflationPeriod       uint64      `json:"inflation_period" mapstructure:"inflation_period"`
	BondTime              uint64      `json:"bond_time" mapstructure:"bond_time"`
	UnbondTime            uint64      `json:"unbond_time" mapstructure:"unbond_time"`
	LiquidityMinimum      math.Int    `json:"liquidity_minimum" mapstructure:"-"`
	Fee                   uint64      `json:"fee" mapstructure:"fee"`
	MigrationCooldown     uint64      `json:"migration_cooldown" mapstructure:"migration_cooldown"`
	TokenWithdrawCooldown uint64      `json:"token_withdraw_cooldown" mapstructure:"token_withdraw_cooldown"`
	MinBoost              uint64      `json:"min_boost" mapstructure:"min_boost"`
	MaxBoost              uint64      `json:"max_boost" mapstructure:"max_boost"`
	TargetBond            math.Int    `json:"target_bond" mapstructure:"-"`
	WorkExtraGas          uint64      `json:"work_extra_gas" mapstructure:"work_extra_gas"`
	QuoteTwapTime         uint32      `json:"quote_twap_time" mapstructure:"quote_twap_time"`
	Keep3rWethPool        PoolBinding `json:"keep3r_weth_pool" mapstructure:"keep3r_weth_pool"`
}

// DefaultParams returns default keep3r parameters
func DefaultParams() Params {
	return Params{
		Keep3rDenom:           DefaultKeep3rDenom,
		RewardPeriod:          DefaultRewardPeriod,
		InflationPeriod:       DefaultInflationPeriod,
		BondTime:              DefaultBondTime,
		UnbondTime:            DefaultUnbondTime,
		LiquidityMinimum:      math.NewIntWithDecimal(3, 18), // 3 KP3R
		Fee:                   DefaultFee,
		MigrationCooldown:     DefaultMigrationCooldown,
		TokenWithdrawCooldown: DefaultTokenWithdrawCooldown,
		MinBoost:              DefaultMinBoost,
		MaxBoost:              DefaultMaxBoost,
		TargetBond:            math.NewIntWithDecimal(200, 18), // 200 KP3R
		WorkExtraGas:          DefaultWorkExtraGas,
		QuoteTwapTime:         DefaultQuoteTwapTime,
	}
}

// Validate checks the parameters for internal consistency.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.Keep3rDenom); err != nil {
		return ErrInvalidParams.Wrapf("keep3r denom: %v", err)
	}
	if p.RewardPeriod == 0 {
		return ErrInvalidParams.Wrap("reward period must be positive")
	}
	if p.RewardPeriod > MaxRewardPeriod {
		return ErrInvalidParams.Wrapf("reward period %d exceeds %d", p.RewardPeriod, MaxRewardPeriod)
	}
	if p.InflationPeriod == 0 {
		return ErrInvalidParams.Wrap("inflation period must be positive")
	}
	if p.LiquidityMinimum.IsNil() || p.LiquidityMinimum.IsNegative() {
		return ErrInvalidParams.Wrap("liquidity minimum must be non-negative")
	}
	if p.Fee > BoostBase {
		return ErrInvalidParams.Wrapf("fee %d exceeds %d basis points", p.Fee, BoostBase)
	}
	if p.MinBoost < BoostBase {
		return ErrInvalidParams.Wrapf("min boost %d below %d basis points", p.MinBoost, BoostBase)
	}
	if p.MaxBoost < p.MinBoost {
		return ErrInvalidParams.Wrapf("max boost %d below min boost %d", p.MaxBoost, p.MinBoost)
	}
	if p.TargetBond.IsNil() || p.TargetBond.IsNegative() {
		return ErrInvalidParams.Wrap("target bond must be non-negative")
	}
	if p.QuoteTwapTime == 0 {
		return ErrInvalidParams.Wrap("quote twap time must be positive")
	}
	return nil
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return fmt.Sprintf(
		"keep3r_denom=%s reward_period=%d inflation_period=%d bond_time=%d unbond_time=%d "+
			"liquidity_minimum=%s fee=%d migration_cooldown=%d token_withdraw_cooldown=%d "+
			"min_boost=%d max_boost=%d target_bond=%s work_extra_gas=%d quote_twap_time=%d pool=%s",
		p.Keep3rDenom, p.RewardPeriod, p.InflationPeriod, p.BondTime, p.UnbondTime,
		p.LiquidityMinimum, p.Fee, p.MigrationCooldown, p.TokenWithdrawCooldown,
		p.MinBoost, p.MaxBoost, p.TargetBond, p.WorkExtraGas, p.QuoteTwapTime, p.Keep3rWethPool.Pool,
	)
}
