package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/viper"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

const (
	configName = "keep3r"
	envPrefix  = "KEEP3R"
)

// DefaultHome is the directory keep3r.toml is looked up in when --home is not given.
var DefaultHome = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".keep3r"
	}
	return filepath.Join(home, ".keep3r")
}()

// newViper returns a viper instance seeded with the default params. Values are overridden by
// <home>/keep3r.toml, or by configFile when set, and then by KEEP3R_* environment variables.
// Nested keys map to underscores: keep3r_weth_pool.pool reads KEEP3R_KEEP3R_WETH_POOL_POOL.
func newViper(home, configFile string) (*viper.Viper, error) {
	v := viper.New()
	setParamDefaults(v, types.DefaultParams())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config in %s: %w", home, err)
		}
	}
	return v, nil
}

func setParamDefaults(v *viper.Viper, p types.Params) {
	v.SetDefault("keep3r_denom", p.Keep3rDenom)
	v.SetDefault("reward_period", p.RewardPeriod)
	v.SetDefault("inflation_period", p.InflationPeriod)
	v.SetDefault("bond_time", p.BondTime)
	v.SetDefault("unbond_time", p.UnbondTime)
	v.SetDefault("liquidity_minimum", p.LiquidityMinimum.String())
	v.SetDefault("fee", p.Fee)
	v.SetDefault("migration_cooldown", p.MigrationCooldown)
	v.SetDefault("token_withdraw_cooldown", p.TokenWithdrawCooldown)
	v.SetDefault("min_boost", p.MinBoost)
	v.SetDefault("max_boost", p.MaxBoost)
	v.SetDefault("target_bond", p.TargetBond.String())
	v.SetDefault("work_extra_gas", p.WorkExtraGas)
	v.SetDefault("quote_twap_time", p.QuoteTwapTime)
	v.SetDefault("keep3r_weth_pool.pool", p.Keep3rWethPool.Pool)
	v.SetDefault("keep3r_weth_pool.kp3r_token0", p.Keep3rWethPool.KP3RToken0)
}

// LoadParams decodes the effective params out of v and validates them.
func LoadParams(v *viper.Viper) (types.Params, error) {
	params := types.DefaultParams()
	if err := v.Unmarshal(&params); err != nil {
		return types.Params{}, fmt.Errorf("failed to decode params: %w", err)
	}

	var err error
	if params.LiquidityMinimum, err = parseInt(v, "liquidity_minimum"); err != nil {
		return types.Params{}, err
	}
	if params.TargetBond, err = parseInt(v, "target_bond"); err != nil {
		return types.Params{}, err
	}

	if err := params.Validate(); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

func parseInt(v *viper.Viper, key string) (math.Int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	return amount, nil
}
