package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

const (
	flagSteps     = "steps"
	flagETHQuote  = "eth-quote"
	defaultSteps  = 10
	oneEtherInWei = "1000000000000000000"
)

func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective keep3r params",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, params)
		},
	}
}

func boostTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boost-table",
		Short: "Print the work reward boost for bonds from zero to the target bond",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			steps, err := cmd.Flags().GetInt(flagSteps)
			if err != nil {
				return err
			}
			if steps <= 0 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BONDS\tBOOST (BP)")
			for i := 0; i <= steps; i++ {
				bonds := params.TargetBond.MulRaw(int64(i)).QuoRaw(int64(steps))
				boost := types.RewardBoost(bonds, params.MinBoost, params.MaxBoost, params.TargetBond)
				fmt.Fprintf(w, "%s\t%d\n", bonds, boost)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int(flagSteps, defaultSteps, "number of intervals between zero and the target bond")
	return cmd
}

func quoteLiquidityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote-liquidity [amount] [tick-difference]",
		Short: "Print the KP3R value and period credits of a liquidity pledge",
		Long: `Prices amount of liquidity at the tick cumulative difference observed over one reward
period, oriented so that a positive difference means KP3R appreciated, and prints the credits
one reward period of the pledge mints.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[0])
			if err != nil {
				return err
			}
			difference, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("tick-difference: %w", err)
			}

			value := types.KP3RsAtTick(amount, difference, params.RewardPeriod)
			credits := types.GetReward(value, params.RewardPeriod, params.InflationPeriod)
			cmd.Printf("value: %s%s\n", value, params.Keep3rDenom)
			cmd.Printf("period credits: %s%s\n", credits, params.Keep3rDenom)
			return nil
		},
	}
}

func workPaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work-payment [gas-used] [base-fee] [bonds]",
		Short: "Print the KP3R a keeper with bonds earns for metered work",
		Long: `Prices gas-used plus the configured extra gas at base-fee, boosted by the keeper's KP3R
bonds. --eth-quote is the KP3R amount one ether buys.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			gasUsed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("gas-used: %w", err)
			}
			baseFee, err := parseAmount("base-fee", args[1])
			if err != nil {
				return err
			}
			bonds, err := parseAmount("bonds", args[2])
			if err != nil {
				return err
			}
			rawQuote, err := cmd.Flags().GetString(flagETHQuote)
			if err != nil {
				return err
			}
			quote, err := parseAmount(flagETHQuote, rawQuote)
			if err != nil {
				return err
			}

			boost := types.RewardBoost(bonds, params.MinBoost, params.MaxBoost, params.TargetBond)
			payment := types.WorkPayment(gasUsed+params.WorkExtraGas, baseFee, boost, quote)
			cmd.Printf("boost: %d\n", boost)
			cmd.Printf("payment: %s%s\n", payment, params.Keep3rDenom)
			return nil
		},
	}
	cmd.Flags().String(flagETHQuote, oneEtherInWei, "KP3R base units bought by one ether")
	return cmd
}

func paramsFromFlags(cmd *cobra.Command) (types.Params, error) {
	v, err := configFromFlags(cmd)
	if err != nil {
		return types.Params{}, err
	}
	return LoadParams(v)
}

func parseAmount(name, raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok || amount.IsNegative() {
		return math.Int{}, fmt.Errorf("%s: invalid amount %q", name, raw)
	}
	return amount, nil
}
