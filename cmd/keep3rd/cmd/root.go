package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagHome   = "home"
	flagConfig = "config"
)

// NewRootCmd creates the keep3rd root command. Every subcommand reads the module params from
// keep3r.toml and the environment.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keep3rd",
		Short: "Keep3r network accounting tools",
		Long: `keep3rd inspects the configuration of the keep3r module: it renders and validates
genesis files, prints the effective params and previews keeper boosts, liquidity credits and
work payments.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, DefaultHome, "directory holding keep3r.toml")
	rootCmd.PersistentFlags().String(flagConfig, "", "explicit config file, overrides --home")

	rootCmd.AddCommand(
		defaultGenesisCmd(),
		validateGenesisCmd(),
		paramsCmd(),
		boostTableCmd(),
		quoteLiquidityCmd(),
		workPaymentCmd(),
	)
	return rootCmd
}

// configFromFlags loads the viper configuration selected by the persistent flags of cmd.
func configFromFlags(cmd *cobra.Command) (*viper.Viper, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return nil, err
	}
	configFile, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	return newViper(home, configFile)
}
