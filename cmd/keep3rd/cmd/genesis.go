package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keep3r-network/keep3r/x/keep3r/types"
)

func defaultGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-genesis",
		Short: "Print the keep3r genesis state for the configured params",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			gs := types.DefaultGenesis()
			gs.Params = params
			return printJSON(cmd, gs)
		},
	}
}

func validateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis [file]",
		Short: "Validate a keep3r genesis state file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read genesis file: %w", err)
			}
			var gs types.GenesisState
			if err := json.Unmarshal(bz, &gs); err != nil {
				return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
			}
			if err := gs.Validate(); err != nil {
				return types.ErrInvalidGenesis.Wrap(err.Error())
			}
			cmd.Printf("%s: valid genesis with %d jobs and %d keepers\n", args[0], len(gs.Jobs), len(gs.Keepers))
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(bz))
	return nil
}
