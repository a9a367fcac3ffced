// Package cmd contains the chainadmin app
package cmd

import (
	"log"
	"os"

	"github.com/betacoin/betacoin/foundation/chain/network"
	"github.com/spf13/cobra"
)

var networkID string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chainadmin",
	Short: "Inspect network profiles, genesis blocks, addresses and checkpoints",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&networkID, "network", "n", network.IDProduction, "Network id or payment protocol alias.")
}

func getRegistry() *network.Registry {
	reg, err := network.NewRegistry()
	if err != nil {
		log.Fatal(err)
	}
	return reg
}

func getProfile(reg *network.Registry) *network.Profile {
	p, err := reg.FromID(networkID)
	if err == nil {
		return p
	}

	p, err = reg.FromPaymentProtocolID(networkID)
	if err != nil {
		log.Fatal(err)
	}
	return p
}
