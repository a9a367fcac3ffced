package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// networksCmd represents the networks command
var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "Print every registered network profile",
	Run: func(cmd *cobra.Command, args []string) {
		reg := getRegistry()

		for _, p := range reg.Profiles() {
			alias := p.PaymentProtocolID
			if alias == "" {
				alias = "-"
			}
			fmt.Printf("%-28s alias[%s] port[%d] magic[%08x]\n", p.ID, alias, p.Port, p.PacketMagic)
			fmt.Printf("%-28s genesis[%s] checkpoints[%d]\n", "", p.GenesisHash.String(), p.Checkpoints.Count())
		}
	},
}

func init() {
	rootCmd.AddCommand(networksCmd)
}
