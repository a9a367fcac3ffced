package cmd

import (
	"fmt"

	"github.com/betacoin/betacoin/foundation/chain/genesis"
	"github.com/spf13/cobra"
)

// genesisCmd represents the genesis command
var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Print the genesis block for the selected network",
	Run: func(cmd *cobra.Command, args []string) {
		reg := getRegistry()
		p := getProfile(reg)

		header := p.GenesisBlock.Header

		fmt.Printf("network:     %s\n", p.ID)
		fmt.Printf("hash:        %s\n", p.GenesisHash.String())
		fmt.Printf("merkle root: %s\n", header.MerkleRoot.String())
		fmt.Printf("version:     %d\n", header.Version)
		fmt.Printf("timestamp:   %d\n", header.Timestamp.Unix())
		fmt.Printf("bits:        %08x\n", header.Bits)
		fmt.Printf("nonce:       %d\n", header.Nonce)
		fmt.Printf("message:     %s\n", genesis.CoinbaseMessage())
	},
}

func init() {
	rootCmd.AddCommand(genesisCmd)
}
