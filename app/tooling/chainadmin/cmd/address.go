package cmd

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/betacoin/betacoin/foundation/chain/address"
	"github.com/spf13/cobra"
)

// addressCmd represents the address command
var addressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "Decode an address against the selected network",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg := getRegistry()
		p := getProfile(reg)

		addr, err := address.Decode(p, args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("network: %s\n", p.ID)
		fmt.Printf("version: %d\n", addr.Version)
		fmt.Printf("hash160: %s\n", hex.EncodeToString(addr.Hash160[:]))
		fmt.Printf("p2sh:    %t\n", addr.IsP2SH(p))
	},
}

var encodeP2SH bool

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <hash160-hex>",
	Short: "Encode a hash160 payload as an address for the selected network",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg := getRegistry()
		p := getProfile(reg)

		hash160, err := hex.DecodeString(args[0])
		if err != nil {
			log.Fatal(err)
		}

		version := p.AddressHeader
		if encodeP2SH {
			version = p.P2SHHeader
		}

		addr, err := address.New(version, hash160)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(addr.String())
	},
}

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <address>",
	Short: "Determine which network an address belongs to",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg := getRegistry()

		p, err := address.ResolveProfile(reg, args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(p.ID)
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeP2SH, "p2sh", false, "Encode with the pay-to-script-hash version byte.")

	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(resolveCmd)
}
