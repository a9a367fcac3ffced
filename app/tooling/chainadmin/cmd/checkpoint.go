package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/spf13/cobra"
)

// checkpointCmd represents the checkpoint command
var checkpointCmd = &cobra.Command{
	Use:   "checkpoint [height hash]",
	Short: "List the checkpoint table, or verify a block hash against it",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		reg := getRegistry()
		p := getProfile(reg)

		if len(args) == 0 {
			for _, cp := range p.Checkpoints.Checkpoints() {
				fmt.Printf("%8d %s\n", cp.Height, cp.Hash.String())
			}
			return
		}

		if len(args) != 2 {
			log.Fatal("checkpoint verification takes a height and a hash")
		}

		height, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			log.Fatal(err)
		}

		hash, err := chainhash.NewHashFromStr(args[1])
		if err != nil {
			log.Fatal(err)
		}

		if !p.PassesCheckpoint(int32(height), hash) {
			log.Fatalf("hash does not match the checkpoint pinned at height %d", height)
		}

		if p.IsCheckpoint(int32(height)) {
			fmt.Printf("height %d matches its checkpoint\n", height)
			return
		}
		fmt.Printf("height %d is not checkpointed\n", height)
	},
}

func init() {
	rootCmd.AddCommand(checkpointCmd)
}
