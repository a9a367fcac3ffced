package genesis_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/betacoin/betacoin/foundation/chain/genesis"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// Header values shared by every deployment.
const (
	bits  = uint32(0x1d00ffff)
	nonce = uint32(704106316)
)

var timestamp = time.Unix(1382532797, 0)

// =============================================================================

func Test_Build(t *testing.T) {
	t.Log("Given the need to construct the genesis block deterministically.")
	{
		t.Log("\tTest 0:\tWhen building the block twice.")
		{
			a := genesis.Build(bits, timestamp, nonce)
			b := genesis.Build(bits, timestamp, nonce)

			hashA := a.BlockHash()
			hashB := b.BlockHash()
			if !hashA.IsEqual(&hashB) {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same block hash, got %s and %s.", failed, hashA, hashB)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same block hash.", success)

			const want = "000000008ef7da946aa3f4dd81b240c6bdedac0dc038cb04e7cf8e60f37d9281"
			if hashA.String() != want {
				t.Fatalf("\t%s\tTest 0:\tShould hash to the pinned value, got %s.", failed, hashA)
			}
			t.Logf("\t%s\tTest 0:\tShould hash to the pinned value.", success)
		}

		t.Log("\tTest 1:\tWhen inspecting the header.")
		{
			block := genesis.Build(bits, timestamp, nonce)

			if block.Header.Version != 1 {
				t.Fatalf("\t%s\tTest 1:\tShould carry block version 1, got %d.", failed, block.Header.Version)
			}
			var zero [32]byte
			if !bytes.Equal(block.Header.PrevBlock[:], zero[:]) {
				t.Fatalf("\t%s\tTest 1:\tShould have a zero previous block hash.", failed)
			}
			if !block.Header.MerkleRoot.IsEqual(genesis.MerkleRoot) {
				t.Fatalf("\t%s\tTest 1:\tShould set the merkle root from the pinned value.", failed)
			}
			if block.Header.Bits != bits || block.Header.Nonce != nonce || !block.Header.Timestamp.Equal(timestamp) {
				t.Fatalf("\t%s\tTest 1:\tShould carry the declared bits, timestamp, and nonce.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould populate the header from the declared values.", success)
		}

		t.Log("\tTest 2:\tWhen inspecting the coinbase transaction.")
		{
			block := genesis.Build(bits, timestamp, nonce)

			if len(block.Transactions) != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould contain exactly one transaction, got %d.", failed, len(block.Transactions))
			}
			tx := block.Transactions[0]

			if len(tx.TxIn) != 1 || len(tx.TxOut) != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould have one input and one output.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould have one input and one output.", success)

			if tx.TxOut[0].Value != genesis.CoinbaseValue {
				t.Fatalf("\t%s\tTest 2:\tShould pay the fixed subsidy %d, got %d.", failed, genesis.CoinbaseValue, tx.TxOut[0].Value)
			}
			t.Logf("\t%s\tTest 2:\tShould pay the fixed subsidy.", success)

			msg := genesis.CoinbaseMessage()
			if !strings.Contains(msg, "Scientists find gold growing on trees") {
				t.Fatalf("\t%s\tTest 2:\tShould embed the headline, got %q.", failed, msg)
			}
			if !strings.Contains(string(tx.TxIn[0].SignatureScript), msg) {
				t.Fatalf("\t%s\tTest 2:\tShould carry the headline in the input script.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould embed the launch headline.", success)

			pub, err := genesis.CoinbasePubKey()
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould parse the coinbase public key: %v", failed, err)
			}
			if !bytes.Contains(tx.TxOut[0].PkScript, pub.SerializeUncompressed()) {
				t.Fatalf("\t%s\tTest 2:\tShould pay the fixed public key.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould pay the fixed public key.", success)
		}
	}
}
