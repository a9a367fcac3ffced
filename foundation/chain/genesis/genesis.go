// Package genesis deterministically constructs the hard-coded first
// block shared by every deployment of the betacoin chain. The factory
// runs once per network profile during registry construction and its
// output is immutable thereafter.
package genesis

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// CoinbaseValue is the fixed 50 coin subsidy paid by the genesis output,
// in base units.
const CoinbaseValue int64 = 50 * 100_000_000

// coinbaseScript is the literal input script of the genesis coinbase
// transaction: the difficulty bits, push prefixes, and the headline
// published the day the chain launched:
//
//	"CNN 23/10/2013 Scientists find gold growing on trees in Australia"
var coinbaseScript = mustDecodeHex("04ffff001d0104" +
	"45434e4e2032332f31302f3230313320536369656e74697374732066696e6420" +
	"676f6c642067726f77696e67206f6e20747265657320696e204175737472616c" +
	"6961")

// coinbasePubKey is the uncompressed secp256k1 public key paid by the
// single genesis output.
var coinbasePubKey = mustDecodeHex("04678afdb0fe5548271967f1a67130b710" +
	"5cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de" +
	"5c384df7ba0b8d578a4c702b6bf11d5f")

// opCheckSig terminates the genesis output script.
const opCheckSig = 0xac

// MerkleRoot is the transaction merkle root of the genesis block. The
// value is pinned rather than derived: the coinbase input script above
// is a byte literal whose exact transaction serialization cannot be
// reproduced through the normal merkle routine, so the root is set
// directly from the known value.
var MerkleRoot = mustHashFromStr("d25dbe3a2852926fc2ec6591a95983bbcde80c449f30ced37fd657361073fa96")

// Build constructs the genesis block for a deployment. The header
// carries the difficulty bits, timestamp, and nonce declared by the
// network profile; every other field is identical across deployments.
func Build(bits uint32, timestamp time.Time, nonce uint32) *wire.MsgBlock {
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: *MerkleRoot,
			Timestamp:  timestamp,
			Bits:       bits,
			Nonce:      nonce,
		},
		Transactions: []*wire.MsgTx{coinbaseTx()},
	}
}

// coinbaseTx assembles the one transaction in the genesis block: an
// unspendable input carrying the headline bytes and a single output
// paying the fixed public key.
func coinbaseTx() *wire.MsgTx {
	tx := wire.NewMsgTx(1)

	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: coinbaseScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})

	pkScript := make([]byte, 0, len(coinbasePubKey)+2)
	pkScript = append(pkScript, byte(len(coinbasePubKey)))
	pkScript = append(pkScript, coinbasePubKey...)
	pkScript = append(pkScript, opCheckSig)

	tx.AddTxOut(&wire.TxOut{
		Value:    CoinbaseValue,
		PkScript: pkScript,
	})

	return tx
}

// CoinbaseMessage returns the human-readable headline embedded in the
// genesis coinbase input script.
func CoinbaseMessage() string {
	return string(coinbaseScript[8:])
}

// CoinbasePubKey parses the public key paid by the genesis output.
func CoinbasePubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(coinbasePubKey)
}

// mustDecodeHex converts a hard-coded hex literal. Only used on package
// constants, so a bad literal is a build defect and panics.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex literal: " + s)
	}
	return b
}

// mustHashFromStr converts a hard-coded block or merkle hash literal.
func mustHashFromStr(s string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("invalid hash literal: " + s)
	}
	return hash
}
