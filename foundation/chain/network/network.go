// Package network defines the immutable parameter bundle that identifies
// each betacoin deployment, and the registry used to look profiles up by
// id. A profile carries everything the outer layers consume: wire-level
// identity for networking, version bytes for the address codec,
// difficulty constants for the retarget logic, checkpoints for the chain
// validator, and the genesis block.
package network

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/betacoin/betacoin/foundation/chain/checkpoint"
)

// Unique ids for the known deployments, and the short aliases used by
// the payment protocol. The unit test network has no payment protocol
// alias.
const (
	IDProduction = "org.betacoin.production"
	IDTest       = "org.betacoin.test"
	IDUnitTest   = "org.betacoin.unittest"

	PaymentProtocolIDProduction = "main"
	PaymentProtocolIDTest       = "test"
)

// Difficulty and timing constants shared by every deployment. All values
// derive at compile time from the 4 minute target block spacing. The
// duplicated "2" set is carried verbatim from the reference client as
// opaque pass-through values for the retarget logic.
const (
	TargetSpacing  = 4 * 60  // 4 minutes per block.
	TargetTimespan = 24 * 60 // 24 minutes per difficulty cycle.
	Interval       = TargetTimespan / TargetSpacing

	AveragingInterval        = Interval * 8
	AveragingTargetTimespan  = AveragingInterval * TargetSpacing
	AveragingInterval2       = Interval * 8
	AveragingTargetTimespan2 = AveragingInterval2 * TargetSpacing

	maxAdjustDown  = 2 // percent
	maxAdjustUp    = 1 // percent
	maxAdjustDown2 = 2 // percent
	maxAdjustUp2   = 1 // percent

	MinActualTimespan  = AveragingTargetTimespan * (100 - maxAdjustUp) / 100
	MaxActualTimespan  = AveragingTargetTimespan * (100 + maxAdjustDown) / 100
	MinActualTimespan2 = AveragingTargetTimespan2 * (100 - maxAdjustUp2) / 100
	MaxActualTimespan2 = AveragingTargetTimespan2 * (100 + maxAdjustDown2) / 100
)

var (
	// bigOne is 1 represented as a big.Int to avoid recreating it.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have
	// on the public networks: the compact value 1d00ffff in expanded
	// form, matching the reference client's bnProofOfWorkLimit.
	mainPowLimit = new(big.Int).Lsh(big.NewInt(0xffff), 208)

	// unitTestPowLimit allows essentially any difficulty on the private
	// test network. It is the value 2^255 - 1.
	unitTestPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// defaultAlertSigningKey is the well-known key alert messages are signed
// with unless a deployment overrides it.
var defaultAlertSigningKey = mustDecodeHex("04fc9702847840aaf195de8442eb" +
	"ecedf5b095cdbb9bc716bda9110971b28a49e0ead8564ff0db22209e0374782c" +
	"093bb899692d524e9d6a6956e7c5ecbcd68284")

// expectedGenesisHash pins the hash of the freshly built genesis block.
// Every betacoin deployment shares the same genesis constants, so a
// mismatch here means the embedded constants are wrong for this build
// and profile construction must fail.
var expectedGenesisHash = mustHashFromStr("000000008ef7da946aa3f4dd81b240c6bdedac0dc038cb04e7cf8e60f37d9281")

// Profile is the immutable parameter bundle for one deployment. Exactly
// one instance exists per id for the life of the process; after
// construction every field is read-only and the profile is freely
// shared across goroutines.
type Profile struct {
	ID                string
	PaymentProtocolID string

	// Wire-level identity, consumed by the networking layer.
	PacketMagic uint32
	Port        uint16
	DNSSeeds    []string

	// Address version byte space. AcceptableAddressCodes always
	// contains both headers, normal header first.
	AddressHeader          byte
	P2SHHeader             byte
	DumpedPrivateKeyHeader byte
	AcceptableAddressCodes []byte

	// Difficulty retarget constants, passed through unchanged to the
	// consensus layer.
	Interval                 int
	TargetTimespan           int
	AveragingInterval        int
	AveragingInterval2       int
	AveragingTargetTimespan  int
	AveragingTargetTimespan2 int
	MinActualTimespan        int
	MaxActualTimespan        int
	MinActualTimespan2       int
	MaxActualTimespan2       int

	PowLimit     *big.Int
	PowLimitBits uint32

	SpendableCoinbaseDepth    int
	SubsidyDecreaseBlockCount int

	Checkpoints *checkpoint.Registry

	// AlertSigningKey verifies alert messages. Defaults to the
	// well-known constant unless the deployment overrides it.
	AlertSigningKey []byte

	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash
}

// Equal reports whether two profiles identify the same deployment.
// Profile identity is by id alone.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil {
		return false
	}
	return p.ID == other.ID
}

// AcceptsAddressCode reports whether the version byte belongs to this
// network's address space.
func (p *Profile) AcceptsAddressCode(code byte) bool {
	for _, c := range p.AcceptableAddressCodes {
		if c == code {
			return true
		}
	}
	return false
}

// PassesCheckpoint reports whether the hash at the given height is
// consistent with the profile's checkpoint table.
func (p *Profile) PassesCheckpoint(height int32, hash *chainhash.Hash) bool {
	return p.Checkpoints.Passes(height, hash)
}

// IsCheckpoint reports whether a checkpoint is recorded at the height.
func (p *Profile) IsCheckpoint(height int32) bool {
	return p.Checkpoints.IsCheckpoint(height)
}

// finishProfile checks the build-time invariants a profile must satisfy
// before it is handed out: the address code set must contain both
// headers and the freshly built genesis block must hash to the pinned
// value.
func finishProfile(p *Profile) (*Profile, error) {
	if !p.AcceptsAddressCode(p.AddressHeader) || !p.AcceptsAddressCode(p.P2SHHeader) {
		return nil, fmt.Errorf("network %s: acceptable address codes must include both headers", p.ID)
	}

	hash := p.GenesisBlock.BlockHash()
	if !expectedGenesisHash.IsEqual(&hash) {
		return nil, fmt.Errorf("network %s: genesis block hash %s does not match expected %s", p.ID, hash, expectedGenesisHash)
	}
	p.GenesisHash = hash

	return p, nil
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

// mustHashFromStr converts a hard-coded block hash literal.
func mustHashFromStr(s string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("invalid hash literal: " + s)
	}
	return hash
}
