package network

import (
	"time"

	"github.com/betacoin/betacoin/foundation/chain/checkpoint"
	"github.com/betacoin/betacoin/foundation/chain/genesis"
)

// testAlertSigningKey overrides the default alert key on the public test
// network.
var testAlertSigningKey = mustDecodeHex("00000000343f91cc401d00d68b1230" +
	"28bf52e5fca1939df127f63c6467cdf9c8e2c14b61104cf817d0b780da337893" +
	"ecc4aaff1309e536162dabbdb45200ca2b0a")

// testProfile builds the parameter bundle for the public test network,
// a separate instance of the chain with relaxed expectations suitable
// for development and testing of applications.
func testProfile() (*Profile, error) {
	p := Profile{
		ID:                IDTest,
		PaymentProtocolID: PaymentProtocolIDTest,

		PacketMagic: 0xa5c07955,
		Port:        32333,
		DNSSeeds:    nil,

		AddressHeader:          84,
		P2SHHeader:             13,
		DumpedPrivateKeyHeader: 143,
		AcceptableAddressCodes: []byte{84, 13},

		Interval:                 Interval,
		TargetTimespan:           TargetTimespan,
		AveragingInterval:        AveragingInterval,
		AveragingInterval2:       AveragingInterval2,
		AveragingTargetTimespan:  AveragingTargetTimespan,
		AveragingTargetTimespan2: AveragingTargetTimespan2,
		MinActualTimespan:        MinActualTimespan,
		MaxActualTimespan:        MaxActualTimespan,
		MinActualTimespan2:       MinActualTimespan2,
		MaxActualTimespan2:       MaxActualTimespan2,

		PowLimit:     mainPowLimit,
		PowLimitBits: 0x1d00ffff,

		SpendableCoinbaseDepth:    100,
		SubsidyDecreaseBlockCount: 126000,

		Checkpoints: checkpoint.NewRegistry(nil),

		AlertSigningKey: testAlertSigningKey,

		GenesisBlock: genesis.Build(0x1d00ffff, time.Unix(1382532797, 0), 704106316),
	}

	return finishProfile(&p)
}
