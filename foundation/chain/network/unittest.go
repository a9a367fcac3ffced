package network

import (
	"time"

	"github.com/betacoin/betacoin/foundation/chain/checkpoint"
	"github.com/betacoin/betacoin/foundation/chain/genesis"
)

// unitTestProfile builds the parameter bundle for the private test
// network used by unit tests and local development. It shares the test
// network's address space but relaxes the consensus constants so blocks
// are cheap to produce. It has no payment protocol alias.
func unitTestProfile() (*Profile, error) {
	p := Profile{
		ID: IDUnitTest,

		PacketMagic: 0xdab5bffa,
		Port:        42333,
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

		PowLimit:     unitTestPowLimit,
		PowLimitBits: 0x207fffff,

		SpendableCoinbaseDepth:    5,
		SubsidyDecreaseBlockCount: 100,

		Checkpoints: checkpoint.NewRegistry(nil),

		AlertSigningKey: defaultAlertSigningKey,

		// The genesis header keeps the public networks' difficulty
		// bits so the single pinned genesis hash holds here too.
		GenesisBlock: genesis.Build(0x1d00ffff, time.Unix(1382532797, 0), 704106316),
	}

	return finishProfile(&p)
}
