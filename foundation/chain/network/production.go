package network

import (
	"time"

	"github.com/betacoin/betacoin/foundation/chain/checkpoint"
	"github.com/betacoin/betacoin/foundation/chain/genesis"
)

// productionProfile builds the parameter bundle for the main production
// network on which people trade goods and services.
func productionProfile() (*Profile, error) {
	p := Profile{
		ID:                IDProduction,
		PaymentProtocolID: PaymentProtocolIDProduction,

		PacketMagic: 0xa5c07955,
		Port:        32333,
		DNSSeeds: []string{
			"seed.coinsilo.com",
			"seed1.betacoin.org",
		},

		AddressHeader:          25,
		P2SHHeader:             11,
		DumpedPrivateKeyHeader: 143,
		AcceptableAddressCodes: []byte{25, 11},

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

		// These pins cover (at a minimum) the historic blocks with
		// duplicate coinbase transactions; keeping them checkpointed
		// simplifies re-org handling considerably.
		Checkpoints: checkpoint.NewRegistry([]checkpoint.Checkpoint{
			{Height: 20325, Hash: mustHashFromStr("00000000002c21cba7c1484d368447020d55a33b8dd81ceee0f26629858f6487")},
			{Height: 45095, Hash: mustHashFromStr("000000000000140421f951fe8c5614e5a6bcc1b075e553b1b410f303dba2ca64")},
			{Height: 60925, Hash: mustHashFromStr("000000000000005e2efa4093448d81a043b586be2ca54c0837118f927db0f941")},
			{Height: 70525, Hash: mustHashFromStr("00000000000022abea2d6315e0114570a18240aa5ddd2eee4c8d580ec62aaf47")},
		}),

		AlertSigningKey: defaultAlertSigningKey,

		GenesisBlock: genesis.Build(0x1d00ffff, time.Unix(1382532797, 0), 704106316),
	}

	return finishProfile(&p)
}
