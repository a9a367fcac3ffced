package network_test

import (
	"errors"
	"testing"

	"github.com/betacoin/betacoin/foundation/chain/network"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Registry(t *testing.T) {
	t.Log("Given the need to look up network profiles by id.")
	{
		reg, err := network.NewRegistry()
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to build the registry: %v", failed, err)
		}
		t.Logf("\t%s\tTest 0:\tShould be able to build the registry.", success)

		t.Log("\tTest 1:\tWhen resolving unique network ids.")
		{
			for _, id := range []string{network.IDProduction, network.IDTest, network.IDUnitTest} {
				p, err := reg.FromID(id)
				if err != nil {
					t.Fatalf("\t%s\tTest 1:\tShould resolve id %q: %v", failed, id, err)
				}
				if p.ID != id {
					t.Fatalf("\t%s\tTest 1:\tShould get profile %q, got %q.", failed, id, p.ID)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould resolve every known id.", success)

			if _, err := reg.FromID("org.betacoin.nope"); !errors.Is(err, network.ErrUnknownNetwork) {
				t.Fatalf("\t%s\tTest 1:\tShould get ErrUnknownNetwork for a bogus id, got %v.", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould get ErrUnknownNetwork for a bogus id.", success)
		}

		t.Log("\tTest 2:\tWhen resolving payment protocol aliases.")
		{
			main, err := reg.FromPaymentProtocolID(network.PaymentProtocolIDProduction)
			if err != nil || main.ID != network.IDProduction {
				t.Fatalf("\t%s\tTest 2:\tShould resolve alias \"main\" to production: %v", failed, err)
			}
			test, err := reg.FromPaymentProtocolID(network.PaymentProtocolIDTest)
			if err != nil || test.ID != network.IDTest {
				t.Fatalf("\t%s\tTest 2:\tShould resolve alias \"test\" to the test network: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould resolve both aliases.", success)

			if _, err := reg.FromPaymentProtocolID("unittest"); !errors.Is(err, network.ErrUnknownNetwork) {
				t.Fatalf("\t%s\tTest 2:\tShould have no alias for the unit test network, got %v.", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould have no alias for the unit test network.", success)
		}

		t.Log("\tTest 3:\tWhen checking preference order and identity.")
		{
			profiles := reg.Profiles()
			if len(profiles) != 3 || profiles[0].ID != network.IDProduction {
				t.Fatalf("\t%s\tTest 3:\tShould list production first, got %v.", failed, profiles[0].ID)
			}
			t.Logf("\t%s\tTest 3:\tShould list production first.", success)

			again, err := network.NewRegistry()
			if err != nil {
				t.Fatalf("\t%s\tTest 3:\tShould be able to build a second registry: %v", failed, err)
			}

			p1, _ := reg.FromID(network.IDProduction)
			p2, _ := again.FromID(network.IDProduction)
			if !p1.Equal(p2) {
				t.Fatalf("\t%s\tTest 3:\tShould treat profiles with the same id as equal.", failed)
			}
			p3, _ := reg.FromID(network.IDTest)
			if p1.Equal(p3) || p1.Equal(nil) {
				t.Fatalf("\t%s\tTest 3:\tShould treat different ids as not equal.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould compare profile identity by id only.", success)
		}
	}
}

func Test_ProfileValues(t *testing.T) {
	t.Log("Given the need to expose every deployment's constants unchanged.")
	{
		reg, err := network.NewRegistry()
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to build the registry: %v", failed, err)
		}

		t.Log("\tTest 0:\tWhen reading the production profile.")
		{
			p, _ := reg.FromID(network.IDProduction)

			if p.PacketMagic != 0xa5c07955 || p.Port != 32333 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the wire identity, got magic %08x port %d.", failed, p.PacketMagic, p.Port)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the wire identity.", success)

			if p.AddressHeader != 25 || p.P2SHHeader != 11 || p.DumpedPrivateKeyHeader != 143 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the version byte space.", failed)
			}
			if !p.AcceptsAddressCode(p.AddressHeader) || !p.AcceptsAddressCode(p.P2SHHeader) {
				t.Fatalf("\t%s\tTest 0:\tShould accept both headers as address codes.", failed)
			}
			if p.AcceptsAddressCode(84) {
				t.Fatalf("\t%s\tTest 0:\tShould not accept the test network's header.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the version byte space.", success)

			if p.Interval != 6 || p.TargetTimespan != 1440 || p.AveragingInterval != 48 {
				t.Fatalf("\t%s\tTest 0:\tShould derive the difficulty constants, got interval %d timespan %d.", failed, p.Interval, p.TargetTimespan)
			}
			if p.MinActualTimespan != p.AveragingTargetTimespan*99/100 || p.MaxActualTimespan != p.AveragingTargetTimespan*102/100 {
				t.Fatalf("\t%s\tTest 0:\tShould derive the actual timespan bounds from the ratio table.", failed)
			}
			if p.AveragingInterval2 != p.AveragingInterval || p.MinActualTimespan2 != p.MinActualTimespan {
				t.Fatalf("\t%s\tTest 0:\tShould carry the duplicate constant set unchanged.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould derive the difficulty constants.", success)

			if p.SpendableCoinbaseDepth != 100 || p.SubsidyDecreaseBlockCount != 126000 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the consensus pass-through constants.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the consensus pass-through constants.", success)

			if len(p.DNSSeeds) != 2 || p.Checkpoints.Count() != 4 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the seeds and checkpoints, got %d seeds %d pins.", failed, len(p.DNSSeeds), p.Checkpoints.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould carry the seeds and checkpoints.", success)
		}

		t.Log("\tTest 1:\tWhen reading the test and unit test profiles.")
		{
			test, _ := reg.FromID(network.IDTest)
			unit, _ := reg.FromID(network.IDUnitTest)

			if test.AddressHeader != 84 || test.P2SHHeader != 13 {
				t.Fatalf("\t%s\tTest 1:\tShould carry the test network version bytes.", failed)
			}
			if len(test.DNSSeeds) != 0 || test.Checkpoints.Count() != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould have no seeds or checkpoints on the test network.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould carry the test network values.", success)

			if unit.SpendableCoinbaseDepth != 5 || unit.SubsidyDecreaseBlockCount != 100 {
				t.Fatalf("\t%s\tTest 1:\tShould relax the unit test consensus constants.", failed)
			}
			if unit.PowLimit.Cmp(test.PowLimit) <= 0 {
				t.Fatalf("\t%s\tTest 1:\tShould allow easier proof of work on the unit test network.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould relax the unit test constants.", success)
		}
	}
}

func Test_GenesisInvariant(t *testing.T) {
	t.Log("Given the need to pin every deployment's genesis block hash.")
	{
		reg, err := network.NewRegistry()
		if err != nil {
			t.Fatalf("\t%s\tTest 0:\tShould be able to build the registry: %v", failed, err)
		}

		t.Log("\tTest 0:\tWhen comparing the built genesis blocks.")
		{
			const want = "000000008ef7da946aa3f4dd81b240c6bdedac0dc038cb04e7cf8e60f37d9281"

			for _, p := range reg.Profiles() {
				if p.GenesisHash.String() != want {
					t.Fatalf("\t%s\tTest 0:\tShould pin the genesis hash on %s, got %s.", failed, p.ID, p.GenesisHash)
				}

				hash := p.GenesisBlock.BlockHash()
				if !p.GenesisHash.IsEqual(&hash) {
					t.Fatalf("\t%s\tTest 0:\tShould store the hash of the built block on %s.", failed, p.ID)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould pin the genesis hash on every network.", success)
		}
	}
}
