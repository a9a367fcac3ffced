// Package address implements the base58check textual encoding of
// betacoin account addresses. An address is a version byte naming the
// network and address kind plus a 20 byte hash160 payload, formatted as
// base58 text with a 4 byte double-SHA256 checksum for corruption
// detection. All operations are pure functions of their inputs plus a
// read-only network profile.
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/betacoin/betacoin/foundation/chain/network"
)

// Hash160Size is the length of the hash payload inside an address.
const Hash160Size = 20

// encodedLength is version byte + hash160 + 4 byte checksum.
const encodedLength = 1 + Hash160Size + 4

// FormatError reports text that is not a well-formed base58check
// address: an invalid character, a wrong decoded length, or a failed
// checksum. It always indicates corrupt or nonsensical input.
type FormatError struct {
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return "malformed address: " + e.Reason
}

// WrongNetworkError reports a well-formed, checksum-valid address whose
// version byte is not accepted by the profile it was checked against.
// It carries the offending version and the profile's full acceptable
// set so callers can suggest the correct network.
type WrongNetworkError struct {
	Version         byte
	AcceptableCodes []byte
}

// Error implements the error interface.
func (e *WrongNetworkError) Error() string {
	return fmt.Sprintf("version code %d is not valid for this network, acceptable codes are %v", e.Version, e.AcceptableCodes)
}

// Address is an account address. It has no independent lifecycle: it is
// always constructed from decoded text or a (profile, bytes) pair and is
// immutable once built.
type Address struct {
	Version byte
	Hash160 [Hash160Size]byte
}

// New constructs an address from a version byte and a 20 byte hash160.
// No check is made that the version byte belongs to any network.
func New(version byte, hash160 []byte) (Address, error) {
	if len(hash160) != Hash160Size {
		return Address{}, fmt.Errorf("hash160 must be %d bytes, got %d", Hash160Size, len(hash160))
	}

	a := Address{Version: version}
	copy(a.Hash160[:], hash160)
	return a, nil
}

// NewFromPubKey derives the pay-to-pubkey-hash address of a public key
// on the given network.
func NewFromPubKey(p *network.Profile, pub *btcec.PublicKey) Address {
	a := Address{Version: p.AddressHeader}
	copy(a.Hash160[:], btcutil.Hash160(pub.SerializeUncompressed()))
	return a
}

// NewP2SH constructs the pay-to-script-hash address for a script hash on
// the given network.
func NewP2SH(p *network.Profile, hash160 []byte) (Address, error) {
	return New(p.P2SHHeader, hash160)
}

// String encodes the address as base58check text: the version byte and
// hash160 followed by the first 4 bytes of the double-SHA256 of that
// payload, base58 encoded. Encoding is a pure formatting operation; the
// version byte is not validated against any network.
func (a Address) String() string {
	return base58.CheckEncode(a.Hash160[:], a.Version)
}

// IsP2SH reports whether the address is pay-to-script-hash on the given
// network, discriminated purely by version byte.
func (a Address) IsP2SH(p *network.Profile) bool {
	return a.Version == p.P2SHHeader
}

// Decode parses base58check text against a network profile. Malformed
// text (bad alphabet, wrong length, checksum mismatch) fails with a
// *FormatError. Well-formed text whose version byte belongs to another
// network fails with a *WrongNetworkError.
func Decode(p *network.Profile, text string) (Address, error) {
	payload, version, err := base58.CheckDecode(text)
	switch {
	case errors.Is(err, base58.ErrChecksum):
		return Address{}, &FormatError{Reason: "checksum mismatch"}
	case err != nil:
		return Address{}, &FormatError{Reason: "not base58check text"}
	}

	if len(payload) != Hash160Size {
		return Address{}, &FormatError{Reason: fmt.Sprintf("decoded to %d bytes, want %d", len(payload)+5, encodedLength)}
	}

	if !p.AcceptsAddressCode(version) {
		return Address{}, &WrongNetworkError{
			Version:         version,
			AcceptableCodes: p.AcceptableAddressCodes,
		}
	}

	return New(version, payload)
}

// ResolveProfile finds which registered network an address belongs to,
// trying each profile in the registry's preference order, production
// first. It is used when the caller has no prior hint of network.
func ResolveProfile(reg *network.Registry, text string) (*network.Profile, error) {
	for _, p := range reg.Profiles() {
		_, err := Decode(p, text)
		if err == nil {
			return p, nil
		}

		// Malformed text is malformed for every profile.
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("address %q belongs to no registered network: %w", text, network.ErrUnknownNetwork)
}
