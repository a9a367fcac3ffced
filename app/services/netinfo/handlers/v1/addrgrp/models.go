package addrgrp

import "encoding/hex"

// AppAddressVerify is what a client provides to validate an address against
// a specific network.
type AppAddressVerify struct {
	NetworkID string `json:"network_id" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

// AppAddressResult reports the outcome of decoding an address. Status is one
// of "valid", "malformed", or "wrong_network".
type AppAddressResult struct {
	Status          string `json:"status"`
	NetworkID       string `json:"network_id,omitempty"`
	Version         byte   `json:"version,omitempty"`
	Hash160         string `json:"hash160,omitempty"`
	P2SH            bool   `json:"p2sh"`
	Reason          string `json:"reason,omitempty"`
	AcceptableCodes []byte `json:"acceptable_codes,omitempty"`
}

// AppAddressResolve describes which network an address belongs to.
type AppAddressResolve struct {
	Address           string `json:"address"`
	NetworkID         string `json:"network_id"`
	PaymentProtocolID string `json:"payment_protocol_id,omitempty"`
	Version           byte   `json:"version"`
	Hash160           string `json:"hash160"`
	P2SH              bool   `json:"p2sh"`
}

func encodeHash160(hash [20]byte) string {
	return hex.EncodeToString(hash[:])
}
