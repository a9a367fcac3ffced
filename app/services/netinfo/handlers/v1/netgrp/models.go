package netgrp

import (
	"encoding/hex"
	"fmt"

	"github.com/betacoin/betacoin/foundation/chain/genesis"
	"github.com/betacoin/betacoin/foundation/chain/network"
)

// ProfileSummary is the short form of a network profile returned by the
// list endpoint.
type ProfileSummary struct {
	ID                string `json:"id"`
	PaymentProtocolID string `json:"payment_protocol_id,omitempty"`
	Port              uint16 `json:"port"`
	PacketMagic       string `json:"packet_magic"`
	GenesisHash       string `json:"genesis_hash"`
}

// ProfileDetail is the full data surface of a network profile.
type ProfileDetail struct {
	ID                        string   `json:"id"`
	PaymentProtocolID         string   `json:"payment_protocol_id,omitempty"`
	PacketMagic               string   `json:"packet_magic"`
	Port                      uint16   `json:"port"`
	DNSSeeds                  []string `json:"dns_seeds"`
	AddressHeader             byte     `json:"address_header"`
	P2SHHeader                byte     `json:"p2sh_header"`
	DumpedPrivateKeyHeader    byte     `json:"dumped_private_key_header"`
	AcceptableAddressCodes    []byte   `json:"acceptable_address_codes"`
	Interval                  int      `json:"interval"`
	TargetTimespan            int      `json:"target_timespan"`
	AveragingInterval         int      `json:"averaging_interval"`
	AveragingInterval2        int      `json:"averaging_interval2"`
	AveragingTargetTimespan   int      `json:"averaging_target_timespan"`
	AveragingTargetTimespan2  int      `json:"averaging_target_timespan2"`
	MinActualTimespan         int      `json:"min_actual_timespan"`
	MaxActualTimespan         int      `json:"max_actual_timespan"`
	MinActualTimespan2        int      `json:"min_actual_timespan2"`
	MaxActualTimespan2        int      `json:"max_actual_timespan2"`
	PowLimit                  string   `json:"pow_limit"`
	PowLimitBits              string   `json:"pow_limit_bits"`
	SpendableCoinbaseDepth    int      `json:"spendable_coinbase_depth"`
	SubsidyDecreaseBlockCount int      `json:"subsidy_decrease_block_count"`
	AlertSigningKey           string   `json:"alert_signing_key"`
	GenesisHash               string   `json:"genesis_hash"`
	CheckpointCount           int      `json:"checkpoint_count"`
}

// GenesisInfo describes the genesis block of a network.
type GenesisInfo struct {
	NetworkID       string `json:"network_id"`
	Hash            string `json:"hash"`
	MerkleRoot      string `json:"merkle_root"`
	Version         int32  `json:"version"`
	Timestamp       int64  `json:"timestamp"`
	Bits            string `json:"bits"`
	Nonce           uint32 `json:"nonce"`
	CoinbaseMessage string `json:"coinbase_message"`
	CoinbaseValue   int64  `json:"coinbase_value"`
	CoinbasePubKey  string `json:"coinbase_pub_key"`
}

// CheckpointInfo is one pinned (height, hash) pair.
type CheckpointInfo struct {
	Height int32  `json:"height"`
	Hash   string `json:"hash"`
}

func toProfileSummary(p *network.Profile) ProfileSummary {
	return ProfileSummary{
		ID:                p.ID,
		PaymentProtocolID: p.PaymentProtocolID,
		Port:              p.Port,
		PacketMagic:       fmt.Sprintf("%08x", p.PacketMagic),
		GenesisHash:       p.GenesisHash.String(),
	}
}

func toProfileDetail(p *network.Profile) ProfileDetail {
	seeds := p.DNSSeeds
	if seeds == nil {
		seeds = []string{}
	}

	return ProfileDetail{
		ID:                        p.ID,
		PaymentProtocolID:         p.PaymentProtocolID,
		PacketMagic:               fmt.Sprintf("%08x", p.PacketMagic),
		Port:                      p.Port,
		DNSSeeds:                  seeds,
		AddressHeader:             p.AddressHeader,
		P2SHHeader:                p.P2SHHeader,
		DumpedPrivateKeyHeader:    p.DumpedPrivateKeyHeader,
		AcceptableAddressCodes:    p.AcceptableAddressCodes,
		Interval:                  p.Interval,
		TargetTimespan:            p.TargetTimespan,
		AveragingInterval:         p.AveragingInterval,
		AveragingInterval2:        p.AveragingInterval2,
		AveragingTargetTimespan:   p.AveragingTargetTimespan,
		AveragingTargetTimespan2:  p.AveragingTargetTimespan2,
		MinActualTimespan:         p.MinActualTimespan,
		MaxActualTimespan:         p.MaxActualTimespan,
		MinActualTimespan2:        p.MinActualTimespan2,
		MaxActualTimespan2:        p.MaxActualTimespan2,
		PowLimit:                  p.PowLimit.String(),
		PowLimitBits:              fmt.Sprintf("%08x", p.PowLimitBits),
		SpendableCoinbaseDepth:    p.SpendableCoinbaseDepth,
		SubsidyDecreaseBlockCount: p.SubsidyDecreaseBlockCount,
		AlertSigningKey:           hex.EncodeToString(p.AlertSigningKey),
		GenesisHash:               p.GenesisHash.String(),
		CheckpointCount:           p.Checkpoints.Count(),
	}
}

func toGenesisInfo(p *network.Profile) (GenesisInfo, error) {
	pub, err := genesis.CoinbasePubKey()
	if err != nil {
		return GenesisInfo{}, fmt.Errorf("parsing coinbase public key: %w", err)
	}

	header := p.GenesisBlock.Header

	return GenesisInfo{
		NetworkID:       p.ID,
		Hash:            p.GenesisHash.String(),
		MerkleRoot:      header.MerkleRoot.String(),
		Version:         header.Version,
		Timestamp:       header.Timestamp.Unix(),
		Bits:            fmt.Sprintf("%08x", header.Bits),
		Nonce:           header.Nonce,
		CoinbaseMessage: genesis.CoinbaseMessage(),
		CoinbaseValue:   genesis.CoinbaseValue,
		CoinbasePubKey:  hex.EncodeToString(pub.SerializeUncompressed()),
	}, nil
}
