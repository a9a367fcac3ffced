// Package addrgrp maintains the group of handlers for address validation.
package addrgrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/betacoin/betacoin/business/sys/validate"
	"github.com/betacoin/betacoin/business/web/errs"
	"github.com/betacoin/betacoin/foundation/chain/address"
	"github.com/betacoin/betacoin/foundation/chain/network"
	"github.com/betacoin/betacoin/foundation/events"
	"github.com/betacoin/betacoin/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of address endpoints.
type Handlers struct {
	Log      *zap.SugaredLogger
	Registry *network.Registry
	Evts     *events.Events
}

// Verify decodes an address against the specified network and reports
// whether it is valid, malformed, or belongs to a different network.
func (h Handlers) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppAddressVerify
	if err := web.Decode(r, &app); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(app); err != nil {
		return err
	}

	p, err := h.Registry.FromID(app.NetworkID)
	if err != nil {
		return errs.NewTrusted(err, http.StatusNotFound)
	}

	addr, err := address.Decode(p, app.Address)
	if err != nil {
		var fe *address.FormatError
		if errors.As(err, &fe) {
			result := AppAddressResult{
				Status: "malformed",
				Reason: fe.Reason,
			}
			return web.Respond(ctx, w, result, http.StatusOK)
		}

		var wn *address.WrongNetworkError
		if errors.As(err, &wn) {
			h.Evts.Send("address", "WRONG NETWORK: address[%s] version[%d] network[%s]", app.Address, wn.Version, p.ID)
			result := AppAddressResult{
				Status:          "wrong_network",
				NetworkID:       p.ID,
				Version:         wn.Version,
				AcceptableCodes: wn.AcceptableCodes,
			}
			return web.Respond(ctx, w, result, http.StatusOK)
		}

		return err
	}

	result := AppAddressResult{
		Status:    "valid",
		NetworkID: p.ID,
		Version:   addr.Version,
		Hash160:   encodeHash160(addr.Hash160),
		P2SH:      addr.IsP2SH(p),
	}

	return web.Respond(ctx, w, result, http.StatusOK)
}

// Resolve determines which registered network an address belongs to.
func (h Handlers) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	text := web.Param(r, "address")

	p, err := address.ResolveProfile(h.Registry, text)
	if err != nil {
		var fe *address.FormatError
		if errors.As(err, &fe) {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}

		if errors.Is(err, network.ErrUnknownNetwork) {
			return errs.NewTrusted(err, http.StatusNotFound)
		}

		return err
	}

	addr, err := address.Decode(p, text)
	if err != nil {
		return err
	}

	result := AppAddressResolve{
		Address:           text,
		NetworkID:         p.ID,
		PaymentProtocolID: p.PaymentProtocolID,
		Version:           addr.Version,
		Hash160:           encodeHash160(addr.Hash160),
		P2SH:              addr.IsP2SH(p),
	}

	return web.Respond(ctx, w, result, http.StatusOK)
}
