// Package netgrp maintains the group of handlers for network profile access.
package netgrp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/betacoin/betacoin/business/sys/validate"
	"github.com/betacoin/betacoin/business/web/errs"
	"github.com/betacoin/betacoin/foundation/chain/network"
	"github.com/betacoin/betacoin/foundation/events"
	"github.com/betacoin/betacoin/foundation/web"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of network endpoints.
type Handlers struct {
	Log      *zap.SugaredLogger
	Registry *network.Registry
	WS       websocket.Upgrader
	Evts     *events.Events
}

// List returns every registered network profile in preference order.
func (h Handlers) List(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	profiles := h.Registry.Profiles()

	items := make([]ProfileSummary, len(profiles))
	for i, p := range profiles {
		items[i] = toProfileSummary(p)
	}

	return web.Respond(ctx, w, items, http.StatusOK)
}

// ByID returns the full profile for the specified network. The id may be
// either the stable network id or the payment protocol alias.
func (h Handlers) ByID(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id := web.Param(r, "id")

	p, err := h.lookup(id)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toProfileDetail(p), http.StatusOK)
}

// Genesis returns the genesis block details for the specified network.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id := web.Param(r, "id")

	p, err := h.lookup(id)
	if err != nil {
		return err
	}

	info, err := toGenesisInfo(p)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, info, http.StatusOK)
}

// Checkpoints returns the pinned checkpoint table for the specified network
// in ascending height order.
func (h Handlers) Checkpoints(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id := web.Param(r, "id")

	p, err := h.lookup(id)
	if err != nil {
		return err
	}

	cps := p.Checkpoints.Checkpoints()
	items := make([]CheckpointInfo, len(cps))
	for i, cp := range cps {
		items[i] = CheckpointInfo{
			Height: cp.Height,
			Hash:   cp.Hash.String(),
		}
	}

	return web.Respond(ctx, w, items, http.StatusOK)
}

// AppCheckpointVerify is what a client provides to validate a block hash
// against a network's checkpoint table.
type AppCheckpointVerify struct {
	NetworkID string `json:"network_id" validate:"required"`
	Height    int32  `json:"height" validate:"gte=0"`
	Hash      string `json:"hash" validate:"required"`
}

// AppCheckpointResult reports the outcome of a checkpoint verification.
type AppCheckpointResult struct {
	NetworkID    string `json:"network_id"`
	Height       int32  `json:"height"`
	Checkpointed bool   `json:"checkpointed"`
	Passes       bool   `json:"passes"`
}

// VerifyCheckpoint validates a (height, hash) pair against the checkpoint
// table of the specified network.
func (h Handlers) VerifyCheckpoint(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app AppCheckpointVerify
	if err := web.Decode(r, &app); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Check(app); err != nil {
		return err
	}

	p, err := h.lookup(app.NetworkID)
	if err != nil {
		return err
	}

	hash, err := chainhash.NewHashFromStr(app.Hash)
	if err != nil {
		return errs.NewTrusted(fmt.Errorf("parsing hash: %w", err), http.StatusBadRequest)
	}

	result := AppCheckpointResult{
		NetworkID:    p.ID,
		Height:       app.Height,
		Checkpointed: p.IsCheckpoint(app.Height),
		Passes:       p.PassesCheckpoint(app.Height, hash),
	}

	if result.Checkpointed && !result.Passes {
		h.Evts.Send("checkpoint", "MISMATCH: network[%s] height[%d] hash[%s]", p.ID, app.Height, app.Hash)
	}

	return web.Respond(ctx, w, result, http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	h.Log.Infow("websocket open", "traceid", v.TraceID)

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}
			if err := c.WriteJSON(msg); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				h.Log.Infow("websocket closed", "traceid", v.TraceID)
				return nil
			}
		}
	}
}

// lookup resolves a path id to a profile, accepting the payment protocol
// alias as a fallback.
func (h Handlers) lookup(id string) (*network.Profile, error) {
	p, err := h.Registry.FromID(id)
	if err == nil {
		return p, nil
	}

	p, err = h.Registry.FromPaymentProtocolID(id)
	if err != nil {
		return nil, errs.NewTrusted(err, http.StatusNotFound)
	}

	return p, nil
}
