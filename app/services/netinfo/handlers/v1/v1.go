// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/betacoin/betacoin/app/services/netinfo/handlers/v1/addrgrp"
	"github.com/betacoin/betacoin/app/services/netinfo/handlers/v1/netgrp"
	"github.com/betacoin/betacoin/foundation/chain/network"
	"github.com/betacoin/betacoin/foundation/events"
	"github.com/betacoin/betacoin/foundation/web"
	"go.uber.org/zap"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log      *zap.SugaredLogger
	Registry *network.Registry
	Evts     *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	const version = "v1"

	ngh := netgrp.Handlers{
		Log:      cfg.Log,
		Registry: cfg.Registry,
		Evts:     cfg.Evts,
	}
	app.Handle(http.MethodGet, version, "/networks", ngh.List)
	app.Handle(http.MethodGet, version, "/networks/:id", ngh.ByID)
	app.Handle(http.MethodGet, version, "/genesis/:id", ngh.Genesis)
	app.Handle(http.MethodGet, version, "/checkpoints/:id", ngh.Checkpoints)
	app.Handle(http.MethodPost, version, "/checkpoints/verify", ngh.VerifyCheckpoint)
	app.Handle(http.MethodGet, version, "/events", ngh.Events)

	agh := addrgrp.Handlers{
		Log:      cfg.Log,
		Registry: cfg.Registry,
		Evts:     cfg.Evts,
	}
	app.Handle(http.MethodPost, version, "/address/verify", agh.Verify)
	app.Handle(http.MethodGet, version, "/address/resolve/:address", agh.Resolve)
}
