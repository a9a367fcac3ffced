// Package handlers manages the different versions of the API.
package handlers

import (
	"expvar"
	"net/http"
	"net/http/pprof"
	"os"

	v1 "github.com/betacoin/betacoin/app/services/netinfo/handlers/v1"
	"github.com/betacoin/betacoin/business/web/mid"
	"github.com/betacoin/betacoin/foundation/chain/network"
	"github.com/betacoin/betacoin/foundation/events"
	"github.com/betacoin/betacoin/foundation/web"
	"go.uber.org/zap"
)

// MuxConfig contains all the mandatory systems required by handlers.
type MuxConfig struct {
	Shutdown chan os.Signal
	Log      *zap.SugaredLogger
	Registry *network.Registry
	Evts     *events.Events
}

// PublicMux constructs a http.Handler with all application routes defined.
func PublicMux(cfg MuxConfig) http.Handler {
	app := web.NewApp(
		cfg.Shutdown,
		mid.Logger(cfg.Log),
		mid.Errors(cfg.Log),
		mid.Metrics(),
		mid.Cors("*"),
		mid.Panics(),
	)

	v1.PublicRoutes(app, v1.Config{
		Log:      cfg.Log,
		Registry: cfg.Registry,
		Evts:     cfg.Evts,
	})

	return app
}

// DebugStandardLibraryMux registers all the debug routes from the standard
// library into a new mux bypassing the use of the DefaultServerMux. Using the
// DefaultServerMux would be a security risk since a dependency could inject a
// handler into our service without us knowing it.
func DebugStandardLibraryMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/vars", expvar.Handler())

	return mux
}
