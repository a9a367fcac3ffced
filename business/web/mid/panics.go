package mid

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/betacoin/betacoin/foundation/web"
)

// panics counts the panics recovered by the middleware.
var panics = expvar.NewInt("panics")

// Panics recovers from panics and converts the panic to an error so it
// is reported in Metrics and handled in Errors.
func Panics() web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware
		// chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {

			// Defer a function to recover from a panic and set the err
			// return variable after the fact.
			defer func() {
				if rec := recover(); rec != nil {
					trace := debug.Stack()
					err = fmt.Errorf("PANIC [%v] TRACE[%s]", rec, string(trace))
					panics.Add(1)
				}
			}()

			// Call the next handler and set its return value in the
			// err variable.
			return handler(ctx, w, r)
		}

		return h
	}

	return m
}
