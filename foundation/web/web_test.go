package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/betacoin/betacoin/foundation/web"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_App(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	shutdown := make(chan os.Signal, 1)
	app := web.NewApp(shutdown)

	echo := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		var p payload
		if err := web.Decode(r, &p); err != nil {
			return err
		}
		p.Name = p.Name + "/" + web.Param(r, "id")
		return web.Respond(ctx, w, p, http.StatusOK)
	}
	app.Handle(http.MethodPost, "v1", "/echo/:id", echo)

	traced := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		v, err := web.GetValues(ctx)
		if err != nil {
			return err
		}
		return web.Respond(ctx, w, struct {
			TraceID string `json:"trace_id"`
		}{v.TraceID}, http.StatusOK)
	}
	app.Handle(http.MethodGet, "v1", "/trace", traced)

	t.Log("Given the need to route and respond to web requests.")
	{
		t.Logf("\tTest 0:\tWhen decoding and responding on a parameterized route.")
		{
			body, _ := json.Marshal(payload{Name: "alpha", Value: 7})
			r := httptest.NewRequest(http.MethodPost, "/v1/echo/42", bytes.NewReader(body))
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tTest 0:\tShould get status 200: got %d", failed, w.Code)
			}
			t.Logf("\t%s\tTest 0:\tShould get status 200.", success)

			var got payload
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould get a JSON body back: %v", failed, err)
			}
			if got.Name != "alpha/42" || got.Value != 7 {
				t.Errorf("\t%s\tTest 0:\tShould round trip the payload with the route param: %+v", failed, got)
			} else {
				t.Logf("\t%s\tTest 0:\tShould round trip the payload with the route param.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen reading the request values from the context.")
		{
			r := httptest.NewRequest(http.MethodGet, "/v1/trace", nil)
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)

			var got struct {
				TraceID string `json:"trace_id"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould get a JSON body back: %v", failed, err)
			}
			if got.TraceID == "" {
				t.Errorf("\t%s\tTest 1:\tShould assign a trace id to every request.", failed)
			} else {
				t.Logf("\t%s\tTest 1:\tShould assign a trace id to every request.", success)
			}
		}
	}
}
