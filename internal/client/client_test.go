package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hanpama/gqlcompose/internal/eventbus"
	"github.com/hanpama/gqlcompose/internal/events"
)

func TestExecuteDecodesEnvelope(t *testing.T) {
	var got Request
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"hello":"world"}}`)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	res, err := c.Execute(context.Background(), Request{Query: "{hello}", OperationName: "Q"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if string(res.Data) != `{"hello":"world"}` {
		t.Fatalf("unexpected data: %s", res.Data)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if got.Query != "{hello}" || got.OperationName != "Q" {
		t.Fatalf("unexpected request: %+v", got)
	}
	if ct := gotHeader.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
	if gotHeader.Get("Graphql-Request-Id") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestResponseErrorsAreNotTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":null,"errors":[{"message":"boom","locations":[{"line":1,"column":2}],"path":["hero",0],"extensions":{"code":"INTERNAL"}}]}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	res, err := c.Execute(context.Background(), Request{Query: "{hero}"})
	if err != nil {
		t.Fatalf("graphql errors must not fail the round trip: %v", err)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Message != "boom" || e.Locations[0].Line != 1 || e.Locations[0].Column != 2 {
		t.Fatalf("unexpected error: %+v", e)
	}
	if len(e.Path) != 2 || e.Path[0] != "hero" {
		t.Fatalf("unexpected path: %v", e.Path)
	}
	if e.Extensions["code"] != "INTERNAL" {
		t.Fatalf("unexpected extensions: %v", e.Extensions)
	}
}

func TestNon2xxStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	_, err := c.Execute(context.Background(), Request{Query: "{hello}"})
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestMalformedResponseJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>nope</html>")
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	_, err := c.Execute(context.Background(), Request{Query: "{hello}"})
	if err == nil || !strings.Contains(err.Error(), "invalid response JSON") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDefaultTimeoutApplies(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-block:
		}
	}))
	defer srv.Close()
	defer close(block)

	c, _ := New(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := c.Execute(context.Background(), Request{Query: "{hello}"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestCallerDeadlineWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		io.WriteString(w, `{"data":{}}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, WithTimeout(10*time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := c.Execute(ctx, Request{Query: "{hello}"}); err != nil {
		t.Fatalf("caller deadline should override the default timeout: %v", err)
	}
}

func TestConfiguredHeaders(t *testing.T) {
	var auth, tenant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		tenant = r.Header.Get("X-Tenant")
		io.WriteString(w, `{"data":{}}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, WithHeader("Authorization", "Bearer t0k"), WithHeader("X-Tenant", "acme"))
	if _, err := c.Execute(context.Background(), Request{Query: "{hello}"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if auth != "Bearer t0k" || tenant != "acme" {
		t.Fatalf("headers not forwarded: %q %q", auth, tenant)
	}
}

func TestMaxResponseBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"hello":"`+strings.Repeat("x", 100)+`"}}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, WithMaxResponseBytes(16))
	_, err := c.Execute(context.Background(), Request{Query: "{hello}"})
	if err == nil || !strings.Contains(err.Error(), "exceeds 16 bytes") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestRequestEventsPublished(t *testing.T) {
	eventbus.Use(eventbus.New())
	defer eventbus.Use(nil)

	var started []events.RequestStart
	var finished []events.RequestFinish
	defer eventbus.Subscribe(func(ctx context.Context, e events.RequestStart) { started = append(started, e) })()
	defer eventbus.Subscribe(func(ctx context.Context, e events.RequestFinish) { finished = append(finished, e) })()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{},"errors":[{"message":"partial"}]}`)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	if _, err := c.Execute(context.Background(), Request{Query: "{hello}", OperationName: "Op"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(started) != 1 || started[0].Query != "{hello}" || started[0].OperationName != "Op" {
		t.Fatalf("start events: %+v", started)
	}
	if len(finished) != 1 || finished[0].Status != http.StatusOK || len(finished[0].Errors) != 1 {
		t.Fatalf("finish events: %+v", finished)
	}
}

func TestNewRequiresEndpoint(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty endpoint")
	}
}
