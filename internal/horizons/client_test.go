package horizons

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("example.com/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchVectorEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(envelope{Result: sampleResult})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	v, err := client.FetchVector(context.Background(), "499", start, start.Add(time.Minute))
	if err != nil {
		t.Fatalf("FetchVector returned error: %v", err)
	}
	if v.X == 0 && v.Y == 0 {
		t.Fatalf("vector = %#v, want sample values", v)
	}

	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	want := map[string]string{
		"format":      "json",
		"EPHEM_TYPE":  "VECTORS",
		"COMMAND":     "499",
		"CENTER":      "500@10",
		"REF_PLANE":   "ECLIPTIC",
		"OUT_UNITS":   "AU-D",
		"CSV_FORMAT":  "YES",
		"VEC_TABLE":   "1",
		"START_TIME":  "'2026-Mar-01 12:00:00'",
		"STOP_TIME":   "'2026-Mar-01 12:01:00'",
		"STEP_SIZE":   "'1 m'",
	}
	for key, val := range want {
		if got := gotQuery.Get(key); got != val {
			t.Fatalf("query %s = %q, want %q", key, got, val)
		}
	}
}

func TestClient_FetchVectorErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantSub string
	}{
		{
			name: "http status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "busy", http.StatusServiceUnavailable)
			},
			wantSub: "status 503",
		},
		{
			name: "envelope error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(envelope{Error: "unknown body"})
			},
			wantSub: "unknown body",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
			wantSub: "decode response",
		},
		{
			name: "missing markers",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(envelope{Result: "no table here"})
			},
			wantSub: "$$SOE",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			now := time.Now()
			_, err = client.FetchVector(context.Background(), "199", now, now.Add(time.Minute))
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error = %v, want substring %q", err, tc.wantSub)
			}
		})
	}
}

func TestClient_FetchVectorHonorsContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	now := time.Now()
	if _, err := client.FetchVector(ctx, "299", now, now.Add(time.Minute)); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
