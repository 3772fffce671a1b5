package completion

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestCompleteSendsRequestAndParsesReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if req.Inputs != "tell me a joke" {
			t.Errorf("inputs = %q", req.Inputs)
		}
		if req.Parameters != DefaultParameters() {
			t.Errorf("parameters = %+v", req.Parameters)
		}
		_, _ = w.Write([]byte(`[{"generated_text":"  Why did the gopher cross the road?  "}]`))
	}))
	defer srv.Close()

	c := New(Options{URL: srv.URL, APIKey: "secret", HTTPClient: srv.Client()})
	got, err := c.Complete(t.Context(), "tell me a joke")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "Why did the gopher cross the road?" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestDefaultParametersMatchWireContract(t *testing.T) {
	raw, err := json.Marshal(Request{Inputs: "x", Parameters: DefaultParameters()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"inputs":"x","parameters":{"max_length":100,"temperature":0.7,"do_sample":true,"return_full_text":false}}`
	if string(raw) != want {
		t.Fatalf("wire body = %s, want %s", raw, want)
	}
}

func TestCompleteFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"error field", 200, `[{"error":"model loading"}]`, func(err error) bool { return errors.Is(err, ErrRemote) }},
		{"empty list", 200, `[]`, func(err error) bool { return errors.Is(err, ErrEmptyCompletion) }},
		{"blank text", 200, `[{"generated_text":"   "}]`, func(err error) bool { return errors.Is(err, ErrEmptyCompletion) }},
		{"object payload", 200, `{"error":"bad"}`, func(err error) bool { return err != nil }},
		{"server error", 503, `overloaded`, func(err error) bool {
			var se *StatusError
			return errors.As(err, &se) && se.Code == 503 && se.Body == "overloaded"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(Options{URL: srv.URL, APIKey: "k", HTTPClient: srv.Client()})
			_, err := c.Complete(t.Context(), "hi")
			if !tc.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCompleteWithoutCredentialMakesNoCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := New(Options{URL: srv.URL, HTTPClient: srv.Client()})
	if c.Configured() {
		t.Fatal("expected unconfigured client")
	}
	if _, err := c.Complete(t.Context(), "hi"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no http calls, got %d", calls.Load())
	}
}

func TestCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(Options{URL: url, APIKey: "k"})
	if _, err := c.Complete(t.Context(), "hi"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestNewDefaultsURL(t *testing.T) {
	if got := New(Options{}).URL(); got != DefaultURL {
		t.Fatalf("URL() = %q, want %q", got, DefaultURL)
	}
}

func TestNewWithoutHTTPClientAddsNoTimeout(t *testing.T) {
	c := New(Options{APIKey: "secret"})
	if !c.Configured() {
		t.Fatal("expected configured client")
	}
	if c.httpClient.Timeout != 0 {
		t.Fatalf("expected no client timeout, got %v", c.httpClient.Timeout)
	}
}
