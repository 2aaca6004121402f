package cep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"01310-100", "01310100"},
		{"01310100", "01310100"},
		{"  01.310-100  ", "01310100"},
		{"013101009999", "01310100"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format("01310100"); got != "01310-100" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format("013"); got != "013" {
		t.Fatalf("partial input should pass through, got %q", got)
	}
}

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01310100/json/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	addr, err := client.Lookup(context.Background(), "01310100")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if addr.Street != "Avenida Paulista" || addr.Neighborhood != "Bela Vista" || addr.City != "São Paulo" {
		t.Fatalf("unexpected address %+v", addr)
	}
}

func TestLookupErroField(t *testing.T) {
	bodies := []string{`{"erro": true}`, `{"erro": "true"}`}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))

		client := NewClient(srv.URL)
		_, err := client.Lookup(context.Background(), "99999999")
		srv.Close()

		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("body %s: expected ErrNotFound, got %v", body, err)
		}
	}
}

func TestLookupTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	if _, err := client.Lookup(context.Background(), "01310100"); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestLookupRejectsIncompleteCode(t *testing.T) {
	client := NewClient("http://unused.invalid")
	if _, err := client.Lookup(context.Background(), "0131"); err == nil {
		t.Fatal("expected error for incomplete cep")
	}
}
