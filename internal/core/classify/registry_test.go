package classify

import (
	"context"
	"testing"

	perr "langid/internal/platform/errors"
)

func stub(name string) Adapter {
	return AdapterFunc{ID: name, Fn: func(context.Context, string, string) (Result, error) {
		return Result{Code: "en", Backend: name}, nil
	}}
}

func TestResolveFallsThroughToPrimary(t *testing.T) {
	r, err := NewRegistry(stub("primary"), stub("alternate"), "")
	if err != nil {
		t.Fatalf("NewRegistry err: %v", err)
	}
	if r.AltName() != DefaultAltName {
		t.Fatalf("AltName = %q", r.AltName())
	}
	for _, name := range []string{"", "primary", "ALT", "alt ", "cld2", "typo"} {
		if got := r.Resolve(name).Name(); got != "primary" {
			t.Fatalf("Resolve(%q) = %q, want primary", name, got)
		}
	}
	if got := r.Resolve("alt").Name(); got != "alternate" {
		t.Fatalf("Resolve(alt) = %q", got)
	}
}

func TestResolveCustomAltName(t *testing.T) {
	r, _ := NewRegistry(stub("p"), stub("a"), "cld2")
	if r.Resolve("cld2").Name() != "a" || r.Resolve("alt").Name() != "p" {
		t.Fatalf("custom alt token not honoured")
	}
	if got := len(r.Adapters()); got != 2 {
		t.Fatalf("Adapters len = %d", got)
	}
}

func TestNewRegistryRejectsNil(t *testing.T) {
	_, err := NewRegistry(nil, stub("a"), "alt")
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestAdapterFunc(t *testing.T) {
	a := stub("x")
	res, err := a.Classify(context.Background(), "hello", "")
	if err != nil || res.Backend != "x" {
		t.Fatalf("Classify = %+v, %v", res, err)
	}
}

func TestUnknown(t *testing.T) {
	u := Unknown("p")
	if u.Code != "und" || u.Reliable || len(u.Candidates) != 0 || u.Backend != "p" {
		t.Fatalf("Unknown = %+v", u)
	}
}
