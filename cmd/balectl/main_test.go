package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/balesite/internal/app/store/catalog"
	"github.com/dalemusser/balesite/internal/app/system/resolver"
	"github.com/dalemusser/balesite/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{
		log:  zap.NewNop(),
		load: func(string) (*catalog.Catalog, error) { return testutil.Catalog(), nil },
	}
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPaths(t *testing.T) {
	out, err := run(t, "paths")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 15 {
		t.Errorf("got %d paths, want 15:\n%s", len(lines), out)
	}
	for _, want := range []string{"/pricing", "/california", "/california/los-angeles", "/new-york/new-york-city"} {
		if !strings.Contains(out, " "+want+"\n") {
			t.Errorf("missing %s", want)
		}
	}
}

func TestPaths_Kind(t *testing.T) {
	out, err := run(t, "paths", "--kind", "state")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	want := "state   /california\nstate   /new-york\nstate   /vermont\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}

	if _, err := run(t, "paths", "--kind", "county"); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"static  /"}},
		{"/pricing/", []string{"static  /pricing"}},
		{"/california", []string{"state   /california  California", "$85-$120/ton"}},
		{"/Vermont", []string{"state   /vermont  Vermont", "none published"}},
		{"/california/los-angeles", []string{"city    /california/los-angeles  Los Angeles, California"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out, err := run(t, "resolve", tt.path)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	for _, p := range []string{"/atlantis", "/california/atlantis", "/a/b/c"} {
		_, err := run(t, "resolve", p)
		if !errors.Is(err, resolver.ErrNotFound) {
			t.Errorf("%s: err = %v, want ErrNotFound", p, err)
		}
	}
}

func TestEstimate(t *testing.T) {
	out, err := run(t, "estimate", "10-25", "--state", "ca", "--disposal", "500")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	for _, w := range []string{
		"quote estimate:   $900 - $1,100 per month",
		"calculator (California, $85-$120/ton)",
		"revenue:          $850 - $3,000",
		"disposal savings: $500",
		"total benefit:    $1,350 - $3,500",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output does not contain %q:\n%s", w, out)
		}
	}
}

func TestEstimate_Errors(t *testing.T) {
	if _, err := run(t, "estimate", "7-9"); err == nil {
		t.Error("expected an error for an unknown bucket")
	}
	if _, err := run(t, "estimate", "10-25", "--state", "VT"); err == nil {
		t.Error("expected an error for a state without pricing")
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if want := "ok: 3 states, 5 cities, 2 priced states\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCheck_Invalid(t *testing.T) {
	a := &app{
		log:  zap.NewNop(),
		load: func(string) (*catalog.Catalog, error) { return catalog.New(catalog.Data{}), nil },
	}
	root := newRootCmd(a)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"check"})
	if err := root.Execute(); !errors.Is(err, catalog.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestEmbeddedCatalogPassesCheck(t *testing.T) {
	cat, err := loadCatalog("")
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if err := cat.Check(); err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}
}
