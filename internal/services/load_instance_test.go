package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"vrp-instance-service/internal/assembler"
	"vrp-instance-service/internal/geometry"
	"vrp-instance-service/internal/parsers"
)

func TestLoadInstanceFile(t *testing.T) {
	inst := loadTriangle(t)

	if inst.Name != "triangle-n3" {
		t.Fatalf("name = %q, want %q", inst.Name, "triangle-n3")
	}
	if len(inst.Points) != 3 {
		t.Fatalf("points = %d, want 3", len(inst.Points))
	}
	if got := inst.Distances.At(1, 2); got != 5 {
		t.Fatalf("distance(1,2) = %v, want 5", got)
	}
}

func TestLoadInstanceFallbackName(t *testing.T) {
	inst, err := LoadInstanceFile(context.Background(), "../parsers/testdata/hf_classic.txt", parsers.DialectAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Name != "hf_classic" {
		t.Fatalf("name = %q, want %q", inst.Name, "hf_classic")
	}
	if inst.FleetSize() != 5 {
		t.Fatalf("fleet size = %d, want 5", inst.FleetSize())
	}
}

func TestLoadInstanceWithMetric(t *testing.T) {
	b, err := os.ReadFile("../parsers/testdata/hf_classic.txt")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	inst, err := LoadInstance(context.Background(), "hf", parsers.DialectHFVRP, string(b),
		assembler.WithMetric(geometry.RoundedEuclidean{Digits: 0}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := inst.Distances.At(0, 1); got != 14 {
		t.Fatalf("distance(0,1) = %v, want 14", got)
	}
}

func TestLoadInstanceParseError(t *testing.T) {
	content := "NAME : x\nDIMENSION : 2\nCAPACITY : 5\nEDGE_WEIGHT_TYPE : GEO\nNODE_COORD_SECTION\n"

	inst, err := LoadInstance(context.Background(), "x", parsers.DialectCVRP, content)
	if inst != nil {
		t.Fatal("partial instance returned with error")
	}
	if !errors.Is(err, parsers.ErrUnsupportedEdgeWeightType) {
		t.Fatalf("err = %v, want ErrUnsupportedEdgeWeightType", err)
	}
}

func TestLoadInstanceFileMissing(t *testing.T) {
	_, err := LoadInstanceFile(context.Background(), "testdata/does-not-exist.vrp", parsers.DialectCVRP)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestInstanceName(t *testing.T) {
	cases := map[string]string{
		"/data/A-n32-k5.vrp": "A-n32-k5",
		"C101.txt":           "C101",
		"dir/noext":          "noext",
	}
	for in, want := range cases {
		if got := InstanceName(in); got != want {
			t.Fatalf("InstanceName(%q) = %q, want %q", in, got, want)
		}
	}
}

type staticSource map[string]string

func (s staticSource) Fetch(ctx context.Context, location string) (string, error) {
	c, ok := s[location]
	if !ok {
		return "", errors.New("not found")
	}
	return c, nil
}

func TestLoadInstanceFrom(t *testing.T) {
	b, err := os.ReadFile("../parsers/testdata/hf_classic.txt")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	src := staticSource{"https://example.org/hfvrp/Golden_13.txt?raw=1": string(b)}

	inst, err := LoadInstanceFrom(context.Background(), src, "https://example.org/hfvrp/Golden_13.txt?raw=1", parsers.DialectAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.Name != "Golden_13" {
		t.Fatalf("name = %q, want %q", inst.Name, "Golden_13")
	}

	if _, err := LoadInstanceFrom(context.Background(), src, "https://example.org/none.txt", parsers.DialectAuto); err == nil {
		t.Fatal("expected error")
	}
	if _, err := LoadInstanceFrom(context.Background(), nil, "x", parsers.DialectAuto); err == nil {
		t.Fatal("expected error")
	}
}
