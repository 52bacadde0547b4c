package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/ports"
)

type memRepo struct {
	mu      sync.Mutex
	saved   map[string]*domain.Instance
	failFor string
}

func (r *memRepo) SaveInstance(ctx context.Context, inst *domain.Instance) error {
	if inst.Name == r.failFor {
		return errors.New("disk full")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saved == nil {
		r.saved = map[string]*domain.Instance{}
	}
	r.saved[inst.Name] = inst
	return nil
}

func (r *memRepo) ListInstances(ctx context.Context) ([]ports.InstanceSummary, error) {
	return nil, nil
}

func (r *memRepo) GetInstance(ctx context.Context, name string) (*parsers.RawInstance, error) {
	return nil, ports.ErrInstanceNotFound
}

func copyFixtures(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		b, err := os.ReadFile(filepath.Join("..", "parsers", "testdata", n))
		if err != nil {
			t.Fatalf("read fixture %s: %v", n, err)
		}
		if err := os.WriteFile(filepath.Join(dir, n), b, 0o600); err != nil {
			t.Fatalf("write fixture %s: %v", n, err)
		}
	}
	return dir
}

func TestImportDirectory(t *testing.T) {
	dir := copyFixtures(t, "triangle.vrp", "solomon_small.txt", "hf_classic.txt", "hf_large.vrp")
	if err := os.WriteFile(filepath.Join(dir, "broken.vrp"), []byte("NAME : broken\nDIMENSION : 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o700); err != nil {
		t.Fatal(err)
	}

	repo := &memRepo{}
	report, err := ImportDirectory(context.Background(), dir, parsers.DialectAuto, 2, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"TEST1", "XH-n4-k2", "hf_classic", "triangle-n3"}
	if len(report.Imported) != len(want) {
		t.Fatalf("imported = %v, want %v", report.Imported, want)
	}
	for i := range want {
		if report.Imported[i] != want[i] {
			t.Fatalf("imported[%d] = %q, want %q", i, report.Imported[i], want[i])
		}
	}

	if len(report.Failed) != 1 || report.Failed[0].File != "broken.vrp" {
		t.Fatalf("failed = %+v, want broken.vrp only", report.Failed)
	}
	if !errors.Is(report.Failed[0].Err, parsers.ErrEndOfStream) {
		t.Fatalf("broken.vrp err = %v, want ErrEndOfStream", report.Failed[0].Err)
	}

	if got := repo.saved["TEST1"]; got == nil || !got.Timed() {
		t.Fatalf("TEST1 not saved as a timed instance")
	}
}

func TestImportDirectoryRepositoryError(t *testing.T) {
	dir := copyFixtures(t, "triangle.vrp", "hf_classic.txt")

	_, err := ImportDirectory(context.Background(), dir, parsers.DialectAuto, 1, &memRepo{failFor: "triangle-n3"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestImportDirectoryMissingDir(t *testing.T) {
	_, err := ImportDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"), parsers.DialectAuto, 1, &memRepo{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
