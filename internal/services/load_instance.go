package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"vrp-instance-service/internal/assembler"
	"vrp-instance-service/internal/domain"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/platform/obs"
	"vrp-instance-service/internal/ports"
)

// LoadInstance parses content in dialect d and assembles the Instance.
// name is used when the file itself does not carry one.
// On any error no Instance is returned.
func LoadInstance(
	ctx context.Context,
	name string,
	d parsers.Dialect,
	content string,
	opts ...assembler.Option,
) (_ *domain.Instance, err error) {
	defer obs.Time(ctx, "instance.load")(&err)

	raw, err := parsers.Read(d, content)
	if err != nil {
		return nil, fmt.Errorf("load instance %q: %w", name, err)
	}
	if raw.Name == "" {
		raw.Name = name
	}

	inst, err := assembler.Build(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("load instance %q: %w", name, err)
	}
	return inst, nil
}

// LoadInstanceFile reads the whole file at path and loads it. The file name
// without extension is the fallback instance name.
func LoadInstanceFile(ctx context.Context, path string, d parsers.Dialect, opts ...assembler.Option) (*domain.Instance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load instance file: read %q: %w", path, err)
	}
	return LoadInstance(ctx, InstanceName(path), d, string(b), opts...)
}

// InstanceName derives a catalog name from a file path.
func InstanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadInstanceFrom fetches location from src and loads it. The last path
// segment without extension is the fallback instance name.
func LoadInstanceFrom(
	ctx context.Context,
	src ports.InstanceSource,
	location string,
	d parsers.Dialect,
	opts ...assembler.Option,
) (*domain.Instance, error) {
	if src == nil {
		return nil, errors.New("load instance: source must be non-nil")
	}
	content, err := src.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	name := location
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	return LoadInstance(ctx, InstanceName(name), d, content, opts...)
}
