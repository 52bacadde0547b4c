package repositories

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"vrp-instance-service/internal/assembler"
	"vrp-instance-service/internal/parsers"
	"vrp-instance-service/internal/platform/db"
	"vrp-instance-service/internal/ports"
	"vrp-instance-service/internal/services"
)

// openTestDB connects to TEST_DATABASE_URL or skips.
func openTestDB(t *testing.T) *SQLInstanceRepository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(ctx, conn))
	return NewSQLInstanceRepository(conn)
}

func TestSQLInstanceRepositoryRoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	inst, err := services.LoadInstanceFile(ctx, "../../parsers/testdata/solomon_small.txt", parsers.DialectCVRPTW)
	require.NoError(t, err)
	inst.Name = "repo-test-" + inst.Name
	t.Cleanup(func() { _, _ = repo.DB.Exec(`DELETE FROM instances WHERE name = $1`, inst.Name) })

	require.NoError(t, repo.SaveInstance(ctx, inst))
	// Saving twice replaces the rows instead of failing on the primary keys.
	require.NoError(t, repo.SaveInstance(ctx, inst))

	raw, err := repo.GetInstance(ctx, inst.Name)
	require.NoError(t, err)
	require.Equal(t, parsers.DialectCVRPTW, raw.Dialect)
	require.True(t, raw.Timed)
	require.Equal(t, inst.Points, raw.Points)
	require.Equal(t, inst.VehicleTypes, raw.VehicleTypes)

	rebuilt, err := assembler.Build(raw)
	require.NoError(t, err)
	require.Equal(t, inst.Links, rebuilt.Links)

	list, err := repo.ListInstances(ctx)
	require.NoError(t, err)
	found := false
	for _, s := range list {
		if s.Name == inst.Name {
			found = true
			require.Equal(t, len(inst.Points), s.Points)
			require.Equal(t, inst.FleetSize(), s.FleetSize)
		}
	}
	require.True(t, found)
}

func TestSQLInstanceRepositoryNotFound(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.GetInstance(context.Background(), "repo-test-missing")
	require.True(t, errors.Is(err, ports.ErrInstanceNotFound))
}

func TestSQLInstanceRepositoryNilDB(t *testing.T) {
	repo := NewSQLInstanceRepository(nil)
	ctx := context.Background()

	require.Error(t, repo.SaveInstance(ctx, nil))
	_, err := repo.ListInstances(ctx)
	require.Error(t, err)
	_, err = repo.GetInstance(ctx, "x")
	require.Error(t, err)
	require.Error(t, InitSchema(ctx, nil))
}
