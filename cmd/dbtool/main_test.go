package main

import (
	"bytes"
	"context"
	"delivery-cost-service/internal/adapters/catalog"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitAndSeedRoundTrip(t *testing.T) {
	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	require.NoError(t, initAndSeed(ctx, conn, "sqlite", catalog.DefaultSource{}))

	// Seeding twice replaces rows rather than duplicating them.
	require.NoError(t, initAndSeed(ctx, conn, "sqlite", catalog.DefaultSource{}))

	cat, err := catalog.Build(ctx, catalog.NewSQLSource(conn))
	require.NoError(t, err)

	want, err := catalog.Build(ctx, catalog.DefaultSource{})
	require.NoError(t, err)
	require.Equal(t, want.Fingerprint(), cat.Fingerprint())
}

func TestInitAndSeedMissingFile(t *testing.T) {
	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	err = initAndSeed(context.Background(), conn, "sqlite", catalog.NewFileSource("does/not/exist.yaml"))
	require.Error(t, err)
}

func TestExportCatalogRoundTrip(t *testing.T) {
	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	require.NoError(t, initAndSeed(ctx, conn, "sqlite", catalog.DefaultSource{}))

	var buf bytes.Buffer
	require.NoError(t, exportCatalog(ctx, conn, &buf))

	spec, err := catalog.ParseYAML(buf.Bytes())
	require.NoError(t, err)
	cat, err := domain.NewCatalog(spec)
	require.NoError(t, err)

	want, err := catalog.Build(ctx, catalog.DefaultSource{})
	require.NoError(t, err)
	require.Equal(t, want.Fingerprint(), cat.Fingerprint())
}

func TestExportCatalogEmptyDatabase(t *testing.T) {
	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	require.NoError(t, catalog.InitSchema(ctx, conn))

	var buf bytes.Buffer
	require.Error(t, exportCatalog(ctx, conn, &buf))
	require.Zero(t, buf.Len())
}
