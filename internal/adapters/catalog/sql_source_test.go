package catalog

import (
	"context"
	"delivery-cost-service/internal/domain"
	"delivery-cost-service/internal/platform/db"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSQLSourceLoadCatalog(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	mock.ExpectQuery("SELECT location_id FROM catalog_location").
		WillReturnRows(sqlmock.NewRows([]string{"location_id"}).AddRow("L1"))
	mock.ExpectQuery("FROM centers c").
		WillReturnRows(sqlmock.NewRows([]string{"center_id", "product"}).
			AddRow("C1", "A").
			AddRow("C1", "B").
			AddRow("C2", "B").
			AddRow("C3", nil))
	mock.ExpectQuery("FROM distances").
		WillReturnRows(sqlmock.NewRows([]string{"node_a", "node_b", "distance"}).
			AddRow("C1", "L1", 10.0).
			AddRow("C1", "C2", 15.0))

	spec, err := NewSQLSource(conn).LoadCatalog(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Equal(t, domain.LocationID("L1"), spec.Location)
	require.Equal(t, []domain.CenterSpec{
		{ID: "C1", Stock: []domain.Product{"A", "B"}},
		{ID: "C2", Stock: []domain.Product{"B"}},
		{ID: "C3"},
	}, spec.Centers)
	require.Equal(t, []domain.Leg{
		{From: "C1", To: "L1", Distance: 10},
		{From: "C1", To: "C2", Distance: 15},
	}, spec.Distances)
}

func TestSQLSourceEmptyLocation(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	mock.ExpectQuery("SELECT location_id FROM catalog_location").
		WillReturnRows(sqlmock.NewRows([]string{"location_id"}))

	_, err = NewSQLSource(conn).LoadCatalog(context.Background())
	require.ErrorContains(t, err, "catalog_location is empty")
}

func TestSeedAndLoadRoundTripOnSQLite(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(ctx, conn))
	// Schema creation is idempotent.
	require.NoError(t, InitSchema(ctx, conn))

	want, err := Build(ctx, DefaultSource{})
	require.NoError(t, err)

	require.NoError(t, SeedCatalog(ctx, conn, "sqlite", want.Spec()))
	// Reseeding replaces rather than duplicates.
	require.NoError(t, SeedCatalog(ctx, conn, "sqlite", want.Spec()))

	got, err := Build(ctx, NewSQLSource(conn))
	require.NoError(t, err)
	require.Equal(t, want.Spec(), got.Spec())
	require.Equal(t, want.Fingerprint(), got.Fingerprint())
}

func TestSeedCatalogRejectsInvalidSpec(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	err = SeedCatalog(context.Background(), conn, "pgx", domain.CatalogSpec{Location: "L1"})
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, "$1, $2, $3", placeholders("pgx", 3))
	require.Equal(t, "?, ?", placeholders("sqlite", 2))
}
