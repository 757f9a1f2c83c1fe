package catalog

import (
	"context"
	"delivery-cost-service/internal/domain"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSourceBuildsShippedCatalog(t *testing.T) {
	cat, err := Build(context.Background(), DefaultSource{})
	require.NoError(t, err)

	require.Equal(t, domain.LocationID("L1"), cat.Location())
	require.Equal(t, []domain.CenterID{"C1", "C2", "C3"}, cat.Centers())
	require.Equal(t, []domain.Product{"C", "D", "F", "G", "H", "I"}, cat.StockOf("C3"))

	d, err := cat.Distance("L1", "C2")
	require.NoError(t, err)
	require.Equal(t, 20.0, d)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
location: HUB
centers:
  - id: N
    stock: [apples]
  - id: S
    stock: [pears, apples]
distances:
  - {from: N, to: HUB, distance: 4}
  - {from: S, to: HUB, distance: 6.5}
  - {from: N, to: S, distance: 3}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cat, err := Build(context.Background(), NewFileSource(path))
	require.NoError(t, err)
	require.Equal(t, []domain.CenterID{"N", "S"}, cat.Centers())
	require.True(t, cat.Stocks("S", "pears"))

	d, err := cat.Distance("HUB", "S")
	require.NoError(t, err)
	require.Equal(t, 6.5, d)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.yaml")).LoadCatalog(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseYAMLRejectsUnknownFieldsAndEmptyDocs(t *testing.T) {
	_, err := ParseYAML([]byte("location: L1\nwarehouses: []\n"))
	require.Error(t, err)

	_, err = ParseYAML(nil)
	require.Error(t, err)

	_, err = ParseYAML([]byte("location: [unterminated"))
	require.Error(t, err)
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	spec, err := DefaultSource{}.LoadCatalog(context.Background())
	require.NoError(t, err)

	out, err := MarshalYAML(spec)
	require.NoError(t, err)

	back, err := ParseYAML(out)
	require.NoError(t, err)
	require.Equal(t, spec, back)
}

type failingSource struct{}

func (failingSource) LoadCatalog(context.Context) (domain.CatalogSpec, error) {
	return domain.CatalogSpec{}, errors.New("unreachable")
}

func TestBuildPropagatesSourceAndValidationErrors(t *testing.T) {
	_, err := Build(context.Background(), failingSource{})
	require.ErrorContains(t, err, "unreachable")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("location: L1\ncenters:\n  - id: C1\n    stock: [A]\n"), 0o600))
	_, err = Build(context.Background(), NewFileSource(path))
	require.ErrorIs(t, err, domain.ErrMissingDistance)
}
