package catalog

import (
	"bytes"
	"context"
	"delivery-cost-service/internal/domain"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Location  string       `yaml:"location"`
	Centers   []centerFile `yaml:"centers"`
	Distances []legFile    `yaml:"distances"`
}

type centerFile struct {
	ID    string   `yaml:"id"`
	Stock []string `yaml:"stock"`
}

type legFile struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

// ParseYAML decodes a catalog document. Unknown fields are rejected so a
// typo in a key cannot silently drop data.
func ParseYAML(data []byte) (domain.CatalogSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.CatalogSpec{}, errors.New("parse catalog yaml: document is empty")
		}
		return domain.CatalogSpec{}, fmt.Errorf("parse catalog yaml: %w", err)
	}

	spec := domain.CatalogSpec{
		Location:  domain.LocationID(f.Location),
		Centers:   make([]domain.CenterSpec, 0, len(f.Centers)),
		Distances: make([]domain.Leg, 0, len(f.Distances)),
	}
	for _, c := range f.Centers {
		stock := make([]domain.Product, 0, len(c.Stock))
		for _, p := range c.Stock {
			stock = append(stock, domain.Product(p))
		}
		spec.Centers = append(spec.Centers, domain.CenterSpec{ID: domain.CenterID(c.ID), Stock: stock})
	}
	for _, l := range f.Distances {
		spec.Distances = append(spec.Distances, domain.Leg{
			From:     domain.NodeID(l.From),
			To:       domain.NodeID(l.To),
			Distance: l.Distance,
		})
	}

	return spec, nil
}

// MarshalYAML encodes spec in the same document layout ParseYAML reads.
func MarshalYAML(spec domain.CatalogSpec) ([]byte, error) {
	f := catalogFile{Location: string(spec.Location)}
	for _, c := range spec.Centers {
		cf := centerFile{ID: string(c.ID)}
		for _, p := range c.Stock {
			cf.Stock = append(cf.Stock, string(p))
		}
		f.Centers = append(f.Centers, cf)
	}
	for _, l := range spec.Distances {
		f.Distances = append(f.Distances, legFile{From: string(l.From), To: string(l.To), Distance: l.Distance})
	}

	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog yaml: %w", err)
	}
	return out, nil
}

// FileSource reads the catalog from a YAML file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) LoadCatalog(ctx context.Context) (domain.CatalogSpec, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return domain.CatalogSpec{}, fmt.Errorf("load catalog: read %q: %w", s.Path, err)
	}

	spec, err := ParseYAML(data)
	if err != nil {
		return domain.CatalogSpec{}, fmt.Errorf("load catalog %q: %w", s.Path, err)
	}
	return spec, nil
}

// DefaultSource serves the catalog compiled into the binary.
type DefaultSource struct{}

func (DefaultSource) LoadCatalog(ctx context.Context) (domain.CatalogSpec, error) {
	spec, err := ParseYAML(defaultCatalogYAML)
	if err != nil {
		return domain.CatalogSpec{}, fmt.Errorf("load default catalog: %w", err)
	}
	return spec, nil
}
