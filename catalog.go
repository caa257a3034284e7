package fieldpath

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"gopkg.in/yaml.v3"
)

// Catalog maps members to field-level labels. It plays the part of a
// per-field display attribute for declarations that cannot carry one, such
// as paths parsed from text. The zero value is an empty catalog.
//
// Catalog files are YAML:
//
//	labels:
//	  shop.Order.Lines: Order lines
//	  shop.Line.Sku: SKU
type Catalog struct {
	labels map[string]string
}

type catalogFile struct {
	Labels map[string]string `yaml:"labels"`
}

// NewCatalog builds a catalog from Owner.Symbol keys.
func NewCatalog(labels map[string]string) Catalog {
	return Catalog{labels: maps.Clone(labels)}
}

// LoadCatalog decodes a YAML catalog. An empty document is an empty catalog.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return Catalog{}, fmt.Errorf("fieldpath: decode catalog: %w", err)
	}
	for member := range file.Labels {
		if member == "" {
			return Catalog{}, errors.New("fieldpath: decode catalog: empty member key")
		}
	}
	return Catalog{labels: file.Labels}, nil
}

// Lookup returns the label recorded for key's member, if any.
func (c Catalog) Lookup(key Key) (string, bool) {
	label, ok := c.labels[key.String()]
	return label, ok && label != ""
}

func (c Catalog) Len() int {
	return len(c.labels)
}
