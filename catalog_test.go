package fieldpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	src := `
labels:
  shop.Order.Lines: Order lines
  shop.Line.Sku: SKU
  Email: E-mail address
`
	c, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	label, ok := c.Lookup(Key{Owner: "shop.Line", Symbol: "Sku"})
	assert.True(t, ok)
	assert.Equal(t, "SKU", label)

	label, ok = c.Lookup(Key{Symbol: "Email"})
	assert.True(t, ok)
	assert.Equal(t, "E-mail address", label)

	_, ok = c.Lookup(Key{Owner: "shop.Line", Symbol: "Qty"})
	assert.False(t, ok)
}

func TestLoadCatalog_Empty(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	_, ok := Catalog{}.Lookup(Key{Symbol: "Email"})
	assert.False(t, ok)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "malformed", src: "labels: [unclosed"},
		{name: "wrong shape", src: "labels:\n  - a\n  - b\n"},
		{name: "empty key", src: "labels:\n  \"\": Nothing\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.src))
			assert.ErrorContains(t, err, "fieldpath: decode catalog")
		})
	}
}

func TestNewCatalog_Copies(t *testing.T) {
	labels := map[string]string{"Email": "E-mail"}
	c := NewCatalog(labels)
	labels["Email"] = "Changed"

	label, ok := c.Lookup(Key{Symbol: "Email"})
	assert.True(t, ok)
	assert.Equal(t, "E-mail", label)
}
