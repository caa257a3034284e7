package fieldpath

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccess(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Access
	}{
		{
			name: "blank",
			path: "  ",
			want: nil,
		},
		{
			name: "single member",
			path: "Email",
			want: []Access{{Symbol: "Email"}},
		},
		{
			name: "nested members",
			path: "Customer.Address.Street",
			want: []Access{{Symbol: "Customer"}, {Symbol: "Address"}, {Symbol: "Street"}},
		},
		{
			name: "indexes",
			path: "Order.Lines[2].Sku",
			want: []Access{{Symbol: "Order"}, {Symbol: "Lines", Index: lo.ToPtr(2)}, {Symbol: "Sku"}},
		},
		{
			name: "nested index",
			path: "Matrix[1][2]",
			want: []Access{{Symbol: "Matrix", Index: lo.ToPtr(1)}, {Index: lo.ToPtr(2)}},
		},
		{
			name: "zero and spaced index",
			path: "Lines[0].Cells[ 10 ]",
			want: []Access{{Symbol: "Lines", Index: lo.ToPtr(0)}, {Symbol: "Cells", Index: lo.ToPtr(10)}},
		},
		{
			name: "quoted identifier key",
			path: `Lines["Sku"]`,
			want: []Access{{Symbol: "Lines"}, {Symbol: "Sku"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccess(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			cached, err := ParseAccess(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cached)
		})
	}
}

func TestParseAccess_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "call", path: "Order.Total()"},
		{name: "function", path: "len(Lines)"},
		{name: "operator", path: "a + b"},
		{name: "computed index", path: "Lines[i]"},
		{name: "negative index", path: "Lines[-1]"},
		{name: "float index", path: "Lines[1.5]"},
		{name: "non identifier key", path: `Lines["not a member"]`},
		{name: "optional chaining", path: "Order?.Lines"},
		{name: "literal", path: "42"},
		{name: "malformed", path: "Order..Lines"},
		{name: "env variable", path: "$env"},
		{name: "env member", path: "$env.Lines"},
		{name: "hex index", path: "Lines[0x10]"},
		{name: "octal index", path: "Lines[0o7]"},
		{name: "leading zero index", path: "Lines[010]"},
		{name: "underscored index", path: "Lines[1_000]"},
		{name: "exponent index", path: "Lines[1e3]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rejected := testutil.ToFloat64(invalidPaths.WithLabelValues("text"))

			got, err := ParseAccess(tt.path)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidPath)

			var pathErr *InvalidPathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, tt.path, pathErr.Path)
			assert.Equal(t, rejected+1, testutil.ToFloat64(invalidPaths.WithLabelValues("text")))

			_, cached := parsedPaths.Load(tt.path)
			assert.False(t, cached)
		})
	}
}

func TestParseAccess_CallerOwnsResult(t *testing.T) {
	first, err := ParseAccess("Rows[4].Cells")
	require.NoError(t, err)
	*first[0].Index = 99
	first[1].Symbol = "Changed"

	second, err := ParseAccess("Rows[4].Cells")
	require.NoError(t, err)
	assert.Equal(t, []Access{{Symbol: "Rows", Index: lo.ToPtr(4)}, {Symbol: "Cells"}}, second)
}
