package fieldpath

import (
	"fmt"
	"math"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// FromTraversal converts an HCL traversal such as order.lines[2].sku into
// declarations under owner. Attribute steps become members; numeric index
// steps attach to the preceding member. Splats, string keys and fractional
// or negative indexes fail with *InvalidPathError.
func FromTraversal(owner string, t hcl.Traversal) ([]Access, error) {
	out := make([]Access, 0, len(t))
	for _, step := range t {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			out = append(out, Access{Owner: owner, Symbol: s.Name})
		case hcl.TraverseAttr:
			out = append(out, Access{Owner: owner, Symbol: s.Name})
		case hcl.TraverseIndex:
			i, err := traversalIndex(s.Key)
			if err != nil {
				invalidPathInc("hcl")
				return nil, &InvalidPathError{Path: formatTraversal(t), Reason: "unsupported index", Err: err}
			}
			if n := len(out); n > 0 && out[n-1].Index == nil {
				out[n-1].Index = &i
				continue
			}
			out = append(out, Access{Owner: owner, Index: &i})
		default:
			invalidPathInc("hcl")
			return nil, invalidPath(formatTraversal(t), fmt.Sprintf("unsupported traversal step %T", step))
		}
	}
	return out, nil
}

// ParseTraversal parses src as an absolute HCL traversal and converts it with
// FromTraversal.
func ParseTraversal(owner, src string) ([]Access, error) {
	t, diags := hclsyntax.ParseTraversalAbs([]byte(src), "", hcl.InitialPos)
	if diags.HasErrors() {
		invalidPathInc("hcl")
		return nil, &InvalidPathError{Path: src, Reason: "malformed traversal", Err: diags}
	}
	return FromTraversal(owner, t)
}

func traversalIndex(key cty.Value) (int, error) {
	if !key.IsKnown() || key.IsNull() || key.Type() != cty.Number {
		return 0, fmt.Errorf("index must be a known number, got %s", key.Type().FriendlyName())
	}
	bf := key.AsBigFloat()
	if !bf.IsInt() || bf.Sign() < 0 {
		return 0, fmt.Errorf("index %s is not a non-negative integer", bf.Text('f', -1))
	}
	i, acc := bf.Int64()
	if acc != big.Exact || i > math.MaxInt {
		return 0, fmt.Errorf("index %s is out of range", bf.Text('f', -1))
	}
	return int(i), nil
}

// formatTraversal renders t for diagnostics.
func formatTraversal(t hcl.Traversal) string {
	var b []byte
	for _, step := range t {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			b = append(b, s.Name...)
		case hcl.TraverseAttr:
			b = append(b, '.')
			b = append(b, s.Name...)
		case hcl.TraverseIndex:
			if s.Key.IsKnown() && !s.Key.IsNull() && s.Key.Type() == cty.Number {
				b = fmt.Appendf(b, "[%s]", s.Key.AsBigFloat().Text('f', -1))
			} else {
				b = append(b, "[...]"...)
			}
		default:
			b = append(b, "[*]"...)
		}
	}
	return string(b)
}
