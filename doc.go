// Package fieldpath derives form field identities from declared access paths.
//
// A Resolver turns an Access (owner, member symbol, optional index, display
// overrides) into a cached Descriptor. Segments built from descriptors are
// combined into an immutable Prefix, which formats names such as
// Customer.Orders[2].Lines[0].Sku for a control's name attribute. Field adds
// explicit name/id overrides, sanitized ids and display labels.
//
// Names are assembled back to front in stack scratch space, overflowing into
// pooled blocks for very deep paths. A name that fits the scratch costs one
// allocation, the returned string; AppendFieldName into a sized buffer costs
// none.
package fieldpath
