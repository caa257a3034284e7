package fieldpath

// Key is the structural identity of a declared member. Two declarations with
// the same owner, symbol and display overrides share one descriptor no
// matter where they were written.
type Key struct {
	Owner         string
	Symbol        string
	Display       string
	LegacyDisplay string
}

// String renders the member part of the key as Owner.Symbol, which is also
// the lookup key of a Catalog.
func (k Key) String() string {
	if k.Owner == "" {
		return k.Symbol
	}
	return k.Owner + "." + k.Symbol
}

// Descriptor is the resolved identity and label of one member. Descriptors
// are immutable and shared between every segment referring to the member.
type Descriptor struct {
	key         Key
	displayName string
}

func newDescriptor(key Key, catalog Catalog) *Descriptor {
	return &Descriptor{key: key, displayName: resolveDisplayName(key, catalog)}
}

func (d *Descriptor) Key() Key {
	return d.key
}

// Name is the raw member symbol used in formatted field names.
func (d *Descriptor) Name() string {
	return d.key.Symbol
}

func (d *Descriptor) DisplayName() string {
	return d.displayName
}

// resolveDisplayName walks the label priority chain: explicit display,
// catalog entry, legacy display, raw symbol.
func resolveDisplayName(key Key, catalog Catalog) string {
	if key.Display != "" {
		return key.Display
	}
	if label, ok := catalog.Lookup(key); ok {
		return label
	}
	if key.LegacyDisplay != "" {
		return key.LegacyDisplay
	}
	return key.Symbol
}
