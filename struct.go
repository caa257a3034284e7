package fieldpath

import (
	"fmt"
	"reflect"
)

// Struct tags read by AccessOf.
const (
	displayTag       = "display"
	legacyDisplayTag = "displayName"
)

// AccessOf declares an access to the exported field of struct type T, with an
// optional index. The owner is T's package path and name; labels come from
// the display and displayName struct tags:
//
//	type Line struct {
//		Sku string `display:"SKU"`
//	}
func AccessOf[T any](field string, index ...int) (Access, error) {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	owner := typeKey(t)
	path := owner + "." + field
	if t.Kind() != reflect.Struct {
		invalidPathInc("struct")
		return Access{}, invalidPath(path, fmt.Sprintf("%s is not a struct", t))
	}
	sf, ok := t.FieldByName(field)
	if !ok || !sf.IsExported() {
		invalidPathInc("struct")
		return Access{}, invalidPath(path, "no exported field with that name")
	}
	a := Access{
		Owner:         owner,
		Symbol:        sf.Name,
		Display:       sf.Tag.Get(displayTag),
		LegacyDisplay: sf.Tag.Get(legacyDisplayTag),
	}
	switch len(index) {
	case 0:
	case 1:
		a = a.At(index[0])
	default:
		invalidPathInc("struct")
		return Access{}, invalidPath(path, "more than one index for a single member")
	}
	return a, nil
}

// typeKey returns "pkg/path.TypeName", falling back to the type literal for
// unnamed types.
func typeKey(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
