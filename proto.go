package fieldpath

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// FromProtoPath parses path and checks every step against the message schema
// md. Each declaration is owned by the full name of the message declaring the
// field; the field's JSON name becomes its legacy label. Steps may use the
// proto or JSON field name. Unknown fields, indexes on singular fields and
// member access through a repeated field without an index fail with
// *InvalidPathError.
func FromProtoPath(md protoreflect.MessageDescriptor, path string) ([]Access, error) {
	parts, err := ParseAccess(path)
	if err != nil {
		return nil, err
	}
	out := make([]Access, 0, len(parts))
	current := md
	for i, a := range parts {
		if a.Symbol == "" {
			return nil, protoPathError(path, "repeated fields cannot be indexed twice")
		}
		if current == nil {
			return nil, protoPathError(path, fmt.Sprintf("%q selects into a non-message field", a.Symbol))
		}
		fields := current.Fields()
		fd := fields.ByName(protoreflect.Name(a.Symbol))
		if fd == nil {
			fd = fields.ByJSONName(a.Symbol)
		}
		if fd == nil {
			return nil, protoPathError(path, fmt.Sprintf("%s has no field %q", current.FullName(), a.Symbol))
		}
		last := i == len(parts)-1
		switch {
		case a.Index != nil && !fd.IsList():
			return nil, protoPathError(path, fmt.Sprintf("%s is not a repeated field", renderFieldPathPart(fd)))
		case a.Index == nil && fd.IsList() && !last:
			return nil, protoPathError(path, fmt.Sprintf("%s needs an index", renderFieldPathPart(fd)))
		}
		out = append(out, Access{
			Owner:         string(current.FullName()),
			Symbol:        string(fd.Name()),
			Index:         a.Index,
			LegacyDisplay: fd.JSONName(),
		})
		current = nil
		if fd.Kind() == protoreflect.MessageKind && !fd.IsMap() {
			current = fd.Message()
		}
	}
	return out, nil
}

func protoPathError(path, reason string) error {
	invalidPathInc("proto")
	return invalidPath(path, reason)
}

func renderFieldPathPart(fd protoreflect.FieldDescriptor) string {
	name := string(fd.Name())
	if fd.IsList() {
		return name + "[]"
	}
	if fd.IsMap() {
		return name + "{}"
	}
	return name
}
