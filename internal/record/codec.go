package record

import (
	"fmt"

	"github.com/roach88/gentype/internal/types"
)

// KeyKind is the attribute holding the type kind tag.
const KeyKind = "kind"

// Encode flattens t into a record.
func Encode(t types.Type) (Object, error) {
	if t == nil {
		return nil, fmt.Errorf("record: cannot encode nil type")
	}
	kind, props := types.ExportState(t)
	rec := Object{KeyKind: String(kind)}
	for name, attr := range props {
		v, err := encodeAttr(attr)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", kind, name, err)
		}
		rec[name] = v
	}
	return rec, nil
}

// MustEncode is like Encode but panics on error.
// Use only in tests or when the type is known to be encodable.
func MustEncode(t types.Type) Object {
	rec, err := Encode(t)
	if err != nil {
		panic(err)
	}
	return rec
}

func encodeAttr(attr any) (Value, error) {
	switch v := attr.(type) {
	case string:
		return String(v), nil
	case int64:
		return Int(v), nil
	case bool:
		return Bool(v), nil
	case []string:
		list := make(List, len(v))
		for i, s := range v {
			list[i] = String(s)
		}
		return list, nil
	case types.Type:
		return Encode(v)
	case []types.Type:
		list := make(List, len(v))
		for i, member := range v {
			rec, err := Encode(member)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			list[i] = rec
		}
		return list, nil
	}
	return nil, fmt.Errorf("unsupported attribute %T", attr)
}

// Decoder rebuilds types from records.
type Decoder struct {
	// Classes resolves class attributes that carry no ancestors. Nil takes
	// such classes as roots.
	Classes *types.ClassRegistry
}

// Decode rebuilds the type a record describes.
func (d Decoder) Decode(rec Object) (types.Type, error) {
	raw, ok := rec[KeyKind].(String)
	if !ok {
		return nil, fmt.Errorf("record: missing or non-string %q", KeyKind)
	}
	kind, err := types.ParseKind(string(raw))
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}

	props := make(types.Properties, len(rec))
	for _, name := range rec.SortedKeys() {
		if name == KeyKind {
			continue
		}
		attr, err := d.decodeAttr(name, rec[name])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", kind, name, err)
		}
		if attr != nil {
			props[name] = attr
		}
	}
	return types.RestoreState(kind, props, d.Classes)
}

func (d Decoder) decodeAttr(name string, v Value) (any, error) {
	switch val := v.(type) {
	case Null:
		return nil, nil
	case String:
		return string(val), nil
	case Int:
		return int64(val), nil
	case Bool:
		return bool(val), nil
	case Object:
		return d.Decode(val)
	case List:
		if name == types.AttrAncestors {
			return decodeStrings(val)
		}
		members := make([]types.Type, len(val))
		for i, elem := range val {
			obj, ok := elem.(Object)
			if !ok {
				return nil, fmt.Errorf("[%d]: expected record, got %T", i, elem)
			}
			t, err := d.Decode(obj)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			members[i] = t
		}
		return members, nil
	}
	return nil, fmt.Errorf("unsupported value %T", v)
}

func decodeStrings(list List) ([]string, error) {
	out := make([]string, len(list))
	for i, elem := range list {
		s, ok := elem.(String)
		if !ok {
			return nil, fmt.Errorf("[%d]: expected string, got %T", i, elem)
		}
		out[i] = string(s)
	}
	return out, nil
}

// EncodeMap flattens an inference result into {name: record}.
func EncodeMap(m types.TemplateTypeMap) (Object, error) {
	out := make(Object, m.Len())
	for _, name := range m.Names() {
		rec, err := Encode(m.Type(name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = rec
	}
	return out, nil
}

// DecodeMap rebuilds an inference result.
func (d Decoder) DecodeMap(obj Object) (types.TemplateTypeMap, error) {
	m := make(map[string]types.Type, len(obj))
	for _, name := range obj.SortedKeys() {
		rec, ok := obj[name].(Object)
		if !ok {
			return types.TemplateTypeMap{}, fmt.Errorf("%s: expected record, got %T", name, obj[name])
		}
		t, err := d.Decode(rec)
		if err != nil {
			return types.TemplateTypeMap{}, fmt.Errorf("%s: %w", name, err)
		}
		m[name] = t
	}
	return types.NewTemplateTypeMap(m), nil
}

// Key encodes t and returns its content key.
func Key(t types.Type) (string, error) {
	rec, err := Encode(t)
	if err != nil {
		return "", err
	}
	return TypeKey(rec)
}

