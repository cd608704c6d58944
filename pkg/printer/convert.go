package printer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/malwarology/versioninfo/pkg/types"
)

// ErrUnsupportedType is returned by Convert for a value it has no rendering
// for (maps, floats, funcs, channels, ...).
var ErrUnsupportedType = errors.New("printer: unsupported type")

// Field is one key of an Object.
type Field struct {
	Key   string
	Value any
}

// Object is an ordered set of fields. Field order follows struct
// declaration order.
type Object []Field

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

var (
	byteSliceType = reflect.TypeFor[[]byte]()
	nodeType      = reflect.TypeFor[types.Node]()
)

// Convert turns a decoded tree (or any value built from the types in
// pkg/types) into plain values: Object, []any, string, int64, uint64, bool
// and nil.
//
// Every Node becomes {"Type": <kind>, "Struct": <fields>}. Every []byte
// becomes standard base64 so the exact bytes survive even when they are not
// valid text. Struct fields honour json tags ("-", renames, omitempty) and
// embedded structs are flattened. A nil struct pointer without omitempty
// becomes an empty Object.
func Convert(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return convertValue(reflect.ValueOf(v), typeName(reflect.TypeOf(v)))
}

func convertValue(v reflect.Value, path string) (any, error) {
	if !v.IsValid() {
		return nil, nil
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Type() == byteSliceType {
		return base64.StdEncoding.EncodeToString(v.Bytes()), nil
	}
	if v.Type().Implements(nodeType) {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return nil, nil
		}
		return convertNode(v, path)
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, v.Len())
		for i := range v.Len() {
			item, err := convertValue(v.Index(i), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	case reflect.Pointer:
		if v.IsNil() {
			if v.Type().Elem().Kind() == reflect.Struct {
				return Object{}, nil
			}
			return nil, nil
		}
		return convertValue(v.Elem(), path)
	case reflect.Struct:
		obj := Object{}
		if err := appendFields(&obj, v, path); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: %s at %s", ErrUnsupportedType, v.Type(), path)
	}
}

func convertNode(v reflect.Value, path string) (any, error) {
	kind := v.Interface().(types.Node).Kind().String()
	body, err := convertValue(reflect.Indirect(v), path+".Struct")
	if err != nil {
		return nil, err
	}
	return Object{{Key: "Type", Value: kind}, {Key: "Struct", Value: body}}, nil
}

// appendFields adds the exported fields of struct v to obj, flattening
// untagged embedded structs.
func appendFields(obj *Object, v reflect.Value, path string) error {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		name, omitEmpty, skip := parseTag(sf)
		if skip {
			continue
		}
		fv := v.Field(i)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv, ft = fv.Elem(), ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := appendFields(obj, fv, path); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if omitEmpty && isEmptyValue(fv) {
			continue
		}
		val, err := convertValue(fv, path+"."+sf.Name)
		if err != nil {
			return err
		}
		*obj = append(*obj, Field{Key: name, Value: val})
	}
	return nil
}

func parseTag(sf reflect.StructField) (name string, omitEmpty, skip bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
