package pattern

import "reflect"

// Tag is the runtime type tag of an argument value.
type Tag string

const (
	TagBoolean  Tag = "boolean"
	TagNumber   Tag = "number"
	TagString   Tag = "string"
	TagObject   Tag = "object"
	TagArray    Tag = "array"
	TagFunction Tag = "function"
	TagNull     Tag = "null"
)

var knownTags = map[Tag]bool{
	TagBoolean:  true,
	TagNumber:   true,
	TagString:   true,
	TagObject:   true,
	TagArray:    true,
	TagFunction: true,
	TagNull:     true,
}

// Known reports whether t belongs to the closed set of tags produced by TagOf.
func (t Tag) Known() bool {
	return knownTags[t]
}

func (t Tag) String() string { return string(t) }

// TagOf classifies v. Arrays and slices are tagged "array" and are never
// reported as "object". Non-nil pointers are classified by their pointee.
func TagOf(v any) Tag {
	if v == nil {
		return TagNull
	}
	return tagOfValue(reflect.ValueOf(v))
}

func tagOfValue(rv reflect.Value) Tag {
	switch rv.Kind() {
	case reflect.Invalid:
		return TagNull
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return TagNull
		}
		return tagOfValue(rv.Elem())
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return TagNumber
	case reflect.String:
		return TagString
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Func:
		return TagFunction
	default:
		// maps, structs, channels and unsafe pointers
		return TagObject
	}
}
