package types

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// ValueKind tags the Go type carried by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindBytes
	KindTime
	KindList
)

// Value is a literal headed for SQL text. It is only ever rendered through
// a dialect's quoter, never interpolated raw.
type Value struct {
	Kind  ValueKind
	Str   string
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Bytes []byte
	Time  time.Time
	List  []Value
}

// Null is the SQL NULL literal.
var Null = Value{Kind: KindNull}

// IsNull reports whether v is the NULL literal.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// ValueOf converts a Go value into a Value.
func ValueOf(x any) (Value, error) {
	v, err := valueOf(x, true)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return v, nil
}

func valueOf(x any, allowList bool) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null, nil
	case Value:
		if t.Kind == KindList && !allowList {
			return Value{}, fmt.Errorf("nested lists are not supported")
		}
		return t, nil
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case int:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int8:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int16:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int32:
		return Value{Kind: KindInt, Int: int64(t)}, nil
	case int64:
		return Value{Kind: KindInt, Int: t}, nil
	case uint:
		return Value{Kind: KindUint, Uint: uint64(t)}, nil
	case uint8:
		return Value{Kind: KindUint, Uint: uint64(t)}, nil
	case uint16:
		return Value{Kind: KindUint, Uint: uint64(t)}, nil
	case uint32:
		return Value{Kind: KindUint, Uint: uint64(t)}, nil
	case uint64:
		return Value{Kind: KindUint, Uint: t}, nil
	case float32:
		return floatValue(float64(t))
	case float64:
		return floatValue(t)
	case []byte:
		if t == nil {
			return Null, nil
		}
		return Value{Kind: KindBytes, Bytes: append([]byte(nil), t...)}, nil
	case time.Time:
		return Value{Kind: KindTime, Time: t}, nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Null, nil
		}
		return valueOf(rv.Elem().Interface(), allowList)
	case reflect.Slice, reflect.Array:
		if !allowList {
			return Value{}, fmt.Errorf("nested lists are not supported")
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := valueOf(rv.Index(i).Interface(), false)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Value{Kind: KindList, List: items}, nil
	case reflect.String:
		return Value{Kind: KindString, Str: rv.String()}, nil
	case reflect.Bool:
		return Value{Kind: KindBool, Bool: rv.Bool()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{Kind: KindInt, Int: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Value{Kind: KindUint, Uint: rv.Uint()}, nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float())
	}

	return Value{}, fmt.Errorf("unsupported type %T", x)
}

func floatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("non-finite float %v", f)
	}
	return Value{Kind: KindFloat, Float: f}, nil
}
