package scope

import (
	"errors"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mitchellh/copystructure"
)

var deepOpts = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

var errLossyCopy = errors.New("copy differs from original")

// sameValue reports identity: == for comparable values with NaN equal to
// NaN at any depth, pointer identity for maps, slices, funcs and channels.
// Values with no identity of their own (structs or arrays holding slices or
// maps) are compared structurally.
func sameValue(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return identical(va, vb)
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		return deepEqual(a, b)
	}
}

// identical is == over comparable values of the same type, except that NaN
// equals NaN wherever it appears. Pointers inside keep pointer identity.
func identical(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		x, y := a.Float(), b.Float()
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return x == y || (cmplx.IsNaN(x) && cmplx.IsNaN(y))
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !identical(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !identical(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Elem().Type() != b.Elem().Type() {
			return false
		}
		return identical(a.Elem(), b.Elem())
	default:
		return a.Equal(b)
	}
}

func deepEqual(a, b any) bool {
	return cmp.Equal(a, b, deepOpts...)
}

// deepCopy copies v so later in-place mutation of v cannot leak into the
// baseline. Copies that lose information (unexported fields) are rejected.
func deepCopy(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	c, err := copystructure.Copy(v)
	if err != nil {
		return nil, err
	}
	if !deepEqual(c, v) {
		return nil, errLossyCopy
	}
	return c, nil
}
