// File: arena/pointers.go
// Author: momentics <momentics@gmail.com>

package arena

import "reflect"

// typeHasPointers reports whether values of t contain pointers the garbage
// collector would need to scan. Memory mapped outside the GC heap must never
// hold such values.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, chans, funcs, interfaces, strings,
		// unsafe.Pointer.
		return true
	}
}
