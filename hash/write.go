package hash

import (
	"encoding/binary"
	stdhash "hash"
	"hash/maphash"
	"io"
	"math"
	"reflect"
)

// Hashable is implemented by keys that feed their own hash input.
//
// Keys equal under == must write identical bytes.
type Hashable interface {
	WriteHash(w io.Writer)
}

// Sum resets h, writes k into it and returns the 64-bit sum.
func Sum[K comparable](h stdhash.Hash64, k K) uint64 {
	h.Reset()
	Write(h, k)
	return h.Sum64()
}

// Write feeds k into h. Keys equal under == always produce equal input.
//
// Without a maphash hasher, structs and arrays are walked element by element, unexported
// fields included. Pointer fields hash by address, never by what they point at.
func Write[K comparable](h stdhash.Hash64, k K) {
	if hk, ok := any(k).(Hashable); ok {
		hk.WriteHash(h)
		return
	}
	if mh, ok := h.(*maphash.Hash); ok {
		maphash.WriteComparable(mh, k)
		return
	}

	switch v := any(k).(type) {
	case string:
		io.WriteString(h, v)
		return
	case int:
		writeUint64(h, uint64(v))
		return
	case uint64:
		writeUint64(h, v)
		return
	}

	writeValue(h, reflect.ValueOf(any(k)))
}

// writeValue writes rv so that values equal under == write identical bytes.
func writeValue(h stdhash.Hash64, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		writeUint64(h, uint64(rv.Len()))
		io.WriteString(h, rv.String())
	case reflect.Bool:
		if rv.Bool() {
			writeUint64(h, 1)
		} else {
			writeUint64(h, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(h, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(h, rv.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(h, rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		writeFloat(h, real(c))
		writeFloat(h, imag(c))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Func:
		writeUint64(h, uint64(rv.Pointer()))
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			writeValue(h, rv.Field(i))
		}
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			writeValue(h, rv.Index(i))
		}
	case reflect.Interface:
		if rv.IsNil() {
			writeUint64(h, 0)
			return
		}
		e := rv.Elem()
		io.WriteString(h, e.Type().String())
		writeValue(h, e)
	case reflect.Invalid:
		// nil interface
		writeUint64(h, 0)
	}
}

func writeUint64(h stdhash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

func writeFloat(h stdhash.Hash64, f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	writeUint64(h, math.Float64bits(f))
}
