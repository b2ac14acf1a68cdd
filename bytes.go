package boson

import (
	"fmt"
	"reflect"
	"unsafe"
)

// valueToBytes reinterprets value as its raw in-memory bytes. The returned
// slice aliases value's storage and must not be retained past value's
// lifetime (it is copied into an Insertion/Storage immediately).
func valueToBytes[T any](value T) []byte {
	size := int(unsafe.Sizeof(value))
	if size == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&value)
	return unsafe.Slice((*byte)(ptr), size)
}

// bytesToValue copies data back into a T, panicking if the length does not
// match sizeof(T) exactly.
func bytesToValue[T any](data []byte) T {
	var value T
	size := int(unsafe.Sizeof(value))
	if len(data) != size {
		panic(fmt.Sprintf("boson: byte slice of length %d does not match size %d of %T", len(data), size, value))
	}
	if size == 0 {
		return value
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&value)), size)
	copy(dst, data)
	return value
}

// bytesAsPointer reinterprets a byte address as a *T without copying. Used by
// destructor trampolines and by the Read[T]/Write[T] row fetches, where the
// caller guarantees addr points at row_stride-aligned component
// storage of exactly sizeof(T) bytes.
func bytesAsPointer[T any](addr unsafe.Pointer) *T {
	return (*T)(addr)
}

// sizeOf returns the in-memory size of T, used when registering a component
// type's slot in an Archetype.
func sizeOf(t reflect.Type) int {
	return int(t.Size())
}
