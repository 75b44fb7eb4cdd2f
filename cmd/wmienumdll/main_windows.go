// Copyright 2026 the wmienum authors

//go:build windows && cgo
// +build windows,cgo

// wmienumdll exports the flat WmiEnum_* C ABI over the wmienum library.
// Build it as a shared library:
//
//	go build -buildmode=c-shared -o wmienum.dll ./cmd/wmienumdll
//
// Every string returned through the ABI lives in C memory owned by the
// WmiEnum result object, so callers in any language can hold on to the
// pointers until they call WmiEnum_free. All strings are wide-character
// except the error message.
package main

/*
#include <stdlib.h>
#include <stddef.h>
#include <wchar.h>

typedef struct {
	wchar_t *className;
	size_t propertyCount;
	wchar_t **propertyKeys;
	wchar_t **propertyValues;
} WmiEnumInstance;

typedef struct WmiEnum {
	char *error;
	size_t instanceCount;
	WmiEnumInstance *instances;
} WmiEnum;
*/
import "C"

import (
	"unicode/utf16"
	"unsafe"

	"github.com/wmikit/wmienum"
	"github.com/wmikit/wmienum/logger"
)

func init() {
	// Hooks only get attached when LOG_FILE is set in the environment, so
	// the library stays silent by default inside a host process.
	logger.InitLogging("", nil, false)
}

// WmiEnum_new runs one enumeration with the given whole-string patterns. It
// always returns a result object, even on error; callers must check
// WmiEnum_error and must release the object with WmiEnum_free.
//
//export WmiEnum_new
func WmiEnum_new(classRegex, propertyRegex *C.wchar_t) *C.WmiEnum {
	rs := wmienum.Enumerate(goString(classRegex), goString(propertyRegex))

	out := (*C.WmiEnum)(C.calloc(1, C.sizeof_WmiEnum))
	if err := rs.Err(); err != nil {
		out.error = C.CString(err.Error())
	}

	count := rs.InstanceCount()
	out.instanceCount = C.size_t(count)
	if count == 0 {
		return out
	}

	out.instances = (*C.WmiEnumInstance)(C.calloc(C.size_t(count), C.sizeof_WmiEnumInstance))
	instances := unsafe.Slice(out.instances, count)
	for i := 0; i < count; i++ {
		instances[i].className = wcharDup(rs.InstanceClassName(i))
		propertyCount := rs.InstancePropertyCount(i)
		instances[i].propertyCount = C.size_t(propertyCount)
		if propertyCount == 0 {
			continue
		}
		instances[i].propertyKeys = (**C.wchar_t)(C.calloc(C.size_t(propertyCount), C.size_t(unsafe.Sizeof(uintptr(0)))))
		instances[i].propertyValues = (**C.wchar_t)(C.calloc(C.size_t(propertyCount), C.size_t(unsafe.Sizeof(uintptr(0)))))
		keys := unsafe.Slice(instances[i].propertyKeys, propertyCount)
		values := unsafe.Slice(instances[i].propertyValues, propertyCount)
		for p := 0; p < propertyCount; p++ {
			keys[p] = wcharDup(rs.InstancePropertyKey(i, p))
			values[p] = wcharDup(rs.InstancePropertyValue(i, p))
		}
	}
	return out
}

// WmiEnum_error returns the error message, or null if the walk completed.
//
//export WmiEnum_error
func WmiEnum_error(wmiEnum *C.WmiEnum) *C.char {
	if wmiEnum == nil {
		return nil
	}
	return wmiEnum.error
}

// WmiEnum_free releases the result object and every string it owns.
//
//export WmiEnum_free
func WmiEnum_free(wmiEnum *C.WmiEnum) {
	if wmiEnum == nil {
		return
	}
	C.free(unsafe.Pointer(wmiEnum.error))
	if wmiEnum.instances != nil {
		instances := unsafe.Slice(wmiEnum.instances, int(wmiEnum.instanceCount))
		for i := range instances {
			C.free(unsafe.Pointer(instances[i].className))
			propertyCount := int(instances[i].propertyCount)
			if instances[i].propertyKeys != nil {
				keys := unsafe.Slice(instances[i].propertyKeys, propertyCount)
				values := unsafe.Slice(instances[i].propertyValues, propertyCount)
				for p := 0; p < propertyCount; p++ {
					C.free(unsafe.Pointer(keys[p]))
					C.free(unsafe.Pointer(values[p]))
				}
				C.free(unsafe.Pointer(instances[i].propertyKeys))
				C.free(unsafe.Pointer(instances[i].propertyValues))
			}
		}
		C.free(unsafe.Pointer(wmiEnum.instances))
	}
	C.free(unsafe.Pointer(wmiEnum))
}

//export WmiEnum_instanceCount
func WmiEnum_instanceCount(wmiEnum *C.WmiEnum) C.size_t {
	if wmiEnum == nil {
		return 0
	}
	return wmiEnum.instanceCount
}

//export WmiEnum_instanceClassName
func WmiEnum_instanceClassName(wmiEnum *C.WmiEnum, instance C.size_t) *C.wchar_t {
	if wmiEnum == nil || instance >= wmiEnum.instanceCount {
		return nil
	}
	return unsafe.Slice(wmiEnum.instances, int(wmiEnum.instanceCount))[instance].className
}

//export WmiEnum_instancePropertyCount
func WmiEnum_instancePropertyCount(wmiEnum *C.WmiEnum, instance C.size_t) C.size_t {
	if wmiEnum == nil || instance >= wmiEnum.instanceCount {
		return 0
	}
	return unsafe.Slice(wmiEnum.instances, int(wmiEnum.instanceCount))[instance].propertyCount
}

//export WmiEnum_instancePropertyKey
func WmiEnum_instancePropertyKey(wmiEnum *C.WmiEnum, instance, property C.size_t) *C.wchar_t {
	if rec := instanceAt(wmiEnum, instance); rec != nil && property < rec.propertyCount {
		return unsafe.Slice(rec.propertyKeys, int(rec.propertyCount))[property]
	}
	return nil
}

//export WmiEnum_instancePropertyValue
func WmiEnum_instancePropertyValue(wmiEnum *C.WmiEnum, instance, property C.size_t) *C.wchar_t {
	if rec := instanceAt(wmiEnum, instance); rec != nil && property < rec.propertyCount {
		return unsafe.Slice(rec.propertyValues, int(rec.propertyCount))[property]
	}
	return nil
}

func instanceAt(wmiEnum *C.WmiEnum, instance C.size_t) *C.WmiEnumInstance {
	if wmiEnum == nil || instance >= wmiEnum.instanceCount {
		return nil
	}
	return &unsafe.Slice(wmiEnum.instances, int(wmiEnum.instanceCount))[instance]
}

// wcharDup copies a Go string into a C-owned, NUL-terminated wide string.
func wcharDup(s string) *C.wchar_t {
	encoded := utf16.Encode([]rune(s))
	mem := C.calloc(C.size_t(len(encoded)+1), C.sizeof_wchar_t)
	copy(unsafe.Slice((*uint16)(mem), len(encoded)+1), encoded)
	return (*C.wchar_t)(mem)
}

// goString reads a NUL-terminated wide string from C memory.
func goString(w *C.wchar_t) string {
	if w == nil {
		return ""
	}
	var encoded []uint16
	for p := unsafe.Pointer(w); ; p = unsafe.Add(p, C.sizeof_wchar_t) {
		c := *(*uint16)(p)
		if c == 0 {
			break
		}
		encoded = append(encoded, c)
	}
	return string(utf16.Decode(encoded))
}

func main() {}
