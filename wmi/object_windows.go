// Copyright 2026 the wmienum authors

//go:build windows
// +build windows

package wmi

import (
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/pkg/errors"
)

// pageSize bounds the number of objects fetched per IEnumWbemClassObject::Next
// round-trip.
const pageSize = 128

// ObjectEnum is a forward-only, non-restartable enumerator over WBEM class
// objects. Exhaustion and failure are distinct: Next returns (nil, nil) once
// the enumerator runs dry.
type ObjectEnum struct {
	enum *ole.IUnknown
}

// Next fetches the next page of up to pageSize objects. The caller owns the
// returned objects and must Release each one.
func (e *ObjectEnum) Next() ([]*Object, error) {
	var apObj [pageSize]*ole.IUnknown
	var returned uint32
	enumVTable := (*IEnumWbemClassObjectVtbl)(unsafe.Pointer(e.enum.RawVTable))
	hres, _, _ := syscall.Syscall6(enumVTable.Next, 5,
		uintptr(unsafe.Pointer(e.enum)),
		uintptr(WBEM_INFINITE),
		uintptr(pageSize),
		uintptr(unsafe.Pointer(&apObj[0])),
		uintptr(unsafe.Pointer(&returned)),
		uintptr(0))
	if SUCCEEDED(hres) {
		if returned == 0 {
			return nil, nil
		}
		objects := make([]*Object, 0, returned)
		for n := uint32(0); n < returned; n++ {
			objects = append(objects, &Object{obj: apObj[n]})
		}
		return objects, nil
	}
	return nil, errors.Wrap(ole.NewError(hres), "failed IEnumWbemClassObject::Next method")
}

// Release frees the underlying enumerator interface.
func (e *ObjectEnum) Release() {
	if e.enum != nil {
		e.enum.Release()
		e.enum = nil
	}
}

// Object wraps one IWbemClassObject, either a class definition or an
// instance.
type Object struct {
	obj *ole.IUnknown
}

// Release frees the underlying class object interface.
func (o *Object) Release() {
	if o.obj != nil {
		o.obj.Release()
		o.obj = nil
	}
}

// Get returns the named property as a variant. The caller must clear the
// variant with ole.VariantClear.
func (o *Object) Get(property string) (*ole.VARIANT, error) {
	var vtProp ole.VARIANT
	propertyUTF16 := syscall.StringToUTF16(property)
	objVTable := (*IWbemClassObjectVtbl)(unsafe.Pointer(o.obj.RawVTable))
	hres, _, _ := syscall.Syscall6(objVTable.Get, 6,
		uintptr(unsafe.Pointer(o.obj)),
		uintptr(unsafe.Pointer(&propertyUTF16[0])), // LPCWSTR wszName - Name of the desired property
		uintptr(0),                                 // long    lFlags  - Reserved, must be 0
		uintptr(unsafe.Pointer(&vtProp)),           // VARIANT *pVal   - Returned property value
		uintptr(0),                                 // CIMTYPE *pType
		uintptr(0))                                 // long    *plFlavor
	if FAILED(hres) {
		return nil, errors.Wrapf(ole.NewError(hres), "failed IWbemClassObject::Get method, property=%v", property)
	}
	return &vtProp, nil
}

// ClassName returns the object's __CLASS system property.
func (o *Object) ClassName() (string, error) {
	vtProp, err := o.Get(`__CLASS`)
	if err != nil {
		return "", err
	}
	defer ole.VariantClear(vtProp)
	return vtProp.ToString(), nil
}

// BeginEnumeration starts a cursor over the object's non-system properties.
// Every BeginEnumeration must be paired with EndEnumeration.
func (o *Object) BeginEnumeration() error {
	objVTable := (*IWbemClassObjectVtbl)(unsafe.Pointer(o.obj.RawVTable))
	hres, _, _ := syscall.Syscall(objVTable.BeginEnumeration, 2,
		uintptr(unsafe.Pointer(o.obj)),
		uintptr(WBEM_FLAG_NONSYSTEM_ONLY),
		uintptr(0))
	if FAILED(hres) {
		return errors.Wrap(ole.NewError(hres), "failed IWbemClassObject::BeginEnumeration method")
	}
	return nil
}

// NextProperty advances the property cursor. ok is false once the cursor is
// exhausted. On success the caller must clear the returned variant with
// ole.VariantClear.
func (o *Object) NextProperty() (name string, value *ole.VARIANT, ok bool, err error) {
	var nameBSTR *uint16
	var vtProp ole.VARIANT
	objVTable := (*IWbemClassObjectVtbl)(unsafe.Pointer(o.obj.RawVTable))
	hres, _, _ := syscall.Syscall6(objVTable.Next, 6,
		uintptr(unsafe.Pointer(o.obj)),
		uintptr(0), // long    lFlags   - Reserved, must be 0
		uintptr(unsafe.Pointer(&nameBSTR)),
		uintptr(unsafe.Pointer(&vtProp)),
		uintptr(0), // CIMTYPE *pType
		uintptr(0)) // long    *plFlavor
	if uint32(hres) == WBEM_S_NO_MORE_DATA {
		return "", nil, false, nil
	}
	if FAILED(hres) {
		return "", nil, false, errors.Wrap(ole.NewError(hres), "failed IWbemClassObject::Next method")
	}
	name = ole.BstrToString(nameBSTR)
	ole.SysFreeString((*int16)(unsafe.Pointer(nameBSTR)))
	return name, &vtProp, true, nil
}

// EndEnumeration closes the property cursor opened by BeginEnumeration.
func (o *Object) EndEnumeration() {
	objVTable := (*IWbemClassObjectVtbl)(unsafe.Pointer(o.obj.RawVTable))
	syscall.Syscall(objVTable.EndEnumeration, 1,
		uintptr(unsafe.Pointer(o.obj)),
		uintptr(0),
		uintptr(0))
}
