// Copyright 2026 the wmienum authors

//go:build windows
// +build windows

package wmi

import (
	"fmt"

	ole "github.com/go-ole/go-ole"

	log "github.com/wmikit/wmienum/logger"
)

// VariantStrings converts one property variant into its display strings.
// A stringifiable non-null scalar yields exactly one string. VT_NULL and
// VT_EMPTY yield none, as do arrays of non-string element type and scalars
// with no string form (embedded objects and interface references).
func VariantStrings(vtProp *ole.VARIANT) []string {
	switch vtProp.VT {
	case ole.VT_EMPTY, ole.VT_NULL:
		return nil

	case ole.VT_ARRAY | ole.VT_BSTR:
		safeArray := vtProp.ToArray()
		if safeArray == nil {
			log.Tracef("Invalid variant string array, VT=%v, Val=%v", vtProp.VT, vtProp.Val)
			return nil
		}
		return safeArray.ToStringArray()

	case ole.VT_BSTR:
		return []string{vtProp.ToString()}

	case ole.VT_BOOL,
		ole.VT_I1, ole.VT_I2, ole.VT_I4, ole.VT_I8,
		ole.VT_UI1, ole.VT_UI2, ole.VT_UI4, ole.VT_UI8,
		ole.VT_R4, ole.VT_R8:
		value := vtProp.Value()
		if value == nil {
			log.Tracef("Unsupported variant value, VT=%v", vtProp.VT)
			return nil
		}
		return []string{fmt.Sprintf("%v", value)}

	default:
		if vtProp.VT&ole.VT_ARRAY != 0 {
			// Only string arrays are handled
			log.Tracef("Skipping non-string array variant, VT=%v", vtProp.VT)
			return nil
		}
		log.Tracef("Skipping variant with no string form, VT=%v", vtProp.VT)
		return nil
	}
}
