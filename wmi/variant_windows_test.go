// Copyright 2026 the wmienum authors

//go:build windows
// +build windows

package wmi

import (
	"math"
	"testing"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bstrVariant(s string) ole.VARIANT {
	return ole.NewVariant(ole.VT_BSTR, int64(uintptr(unsafe.Pointer(ole.SysAllocStringLen(s)))))
}

func TestVariantStringsScalars(t *testing.T) {
	tests := []struct {
		name    string
		variant ole.VARIANT
		want    []string
	}{
		{"null yields nothing", ole.NewVariant(ole.VT_NULL, 0), nil},
		{"empty yields nothing", ole.NewVariant(ole.VT_EMPTY, 0), nil},
		{"int32", ole.NewVariant(ole.VT_I4, 42), []string{"42"}},
		{"uint16", ole.NewVariant(ole.VT_UI2, 7), []string{"7"}},
		{"bool true", ole.NewVariant(ole.VT_BOOL, 0xffff), []string{"true"}},
		{"bool false", ole.NewVariant(ole.VT_BOOL, 0), []string{"false"}},
		{"float64", ole.NewVariant(ole.VT_R8, int64(math.Float64bits(1.5))), []string{"1.5"}},
		{"string", bstrVariant("hello"), []string{"hello"}},
		{"empty string is still one element", bstrVariant(""), []string{""}},
		{"embedded object yields nothing", ole.NewVariant(ole.VT_UNKNOWN, 0), nil},
		{"dispatch yields nothing", ole.NewVariant(ole.VT_DISPATCH, 0), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VariantStrings(&tt.variant)
			ole.VariantClear(&tt.variant)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHresultHelpers(t *testing.T) {
	// Success codes with the high bit clear are successes even when nonzero
	assert.True(t, SUCCEEDED(uintptr(S_OK)))
	assert.True(t, SUCCEEDED(uintptr(S_FALSE)))
	assert.True(t, SUCCEEDED(uintptr(WBEM_S_NO_MORE_DATA)))
	assert.False(t, SUCCEEDED(uintptr(WBEM_E_INVALID_CLASS)))
	assert.False(t, SUCCEEDED(uintptr(RPC_E_TOO_LATE)))

	assert.False(t, FAILED(uintptr(S_OK)))
	assert.False(t, FAILED(uintptr(WBEM_S_NO_MORE_DATA)))
	assert.True(t, FAILED(uintptr(WBEM_E_INVALID_NAMESPACE)))
}

func TestSessionConnectInvalidNamespace(t *testing.T) {
	session, err := Connect(`ROOT\NoSuchNamespaceZzz`)
	assert.Nil(t, session)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "ConnectServer")
}

func TestSessionClassEnumPaging(t *testing.T) {
	session, err := Connect("")
	require.Nil(t, err)
	defer session.Close()

	classEnum, err := session.ClassEnum()
	require.Nil(t, err)
	defer classEnum.Release()

	// CIMV2 holds well over one page of classes, so the enumerator must
	// produce at least two pages before exhausting.
	pages := 0
	total := 0
	for {
		classes, err := classEnum.Next()
		assert.Nil(t, err)
		if classes == nil {
			break
		}
		pages++
		total += len(classes)
		for _, class := range classes {
			name, err := class.ClassName()
			assert.Nil(t, err)
			assert.NotEqual(t, "", name)
			class.Release()
		}
	}
	assert.True(t, pages >= 2)
	assert.True(t, total > pageSize)
}
