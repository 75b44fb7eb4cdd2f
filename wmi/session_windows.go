// Copyright 2026 the wmienum authors

//go:build windows
// +build windows

/*
Package wmi provides a thin binding over the WBEM COM interfaces
(IWbemLocator, IWbemServices, IEnumWbemClassObject, IWbemClassObject) used
to enumerate classes, instances, and properties in a WMI namespace.

How we call WMI from Go is modeled from Microsoft's sample C++ code
https://docs.microsoft.com/en-us/windows/desktop/wmisdk/example--getting-wmi-data-from-the-local-computer

A Session owns the COM initialization for one walk. Only one Session can be
open at a time; Connect serializes callers and pins the calling goroutine to
its OS thread until Close, since COM apartment state is per-thread.
*/
package wmi

import (
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/pkg/errors"

	log "github.com/wmikit/wmienum/logger"
)

// Only one WMI session at a time
var lock sync.Mutex

// Session is a connection to one WMI namespace. It owns the per-call COM
// initialization and the locator/services interface pointers, all of which
// are released exactly once by Close.
type Session struct {
	locator        *ole.IUnknown
	services       *ole.IUnknown
	comInitialized bool
	closed         bool
}

// Connect opens a session against the given namespace (DefaultNamespace if
// empty). The caller must call Close on the returned session, error or not
// on the walk that follows.
func Connect(namespace string) (*Session, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	log.Tracef(">>>>> Connect, namespace=%v", namespace)
	defer log.Trace("<<<<< Connect")

	lock.Lock()

	// LockOSThread wires the calling goroutine to its current operating
	// system thread. COM initialization is per-thread, so every call made
	// through this session has to land on the thread we initialized.
	runtime.LockOSThread()

	s := &Session{}
	if err := s.connect(namespace); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) connect(namespace string) error {
	// Initialize the COM library on this thread. S_OK and S_FALSE both mean
	// the library is usable; S_FALSE just means it was already initialized.
	s.comInitialized = true
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		s.comInitialized = false
		if oleCode, ok := err.(*ole.OleError); ok {
			switch oleCode.Code() {
			case S_OK, S_FALSE:
				s.comInitialized = true
			}
		}
		if !s.comInitialized {
			return errors.Wrap(err, "failed to initialize COM library")
		}
	}

	// Set general COM security levels. CoInitializeSecurity can only be
	// called once per process; RPC_E_TOO_LATE means an earlier caller
	// already set the blanket and is not a failure here.
	hres, _, _ := procCoInitializeSecurity.Call(
		uintptr(0),
		uintptr(0xFFFFFFFF),                  // COM authentication
		uintptr(0),                           // Authentication services
		uintptr(0),                           // Reserved
		uintptr(RPC_C_AUTHN_LEVEL_DEFAULT),   // Default authentication
		uintptr(RPC_C_IMP_LEVEL_IMPERSONATE), // Default Impersonation
		uintptr(0),                           // Authentication info
		uintptr(EOAC_NONE),                   // Additional capabilities
		uintptr(0))                           // Reserved
	if FAILED(hres) && uint32(hres) != RPC_E_TOO_LATE {
		return errors.Wrap(ole.NewError(hres), "failed to initialize COM security")
	}

	// Obtain the initial locator to WMI
	locator, err := ole.CreateInstance(CLSID_WbemLocator, IID_IWbemLocator)
	if err != nil {
		return errors.Wrap(err, "failed to create IWbemLocator object")
	}
	s.locator = locator

	// Connect to WMI through the IWbemLocator::ConnectServer method
	var services *ole.IUnknown
	namespaceUTF16 := syscall.StringToUTF16(namespace)
	locatorVTable := (*IWbemLocatorVtbl)(unsafe.Pointer(s.locator.RawVTable))
	hres, _, _ = syscall.Syscall9(locatorVTable.ConnectServer, 9,
		uintptr(unsafe.Pointer(s.locator)),
		uintptr(unsafe.Pointer(&namespaceUTF16[0])),
		uintptr(0), // User name. NULL = current user
		uintptr(0), // User password. NULL = current
		uintptr(0), // Locale. NULL indicates current
		uintptr(0), // Security flags
		uintptr(0), // Authority
		uintptr(0), // Context object
		uintptr(unsafe.Pointer(&services)))
	if FAILED(hres) {
		return errors.Wrapf(ole.NewError(hres), "failed IWbemLocator::ConnectServer method, namespace=%v", namespace)
	}
	s.services = services

	// Set security levels on the services proxy so property reads run with
	// the caller's identity.
	hres, _, _ = procCoSetProxyBlanket.Call(
		uintptr(unsafe.Pointer(s.services)),  // Indicates the proxy to set
		uintptr(RPC_C_AUTHN_WINNT),           // Authentication service
		uintptr(RPC_C_AUTHZ_NONE),            // Authorization service
		uintptr(0),                           // Server principal name
		uintptr(RPC_C_AUTHN_LEVEL_CALL),      // Authentication level
		uintptr(RPC_C_IMP_LEVEL_IMPERSONATE), // Impersonation level
		uintptr(0),                           // Client identity
		uintptr(EOAC_NONE))                   // Proxy capabilities
	if FAILED(hres) {
		return errors.Wrap(ole.NewError(hres), "failed to set proxy blanket")
	}

	return nil
}

// Close releases the services and locator interfaces, balances the COM
// initialization, and releases the session serialization lock. Safe to call
// exactly once per Connect, including after a failed Connect.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.services != nil {
		s.services.Release()
		s.services = nil
	}
	if s.locator != nil {
		s.locator.Release()
		s.locator = nil
	}
	if s.comInitialized {
		ole.CoUninitialize()
	}
	runtime.UnlockOSThread()
	lock.Unlock()
}

// ClassEnum starts a forward-only enumeration of every class in the
// connected namespace.
func (s *Session) ClassEnum() (*ObjectEnum, error) {
	var enum *ole.IUnknown
	servicesVTable := (*IWbemServicesVtbl)(unsafe.Pointer(s.services.RawVTable))
	hres, _, _ := syscall.Syscall6(servicesVTable.CreateClassEnum, 5,
		uintptr(unsafe.Pointer(s.services)),
		uintptr(0), // Superclass name. NULL = all classes
		uintptr(WBEM_FLAG_FORWARD_ONLY|WBEM_FLAG_RETURN_IMMEDIATELY),
		uintptr(0), // Context object
		uintptr(unsafe.Pointer(&enum)),
		uintptr(0))
	if FAILED(hres) {
		return nil, errors.Wrap(ole.NewError(hres), "failed IWbemServices::CreateClassEnum method")
	}
	return &ObjectEnum{enum: enum}, nil
}

// InstanceEnum starts a forward-only enumeration of every instance of the
// named class.
func (s *Session) InstanceEnum(className string) (*ObjectEnum, error) {
	var enum *ole.IUnknown
	classUTF16 := syscall.StringToUTF16(className)
	servicesVTable := (*IWbemServicesVtbl)(unsafe.Pointer(s.services.RawVTable))
	hres, _, _ := syscall.Syscall6(servicesVTable.CreateInstanceEnum, 5,
		uintptr(unsafe.Pointer(s.services)),
		uintptr(unsafe.Pointer(&classUTF16[0])),
		uintptr(WBEM_FLAG_FORWARD_ONLY|WBEM_FLAG_RETURN_IMMEDIATELY),
		uintptr(0), // Context object
		uintptr(unsafe.Pointer(&enum)),
		uintptr(0))
	if FAILED(hres) {
		return nil, errors.Wrapf(ole.NewError(hres), "failed IWbemServices::CreateInstanceEnum method, class=%v", className)
	}
	return &ObjectEnum{enum: enum}, nil
}

// Query runs a WQL query through IWbemServices::ExecQuery and returns a
// forward-only enumerator over the result objects.
func (s *Session) Query(wqlQuery string) (*ObjectEnum, error) {
	log.Tracef(">>>>> Query, wqlQuery=%v", wqlQuery)
	defer log.Trace("<<<<< Query")

	var enum *ole.IUnknown
	wqlUTF16 := syscall.StringToUTF16(`WQL`)
	queryUTF16 := syscall.StringToUTF16(wqlQuery)
	servicesVTable := (*IWbemServicesVtbl)(unsafe.Pointer(s.services.RawVTable))
	hres, _, _ := syscall.Syscall6(servicesVTable.ExecQuery, 6,
		uintptr(unsafe.Pointer(s.services)),
		uintptr(unsafe.Pointer(&wqlUTF16[0])),
		uintptr(unsafe.Pointer(&queryUTF16[0])),
		uintptr(WBEM_FLAG_FORWARD_ONLY|WBEM_FLAG_RETURN_IMMEDIATELY),
		uintptr(0), // Context object
		uintptr(unsafe.Pointer(&enum)))
	if FAILED(hres) {
		return nil, errors.Wrap(ole.NewError(hres), "failed IWbemServices::ExecQuery method")
	}
	return &ObjectEnum{enum: enum}, nil
}
