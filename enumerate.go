// Copyright 2026 the wmienum authors

package wmienum

import (
	uuid "github.com/satori/go.uuid"

	log "github.com/wmikit/wmienum/logger"
)

// Enumerate walks the default namespace and collects every instance whose
// class name whole-matches classPattern, recording each property whose name
// whole-matches propertyPattern. The returned ResultSet is never nil; all
// failures, including malformed patterns, are reported through its Err
// accessor, with any records gathered before the failure preserved.
func Enumerate(classPattern, propertyPattern string) *ResultSet {
	return EnumerateNamespace("", classPattern, propertyPattern)
}

// EnumerateNamespace is Enumerate against an explicit namespace. An empty
// namespace selects the local machine's ROOT\CIMV2.
func EnumerateNamespace(namespace, classPattern, propertyPattern string) *ResultSet {
	runLog := log.WithFields(log.Fields{
		"run":       uuid.NewV4().String(),
		"namespace": namespace,
	})
	runLog.Tracef(">>>>> EnumerateNamespace, classPattern=%v, propertyPattern=%v", classPattern, propertyPattern)
	defer runLog.Trace("<<<<< EnumerateNamespace")

	rs := &ResultSet{}

	// Validate both patterns before touching the OS
	classRegex, err := compileWhole(classPattern)
	if err != nil {
		rs.err = err
		return rs
	}
	propertyRegex, err := compileWhole(propertyPattern)
	if err != nil {
		rs.err = err
		return rs
	}

	rs.err = walk(rs, namespace, classRegex, propertyRegex)
	if rs.err != nil {
		runLog.Errorf("Enumeration aborted, instances=%v, err=%v", len(rs.instances), rs.err)
	} else {
		runLog.Debugf("Enumeration complete, instances=%v", len(rs.instances))
	}
	return rs
}
