// Copyright 2026 the wmienum authors

// Package wmienum enumerates the WMI classes and instances whose class name
// matches a regular expression and, for each matching instance, collects the
// properties whose name matches a second regular expression. Results come
// back as a single owned ResultSet with bounds-checked, index-based
// accessors, mirroring the flat ABI exported by cmd/wmienumdll.
package wmienum

// PropertyRecord is one (name, display value) pair collected from a matched
// instance.
type PropertyRecord struct {
	Key   string
	Value string
}

// InstanceRecord is the output record for one enumerated instance: its class
// name and the matched properties in enumeration order.
type InstanceRecord struct {
	ClassName  string
	Properties []PropertyRecord
}

// ResultSet holds the outcome of one enumeration walk. If Err is non-nil the
// walk stopped early, but any records gathered before the failure are still
// present. A ResultSet is immutable once returned.
type ResultSet struct {
	err       error
	instances []InstanceRecord
}

// Err returns the error that aborted the walk, or nil if the walk ran to
// completion.
func (r *ResultSet) Err() error {
	return r.err
}

// InstanceCount returns the number of instance records collected.
func (r *ResultSet) InstanceCount() int {
	return len(r.instances)
}

// InstanceClassName returns the class name of the given instance record, or
// "" if the index is out of range.
func (r *ResultSet) InstanceClassName(instance int) string {
	if instance < 0 || instance >= len(r.instances) {
		return ""
	}
	return r.instances[instance].ClassName
}

// InstancePropertyCount returns the number of properties recorded for the
// given instance, or 0 if the index is out of range.
func (r *ResultSet) InstancePropertyCount(instance int) int {
	if instance < 0 || instance >= len(r.instances) {
		return 0
	}
	return len(r.instances[instance].Properties)
}

// InstancePropertyKey returns the name of the given property on the given
// instance, or "" if either index is out of range.
func (r *ResultSet) InstancePropertyKey(instance, property int) string {
	if rec := r.property(instance, property); rec != nil {
		return rec.Key
	}
	return ""
}

// InstancePropertyValue returns the display value of the given property on
// the given instance, or "" if either index is out of range.
func (r *ResultSet) InstancePropertyValue(instance, property int) string {
	if rec := r.property(instance, property); rec != nil {
		return rec.Value
	}
	return ""
}

// Instances returns the collected records. The caller must not modify them.
func (r *ResultSet) Instances() []InstanceRecord {
	return r.instances
}

func (r *ResultSet) property(instance, property int) *PropertyRecord {
	if instance < 0 || instance >= len(r.instances) {
		return nil
	}
	props := r.instances[instance].Properties
	if property < 0 || property >= len(props) {
		return nil
	}
	return &props[property]
}
