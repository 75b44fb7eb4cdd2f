// Copyright 2026 the wmienum authors

//go:build windows
// +build windows

package wmienum

import (
	"regexp"
	"strings"

	ole "github.com/go-ole/go-ole"

	"github.com/wmikit/wmienum/wmi"
)

// arraySeparator joins the elements of a string-array property into its
// single display value.
const arraySeparator = ", "

// walk performs one synchronous pass: classes, then instances of each
// matching class, then properties of each instance. The first failure at any
// level short-circuits every level; records appended to rs before that point
// stay put.
func walk(rs *ResultSet, namespace string, classRegex, propertyRegex *regexp.Regexp) error {
	session, err := wmi.Connect(namespace)
	if err != nil {
		return err
	}
	defer session.Close()

	classEnum, err := session.ClassEnum()
	if err != nil {
		return err
	}
	defer classEnum.Release()

	for {
		classes, err := classEnum.Next()
		if err != nil {
			return err
		}
		if classes == nil {
			return nil
		}
		if err := walkClassPage(rs, session, classes, classRegex, propertyRegex); err != nil {
			return err
		}
	}
}

// walkClassPage consumes one page of class objects, releasing every object
// in the page on all paths.
func walkClassPage(rs *ResultSet, session *wmi.Session, classes []*wmi.Object, classRegex, propertyRegex *regexp.Regexp) error {
	defer func() {
		for _, class := range classes {
			class.Release()
		}
	}()

	for _, class := range classes {
		className, err := class.ClassName()
		if err != nil {
			return err
		}
		if !classRegex.MatchString(className) {
			continue
		}
		if err := collectInstances(rs, session, className, propertyRegex); err != nil {
			return err
		}
	}
	return nil
}

// collectInstances appends one record per instance of the named class.
func collectInstances(rs *ResultSet, session *wmi.Session, className string, propertyRegex *regexp.Regexp) error {
	instanceEnum, err := session.InstanceEnum(className)
	if err != nil {
		return err
	}
	defer instanceEnum.Release()

	for {
		instances, err := instanceEnum.Next()
		if err != nil {
			return err
		}
		if instances == nil {
			return nil
		}
		if err := walkInstancePage(rs, instances, propertyRegex); err != nil {
			return err
		}
	}
}

func walkInstancePage(rs *ResultSet, instances []*wmi.Object, propertyRegex *regexp.Regexp) error {
	defer func() {
		for _, instance := range instances {
			instance.Release()
		}
	}()

	for _, instance := range instances {
		record, err := collectProperties(instance, propertyRegex)
		if err != nil {
			return err
		}
		rs.instances = append(rs.instances, record)
	}
	return nil
}

// collectProperties builds the output record for one instance. The record
// carries the instance's own __CLASS, which can be a subclass of the class
// that was enumerated. A property whose value stringifies to zero elements
// is dropped rather than recorded with an empty value.
func collectProperties(instance *wmi.Object, propertyRegex *regexp.Regexp) (InstanceRecord, error) {
	var record InstanceRecord

	className, err := instance.ClassName()
	if err != nil {
		return record, err
	}
	record.ClassName = className

	if err := instance.BeginEnumeration(); err != nil {
		return record, err
	}
	defer instance.EndEnumeration()

	for {
		key, value, ok, err := instance.NextProperty()
		if err != nil {
			return record, err
		}
		if !ok {
			return record, nil
		}
		if !propertyRegex.MatchString(key) {
			ole.VariantClear(value)
			continue
		}
		elements := wmi.VariantStrings(value)
		ole.VariantClear(value)
		if len(elements) == 0 {
			continue
		}
		record.Properties = append(record.Properties, PropertyRecord{
			Key:   key,
			Value: strings.Join(elements, arraySeparator),
		})
	}
}
