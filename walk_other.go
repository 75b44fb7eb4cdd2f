// Copyright 2026 the wmienum authors

//go:build !windows
// +build !windows

package wmienum

import (
	"regexp"

	"github.com/pkg/errors"
)

func walk(rs *ResultSet, namespace string, classRegex, propertyRegex *regexp.Regexp) error {
	return errors.New("WMI enumeration is only supported on windows")
}
