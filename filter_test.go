// Copyright 2026 the wmienum authors

package wmienum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileWholeMatchesEntireName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		match   bool
	}{
		{"exact name", "Win32_Processor", "Win32_Processor", true},
		{"substring does not match", "Processor", "Win32_Processor", false},
		{"prefix does not match", "Win32", "Win32_Processor", false},
		{"wildcard matches all", ".*", "Win32_Processor", true},
		{"wildcard matches empty", ".*", "", true},
		{"embedded wildcard", "Win32.*Processor.*", "Win32_PerfFormattedData_PerfOS_Processor", true},
		{"embedded wildcard needs the prefix", "Win32.*Processor.*", "CIM_Win32_Processor", false},
		{"leading wildcard", "Win32.*Processor", "Win32_Processor", true},
		{"anchors are redundant but harmless", "^Win32_Processor$", "Win32_Processor", true},
		{"alternation is contained", "Name|Caption", "NameXCaption", false},
		{"alternation matches either arm", "Name|Caption", "Caption", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compileWhole(tt.pattern)
			assert.Nil(t, err)
			assert.Equal(t, tt.match, re.MatchString(tt.input))
		})
	}
}

func TestCompileWholeInvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unclosed group", "(Win32"},
		{"unclosed class", "[a-z"},
		{"dangling repetition", "*Load*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compileWhole(tt.pattern)
			assert.Nil(t, re)
			assert.NotNil(t, err)
			assert.Contains(t, err.Error(), "invalid pattern")
		})
	}
}

func TestEnumerateInvalidPatternFailsFast(t *testing.T) {
	tests := []struct {
		name            string
		classPattern    string
		propertyPattern string
	}{
		{"bad class pattern", "(Win32", ".*"},
		{"bad property pattern", ".*", "[Load"},
		{"both bad", "(", "["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := Enumerate(tt.classPattern, tt.propertyPattern)
			assert.NotNil(t, rs)
			assert.NotNil(t, rs.Err())
			assert.Equal(t, 0, rs.InstanceCount())
		})
	}
}
