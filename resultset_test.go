// Copyright 2026 the wmienum authors

package wmienum

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func sampleResultSet() *ResultSet {
	return &ResultSet{
		instances: []InstanceRecord{
			{
				ClassName: "Win32_Processor",
				Properties: []PropertyRecord{
					{Key: "LoadPercentage", Value: "7"},
					{Key: "Name", Value: "CPU0"},
				},
			},
			{
				ClassName:  "Win32_PerfFormattedData_PerfOS_Processor",
				Properties: nil,
			},
		},
	}
}

func TestResultSetAccessors(t *testing.T) {
	rs := sampleResultSet()

	assert.Nil(t, rs.Err())
	assert.Equal(t, 2, rs.InstanceCount())
	assert.Equal(t, "Win32_Processor", rs.InstanceClassName(0))
	assert.Equal(t, 2, rs.InstancePropertyCount(0))
	assert.Equal(t, "LoadPercentage", rs.InstancePropertyKey(0, 0))
	assert.Equal(t, "7", rs.InstancePropertyValue(0, 0))
	assert.Equal(t, "Name", rs.InstancePropertyKey(0, 1))
	assert.Equal(t, "CPU0", rs.InstancePropertyValue(0, 1))
	assert.Equal(t, 0, rs.InstancePropertyCount(1))
}

func TestResultSetOutOfRange(t *testing.T) {
	rs := sampleResultSet()

	tests := []struct {
		name     string
		instance int
		property int
	}{
		{"instance past end", 2, 0},
		{"instance far past end", 1000, 0},
		{"negative instance", -1, 0},
		{"property past end", 0, 2},
		{"negative property", 0, -1},
		{"property on empty instance", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.property == 0 && tt.instance >= rs.InstanceCount() {
				assert.Equal(t, "", rs.InstanceClassName(tt.instance))
				assert.Equal(t, 0, rs.InstancePropertyCount(tt.instance))
			}
			assert.Equal(t, "", rs.InstancePropertyKey(tt.instance, tt.property))
			assert.Equal(t, "", rs.InstancePropertyValue(tt.instance, tt.property))
		})
	}
}

func TestPartialResultsSurviveError(t *testing.T) {
	rs := sampleResultSet()
	rs.err = errors.New("failed IEnumWbemClassObject::Next method")

	// A failed walk keeps everything gathered before the failure; the error
	// never gates the accessors.
	assert.NotNil(t, rs.Err())
	assert.Equal(t, 2, rs.InstanceCount())
	assert.Equal(t, "Win32_Processor", rs.InstanceClassName(0))
	assert.Equal(t, 2, rs.InstancePropertyCount(0))
	assert.Equal(t, "LoadPercentage", rs.InstancePropertyKey(0, 0))
	assert.Equal(t, "7", rs.InstancePropertyValue(0, 0))
	assert.Equal(t, "Win32_PerfFormattedData_PerfOS_Processor", rs.InstanceClassName(1))

	// Out-of-range behavior is unchanged by the error state
	assert.Equal(t, "", rs.InstanceClassName(2))
	assert.Equal(t, 0, rs.InstancePropertyCount(2))
}

func TestEmptyResultSet(t *testing.T) {
	rs := &ResultSet{}

	assert.Nil(t, rs.Err())
	assert.Equal(t, 0, rs.InstanceCount())
	assert.Equal(t, "", rs.InstanceClassName(0))
	assert.Equal(t, 0, rs.InstancePropertyCount(0))
	assert.Equal(t, "", rs.InstancePropertyKey(0, 0))
	assert.Equal(t, "", rs.InstancePropertyValue(0, 0))
}
