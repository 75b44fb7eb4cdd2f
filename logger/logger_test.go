// Copyright 2026 the wmienum authors

package logger

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func getLogFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "test.log")
}

func logAllLevels(testName string) {
	Tracef("%s:%s", testName, log.TraceLevel.String())
	Debugf("%s:%s", testName, log.DebugLevel.String())
	Infof("%s:%s", testName, log.InfoLevel.String())
	Warnf("%s:%s", testName, log.WarnLevel.String())
	Errorf("%s:%s", testName, log.ErrorLevel.String())
}

func testContains(t *testing.T, logFile string, testName string, level string, shouldContain bool) {
	b, err := ioutil.ReadFile(logFile)
	assert.Nil(t, err)
	assert.Equal(t, shouldContain, strings.Contains(string(b), fmt.Sprintf("%s:%s", testName, level)))
}

func TestLogLevelFiltering(t *testing.T) {
	logFile := getLogFile(t)
	err := InitLogging(logFile, &LogParams{Level: "info"}, false)
	assert.Nil(t, err)

	logAllLevels(t.Name())
	testContains(t, logFile, t.Name(), log.TraceLevel.String(), false)
	testContains(t, logFile, t.Name(), log.DebugLevel.String(), false)
	testContains(t, logFile, t.Name(), log.InfoLevel.String(), true)
	testContains(t, logFile, t.Name(), log.WarnLevel.String(), true)
	testContains(t, logFile, t.Name(), log.ErrorLevel.String(), true)
}

func TestLogLevelFromEnv(t *testing.T) {
	logFile := getLogFile(t)
	os.Setenv("LOG_LEVEL", "error")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogging(logFile, &LogParams{Level: "trace"}, false)
	assert.Nil(t, err)

	logAllLevels(t.Name())
	testContains(t, logFile, t.Name(), log.InfoLevel.String(), false)
	testContains(t, logFile, t.Name(), log.ErrorLevel.String(), true)
}

func TestLogParamDefaults(t *testing.T) {
	tests := []struct {
		name   string
		params LogParams
		level  string
		files  int
		sizeMB int
		format string
	}{
		{"empty params", LogParams{}, DefaultLogLevel, DefaultMaxLogFiles, DefaultMaxLogSize, TextFormat},
		{"invalid level", LogParams{Level: "noisy"}, DefaultLogLevel, DefaultMaxLogFiles, DefaultMaxLogSize, TextFormat},
		{"valid trace level", LogParams{Level: "trace"}, "trace", DefaultMaxLogFiles, DefaultMaxLogSize, TextFormat},
		{"file count over limit", LogParams{MaxFiles: MaxFilesLimit + 1}, DefaultLogLevel, DefaultMaxLogFiles, DefaultMaxLogSize, TextFormat},
		{"json format", LogParams{Format: "json"}, DefaultLogLevel, DefaultMaxLogFiles, DefaultMaxLogSize, JSONFormat},
		{"invalid format", LogParams{Format: "xml"}, DefaultLogLevel, DefaultMaxLogFiles, DefaultMaxLogSize, TextFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.level, tt.params.GetLevel())
			assert.Equal(t, tt.files, tt.params.GetMaxFiles())
			assert.Equal(t, tt.sizeMB, tt.params.GetMaxSize())
			assert.Equal(t, tt.format, tt.params.GetLogFormat())
		})
	}
}
