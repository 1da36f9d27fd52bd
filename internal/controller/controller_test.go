// FILE: internal/controller/controller_test.go
package controller

import "github.com/marcosalmeidaedp/bot-cliente/internal/pkg/logger"

type testLogger struct{}

func (testLogger) Debug(string, string, map[string]interface{}) {}
func (testLogger) Info(string, string, map[string]interface{})  {}
func (testLogger) Warn(string, string, map[string]interface{})  {}
func (testLogger) Error(string, string, map[string]interface{}) {}
func (testLogger) Sync() error                                  { return nil }
func (testLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return []logger.LogEntry{}, nil
}
