package helpers

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestLogHelpers(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogError(logger, "save failed", errors.New("boom"), logrus.Fields{"user_id": "u1"})
	e := hook.LastEntry()
	if e.Level != logrus.ErrorLevel || e.Message != "save failed" {
		t.Fatalf("entry = %+v", e)
	}
	if e.Data[logrus.ErrorKey].(error).Error() != "boom" || e.Data["user_id"] != "u1" {
		t.Fatalf("fields = %v", e.Data)
	}

	LogInfo(logger, "seeded", nil)
	if hook.LastEntry().Level != logrus.InfoLevel {
		t.Fatalf("want info entry")
	}

	// nil loggers are ignored
	LogError(nil, "x", nil, nil)
	LogInfo(nil, "x", nil)
}

func TestNewLoggerFormats(t *testing.T) {
	if _, ok := NewLogger("app", "development").Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("development should use text")
	}
	if _, ok := NewLogger("app", "production").Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("production should use JSON")
	}
}
