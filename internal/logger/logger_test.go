package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{MaxBackups: 3}.withDefaults()
	if o.Dir != "logs" || o.Filename != "salon.log" {
		t.Fatalf("unexpected path defaults: %+v", o)
	}
	if o.MaxSizeMB != 100 || o.MaxBackups != 3 || o.MaxAgeDays != 30 {
		t.Fatalf("unexpected rotation defaults: %+v", o)
	}
}

func TestReleaseWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	l := New("release", Options{Dir: dir, Filename: "release.log"})
	l.Sugar().Infow("booking_created", "booking_id", "bk-1")
	l.Sugar().Debugw("pricing_cache_miss")
	_ = l.Sync()

	content, err := os.ReadFile(filepath.Join(dir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, `"message":"booking_created"`) || !strings.Contains(text, `"booking_id":"bk-1"`) {
		t.Fatalf("expected structured json line, got %s", text)
	}
	if strings.Contains(text, "pricing_cache_miss") {
		t.Fatalf("debug entries should be filtered at info level")
	}
}

func TestDebugModeSkipsFile(t *testing.T) {
	dir := t.TempDir()
	l := New("debug", Options{Dir: dir, Filename: "debug.log"})
	l.Info("debug-log-test")
	_ = l.Sync()

	if _, err := os.Stat(filepath.Join(dir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		raw   string
		debug bool
		want  zapcore.Level
	}{
		{"", true, zapcore.DebugLevel},
		{"", false, zapcore.InfoLevel},
		{"warn", false, zapcore.WarnLevel},
		{"nonsense", false, zapcore.InfoLevel},
	}
	for _, tc := range cases {
		if got := resolveLevel(tc.raw, tc.debug); got != tc.want {
			t.Fatalf("level(%q,%v): want %v got %v", tc.raw, tc.debug, tc.want, got)
		}
	}
}
