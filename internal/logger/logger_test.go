package logger

import (
	"bytes"
	stdlog "log"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"QUIET", LevelOff, false},
		{"", LevelNormal, false},
		{"info", LevelNormal, false},
		{" debug ", LevelVerbose, false},
		{"verbose", LevelVerbose, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLevelsFilterOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("debug line written at normal level")
	}
	if !strings.Contains(buf.String(), "[INF]") || !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("expected info line, got %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelVerbose)
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "[DBG] ") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("silenced")
	if buf.Len() != 0 {
		t.Fatalf("expected no output when off, got %q", buf.String())
	}
	if log.GetLevel() != LevelOff {
		t.Fatalf("expected level off, got %s", log.GetLevel())
	}
}

func TestWriterSharedWithStandardLog(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)
	if log.Writer() != &buf {
		t.Fatal("Writer should return the configured output")
	}

	std := stdlog.New(log.Writer(), "", 0)
	std.Print("from a library")
	log.Info("from ottocalc")
	if !strings.Contains(buf.String(), "from a library") || !strings.Contains(buf.String(), "from ottocalc") {
		t.Fatalf("expected both lines in one stream, got %q", buf.String())
	}

	if New(LevelOff, nil).Writer() != os.Stderr {
		t.Fatal("nil output should default to stderr")
	}
}
