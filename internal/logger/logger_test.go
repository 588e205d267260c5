package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLevelFilter(t *testing.T) {
	tests := []struct {
		level   string
		logged  []string
		dropped []string
	}{
		{"debug", []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"}, nil},
		{"info", []string{"[INFO]", "[WARN]", "[ERROR]"}, []string{"[DEBUG]"}},
		{"WARN", []string{"[WARN]", "[ERROR]"}, []string{"[DEBUG]", "[INFO]"}},
		{"error", []string{"[ERROR]"}, []string{"[DEBUG]", "[INFO]", "[WARN]"}},
		{"bogus", []string{"[INFO]"}, []string{"[DEBUG]"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(tt.level, &buf)
			ctx := context.Background()
			l.Debug(ctx, "d %d", 1)
			l.Info(ctx, "i %d", 2)
			l.Warn(ctx, "w %d", 3)
			l.Error(ctx, "e %d", 4)

			out := buf.String()
			for _, want := range tt.logged {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %s: %q", want, out)
				}
			}
			for _, no := range tt.dropped {
				if strings.Contains(out, no) {
					t.Errorf("output should not contain %s: %q", no, out)
				}
			}
		})
	}
}

func TestFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	New("info", &buf).Info(context.Background(), "fetched %d transcripts", 3)
	if !strings.Contains(buf.String(), "[INFO] fetched 3 transcripts") {
		t.Errorf("output = %q", buf.String())
	}
}
