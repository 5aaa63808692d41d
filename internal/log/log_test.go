package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestQuietSuppressesProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quiet bool
		write func(l *Logger)
		want  string
	}{
		{
			name:  "Printf passes through",
			write: func(l *Logger) { l.Printf("Scanning %d roots\n", 3) },
			want:  "Scanning 3 roots\n",
		},
		{
			name:  "Printf silent when quiet",
			quiet: true,
			write: func(l *Logger) { l.Printf("Scanning %d roots\n", 3) },
			want:  "",
		},
		{
			name:  "Println passes through",
			write: func(l *Logger) { l.Println("Warning: clipboard unavailable") },
			want:  "Warning: clipboard unavailable\n",
		},
		{
			name:  "Println silent when quiet",
			quiet: true,
			write: func(l *Logger) { l.Println("Warning: clipboard unavailable") },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.write(New(&buf, false, tt.quiet))
			if got := buf.String(); got != tt.want {
				t.Errorf("logger wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_VerboseEcho(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)

	done := l.Command("/src/api", "git", "rev-parse", "--abbrev-ref", "HEAD")
	done(12 * time.Millisecond)

	got := buf.String()
	if !strings.Contains(got, "[/src/api] $ git rev-parse --abbrev-ref HEAD") {
		t.Errorf("Command echo = %q, want the full invocation with its directory", got)
	}
	if !strings.Contains(got, "(12ms)") {
		t.Errorf("Command echo = %q, want the duration appended", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Command echo = %q, want a completed line", got)
	}
}

func TestCommand_NoDir(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)

	l.Command("", "git", "--version")(time.Millisecond)

	if got := buf.String(); !strings.HasPrefix(got, "$ git --version") {
		t.Errorf("Command echo = %q, want no directory prefix", got)
	}
}

func TestCommand_Disabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
	}{
		{name: "default is silent"},
		{name: "quiet beats verbose", verbose: true, quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, tt.quiet)
			done := l.Command("/src/api", "git", "status")
			done(time.Second)
			if buf.Len() != 0 {
				t.Errorf("Command wrote %q, want nothing", buf.String())
			}
		})
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("formats key value pairs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)

		l.Debug("scan complete", "root", "~/src", "repos", 7)

		got := buf.String()
		if got != "scan complete root=~/src repos=7\n" {
			t.Errorf("Debug wrote %q, want message followed by key=value pairs", got)
		}
	})

	t.Run("drops an odd trailing key", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)

		l.Debug("rescan failed", "style", "versioned", "dangling")

		got := buf.String()
		if !strings.Contains(got, "style=versioned") {
			t.Errorf("Debug wrote %q, want the complete pair kept", got)
		}
		if strings.Contains(got, "dangling") {
			t.Errorf("Debug wrote %q, want the unpaired key dropped", got)
		}
	})

	t.Run("silent unless verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("hidden", "key", "value")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q without verbose", buf.String())
		}
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbose bool
		quiet   bool
		want    bool
	}{
		{verbose: true, want: true},
		{quiet: true, want: false},
		{verbose: true, quiet: true, want: false},
		{want: false},
	}

	for _, tt := range tests {
		l := New(io.Discard, tt.verbose, tt.quiet)
		if got := l.IsVerbose(); got != tt.want {
			t.Errorf("New(verbose=%v, quiet=%v).IsVerbose() = %v, want %v",
				tt.verbose, tt.quiet, got, tt.want)
		}
	}
}

func TestContextCarriage(t *testing.T) {
	t.Parallel()

	t.Run("stored logger comes back", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)

		got := FromContext(WithLogger(context.Background(), l))
		if got != l {
			t.Fatal("FromContext returned a different logger than stored")
		}

		got.Printf("still wired\n")
		if buf.String() != "still wired\n" {
			t.Errorf("logger from context wrote %q", buf.String())
		}
	})

	t.Run("bare context discards safely", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil for a bare context")
		}
		l.Printf("dropped %s\n", "silently")
		l.Debug("dropped", "key", "value")
		l.Command("/tmp", "git", "status")(time.Millisecond)
		if l.IsVerbose() {
			t.Error("fallback logger should not report verbose")
		}
	})
}
