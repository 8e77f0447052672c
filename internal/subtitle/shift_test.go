package subtitle

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		d      time.Duration
		offset time.Duration
		want   time.Duration
	}{
		{"forward", 10 * time.Second, 5 * time.Second, 15 * time.Second},
		{"backward", 10 * time.Second, -2 * time.Second, 8 * time.Second},
		{"zero offset", 3200 * time.Millisecond, 0, 3200 * time.Millisecond},
		{"exactly to zero", time.Second, -time.Second, 0},
		{"millisecond component", time.Second, 750 * time.Millisecond, 1750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shift(tt.d, tt.offset)
			if err != nil {
				t.Fatalf("Shift returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Shift(%v, %v) = %v, want %v", tt.d, tt.offset, got, tt.want)
			}
		})
	}
}

func TestShiftBeforeZero(t *testing.T) {
	_, err := Shift(time.Second, -5*time.Second)
	if !errors.Is(err, ErrNegativeResult) {
		t.Fatalf("expected ErrNegativeResult, got %v", err)
	}

	_, err = Shift(0, -time.Millisecond)
	if !errors.Is(err, ErrNegativeResult) {
		t.Fatalf("expected ErrNegativeResult, got %v", err)
	}
}

func TestShiftToZeroRendersZeroTimestamp(t *testing.T) {
	d, err := Shift(1500*time.Millisecond, -1500*time.Millisecond)
	if err != nil {
		t.Fatalf("Shift returned error: %v", err)
	}
	for format, want := range map[Format]string{
		FormatSRT: "00:00:00,000",
		FormatASS: "0:00:00.00",
	} {
		got, err := Render(d, format)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if got != want {
			t.Errorf("%s: got %q, want %q", format, got, want)
		}
	}
}

func TestNewOffset(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		millis  int
		want    time.Duration
	}{
		{"seconds only", 5, 0, 5 * time.Second},
		{"both negative", -2, -500, -2500 * time.Millisecond},
		{"components cancel partly", 1, -1500, -500 * time.Millisecond},
		{"components cancel fully", 1, -1000, 0},
		{"largest seconds", int(maxOffsetSeconds), 0, time.Duration(maxOffsetSeconds) * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewOffset(tt.seconds, tt.millis)
			if err != nil {
				t.Fatalf("NewOffset returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NewOffset(%d, %d) = %v, want %v", tt.seconds, tt.millis, got, tt.want)
			}
		})
	}
}

func TestNewOffsetOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		millis  int
	}{
		{"seconds overflow", 9_300_000_000, 0},
		{"negative seconds overflow", -9_300_000_000, 0},
		{"just past the seconds limit", int(maxOffsetSeconds) + 1, 0},
		{"millis overflow", 0, math.MaxInt64},
		{"negative millis overflow", 0, math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOffset(tt.seconds, tt.millis)
			if !errors.Is(err, ErrOffsetOutOfRange) {
				t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
			}
		})
	}
}

func TestFirstCueTime(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    time.Duration
	}{
		{
			name:    "srt",
			file:    "a.srt",
			content: "1\n00:00:03,200 --> 00:00:05,000\nHello\n\n2\n00:00:01,000 --> 00:00:02,000\nEarlier but second\n",
			want:    3200 * time.Millisecond,
		},
		{
			name: "ass",
			file: "a.ass",
			content: "[Script Info]\nTitle: x\n\n[Events]\n" +
				"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n" +
				"Comment: 0,0:00:00.50,0:00:01.00,Default,,0,0,0,,skip\n" +
				"Dialogue: 0,0:01:02.34,0:01:04.00,Default,,0,0,0,,first\n",
			want: time.Minute + 2340*time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			got, err := FirstCueTime(path)
			if err != nil {
				t.Fatalf("FirstCueTime returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FirstCueTime = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstCueTimeNoCue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.srt")
	if err := os.WriteFile(path, []byte("1\nno timing here\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := FirstCueTime(path)
	if !errors.Is(err, ErrNoCueFound) {
		t.Errorf("expected ErrNoCueFound, got %v", err)
	}
}

func TestFirstCueTimeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.srt")
	if err := os.WriteFile(path, []byte("1\n0:00:03.2 --> 00:00:05,000\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := FirstCueTime(path)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Errorf("expected *FormatError, got %v", err)
	}
}

func TestFirstCueTimeMissingFile(t *testing.T) {
	_, err := FirstCueTime(filepath.Join(t.TempDir(), "missing.srt"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
