package core

import (
	"testing"
	"time"
)

func TestRuntimeConfigNormalized(t *testing.T) {
	got := RuntimeConfig{ScreenW: 120, TickRate: -5}.Normalized()
	want := RuntimeConfig{ScreenW: 120, ScreenH: 24, TickRate: 60}
	if got != want {
		t.Errorf("Normalized() = %+v, want %+v", got, want)
	}
}

func TestRuntimeConfigFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
	}
	for _, tt := range tests {
		if got := (RuntimeConfig{TickRate: tt.rate}).FrameInterval(); got != tt.want {
			t.Errorf("FrameInterval(%d fps) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionFlap.String() != "flap" || Action(42).String() != "unknown" {
		t.Errorf("unexpected names %q %q", ActionFlap, Action(42))
	}
}
