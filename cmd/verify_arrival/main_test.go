package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonewx/fireworks/pkg/config"
)

func TestVerify_RocketScenario(t *testing.T) {
	var out bytes.Buffer
	res, err := verify(config.Default(), 400, 600, 400, 100, 1, 1000, &out)
	if err != nil {
		t.Fatalf("verify() error = %v", err)
	}

	if res.MovedOnArrival {
		t.Error("rocket moved on the arrival tick")
	}
	if res.Sparks != 80 {
		t.Errorf("Sparks = %d, want 80", res.Sparks)
	}
	if res.Explosions != 1 {
		t.Errorf("Explosions = %d, want 1", res.Explosions)
	}
	if res.Traveled < res.Target {
		t.Errorf("Traveled %v < Target %v", res.Traveled, res.Target)
	}
	if res.ArrivalX != 400 || res.ArrivalY >= 600 {
		t.Errorf("arrival at (%v, %v), want straight above the launch point", res.ArrivalX, res.ArrivalY)
	}
	if lines := strings.Count(out.String(), "\n"); lines != res.Ticks {
		t.Errorf("printed %d lines, want one per tick (%d)", lines, res.Ticks)
	}
}

func TestVerify_TickLimit(t *testing.T) {
	var out bytes.Buffer
	if _, err := verify(config.Default(), 0, 10000, 0, 0, 1, 3, &out); err == nil {
		t.Error("expected error when the tick limit is reached")
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		x, y    float64
		wantErr bool
	}{
		{"400,600", 400, 600, false},
		{"12.5,-3", 12.5, -3, false},
		{"abc", 0, 0, true},
	}
	for _, tt := range tests {
		x, y, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (x != tt.x || y != tt.y) {
			t.Errorf("parsePoint(%q) = (%v, %v), want (%v, %v)", tt.in, x, y, tt.x, tt.y)
		}
	}
}
