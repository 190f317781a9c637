package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{50, 5, 89, 50},
		{4, 5, 89, 5},
		{90, 5, 89, 89},
		{5, 5, 89, 5},
		{89, 5, 89, 89},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%.1f, %.1f, %.1f) = %.1f, want %.1f", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}

	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp[int] = %d, want 10", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{361, 1},
		{-1, 359},
		{-360, 0},
		{725, 5},
		{-1e-17, 0},
	}
	for _, tt := range tests {
		got := WrapDegrees(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v outside [0, 360)", tt.in, got)
		}
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v, want π", got)
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, want float64
	}{
		{"up", 0, 1, 0.15},
		{"down", 1, 0, 0.85},
		{"at target", 0.5, 0.5, 0.5},
		{"within a step below", 0, 0.1, 0},
		{"within a step above", 0.2, 0.1, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepToward(tt.current, tt.target, 0.15); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("StepToward(%.2f, %.2f) = %.4f, want %.4f", tt.current, tt.target, got, tt.want)
			}
		})
	}

	// 目标附近不会来回振荡
	x := 0.2
	for i := 0; i < 10; i++ {
		x = StepToward(x, 0.1, 0.15)
	}
	if math.Abs(x-0.05) > 1e-9 {
		t.Errorf("Expected to settle at 0.05, got %.4f", x)
	}
}
