package timeseries

import (
	"errors"
	"testing"
)

func TestTimeAxisFromValues(t *testing.T) {
	values := []float64{2000.0, 2020.0, 2040.0}
	axis, err := NewTimeAxis(values)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if axis.Len() != 3 {
		t.Errorf("expected length 3, got %d", axis.Len())
	}

	for i, v := range values {
		got, err := axis.At(i)
		if err != nil {
			t.Fatalf("at %d failed: %v", i, err)
		}
		if got != v {
			t.Errorf("at %d: expected %v, got %v", i, v, got)
		}
	}

	// Final step inherits the width of the previous one
	bounds, err := axis.AtBounds(2)
	if err != nil {
		t.Fatalf("at_bounds failed: %v", err)
	}
	if bounds != [2]float64{2040.0, 2060.0} {
		t.Errorf("expected bounds (2040, 2060), got %v", bounds)
	}
}

func TestTimeAxisInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"single value", []float64{2000.0}},
		{"decreasing", []float64{2020.0, 1.0, 2021.0}},
		{"repeated", []float64{2020.0, 2020.0, 2021.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTimeAxis(tt.values); !errors.Is(err, ErrInvalidAxis) {
				t.Errorf("expected ErrInvalidAxis, got %v", err)
			}
		})
	}
}

func TestTimeAxisFromBounds(t *testing.T) {
	bounds := [][2]float64{{1.0, 2.0}, {2.0, 3.0}, {3.0, 4.0}}
	axis, err := NewTimeAxisFromBounds(bounds)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if axis.Len() != 3 {
		t.Errorf("expected length 3, got %d", axis.Len())
	}

	for i, b := range bounds {
		got, err := axis.AtBounds(i)
		if err != nil {
			t.Fatalf("at_bounds %d failed: %v", i, err)
		}
		if got != b {
			t.Errorf("at_bounds %d: expected %v, got %v", i, b, got)
		}
	}

	if v, _ := axis.At(1); v != 2.0 {
		t.Errorf("expected value 2.0, got %v", v)
	}
}

func TestTimeAxisFromBoundsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		bounds [][2]float64
	}{
		{"empty", nil},
		{"gap", [][2]float64{{1.0, 2.0}, {2.5, 3.0}}},
		{"overlap", [][2]float64{{1.0, 2.0}, {1.5, 3.0}}},
		{"decreasing bound", [][2]float64{{1.0, 2.0}, {2.0, 1.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTimeAxisFromBounds(tt.bounds); !errors.Is(err, ErrInvalidAxis) {
				t.Errorf("expected ErrInvalidAxis, got %v", err)
			}
		})
	}
}

func TestTimeAxisOutOfRange(t *testing.T) {
	axis, err := NewTimeAxis([]float64{0.0, 1.0, 2.0})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := axis.At(27); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := axis.AtBounds(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := axis.At(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestTimeAxisContains(t *testing.T) {
	axis, err := NewTimeAxis([]float64{1.0, 2.0, 3.0})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if !axis.Contains(1.0) {
		t.Error("expected axis to contain 1.0")
	}
	if axis.Contains(27.0) {
		t.Error("expected axis not to contain 27.0")
	}
	if axis.First() != 1.0 || axis.Last() != 3.0 {
		t.Errorf("expected first 1.0 and last 3.0, got %v and %v", axis.First(), axis.Last())
	}
}
