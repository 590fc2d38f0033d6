package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_DotAndCross(t *testing.T) {
	tests := []struct {
		name          string
		a, b          Vec3
		expectedDot   float64
		expectedCross Vec3
	}{
		{
			name:          "orthonormal axes",
			a:             NewVec3(1, 0, 0),
			b:             NewVec3(0, 1, 0),
			expectedDot:   0,
			expectedCross: NewVec3(0, 0, 1),
		},
		{
			name:          "parallel vectors",
			a:             NewVec3(2, 0, 0),
			b:             NewVec3(3, 0, 0),
			expectedDot:   6,
			expectedCross: NewVec3(0, 0, 0),
		},
		{
			name:          "general vectors",
			a:             NewVec3(1, 2, 3),
			b:             NewVec3(4, 5, 6),
			expectedDot:   32,
			expectedCross: NewVec3(-3, 6, -3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			if dot := tt.a.Dot(tt.b); math.Abs(dot-tt.expectedDot) > tolerance {
				t.Errorf("Expected dot %v, got %v", tt.expectedDot, dot)
			}
			if cross := tt.a.Cross(tt.b); cross.Subtract(tt.expectedCross).Length() > tolerance {
				t.Errorf("Expected cross %v, got %v", tt.expectedCross, cross)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	unit, err := v.Normalize()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	const tolerance = 1e-12
	expected := NewVec3(0.6, 0.8, 0)
	if unit.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, unit)
	}
	if math.Abs(unit.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %v", unit.Length())
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	_, err := NewVec3(0, 0, 0).Normalize()
	if err == nil {
		t.Fatal("Expected error normalizing zero vector, got nil")
	}
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector, got %v", err)
	}
}

func TestPoint3_SubAndAdd(t *testing.T) {
	p := NewPoint3(1, 2, 3)
	q := NewPoint3(4, 6, 8)

	offset := q.Sub(p)
	expected := NewVec3(3, 4, 5)
	if offset != expected {
		t.Errorf("Expected %v, got %v", expected, offset)
	}

	if back := p.Add(offset); back != q {
		t.Errorf("Expected %v, got %v", q, back)
	}
}

func TestRay_At(t *testing.T) {
	// Direction is deliberately non-unit: t must scale with its length
	ray := NewRay(NewPoint3(1, 0, 0), NewVec3(0, 0, -2))
	point := ray.At(1.5)

	expected := NewPoint3(1, 0, -3)
	if point != expected {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
