package geometry

import (
	"math"
	"testing"

	"github.com/adamkw/go-scene-kernel/pkg/core"
)

func TestNewCylinder_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name           string
		height, radius float64
	}{
		{name: "zero height", height: 0, radius: 1},
		{name: "negative radius", height: 2, radius: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCylinder(tt.height, tt.radius); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestCylinder_Intersect_Side(t *testing.T) {
	cylinder, err := NewCylinder(2, 1)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}
	ray := core.NewRay(core.NewPoint3(5, 0, 0), core.NewVec3(-1, 0, 0))

	hits := cylinder.Intersect(ray, 0.001, 1000.0)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}

	const tolerance = 1e-9
	if math.Abs(hits[0].T-4) > tolerance || math.Abs(hits[1].T-6) > tolerance {
		t.Errorf("Expected t=4 and t=6, got t=%f and t=%f", hits[0].T, hits[1].T)
	}
	checkPoint(t, "entry point", hits[0].Point, core.NewPoint3(1, 0, 0), tolerance)
	checkVec(t, "entry normal", hits[0].Normal, core.NewVec3(1, 0, 0), tolerance)
	checkVec(t, "exit normal", hits[1].Normal, core.NewVec3(-1, 0, 0), tolerance)
}

func TestCylinder_Intersect_Caps(t *testing.T) {
	cylinder, err := NewCylinder(2, 1)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}
	// Straight down the axis: the side quadratic degenerates, both caps hit
	ray := core.NewRay(core.NewPoint3(0, 5, 0), core.NewVec3(0, -1, 0))

	hits := cylinder.Intersect(ray, 0.001, 1000.0)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}

	const tolerance = 1e-9
	if math.Abs(hits[0].T-4) > tolerance || math.Abs(hits[1].T-6) > tolerance {
		t.Errorf("Expected t=4 and t=6, got t=%f and t=%f", hits[0].T, hits[1].T)
	}
	checkVec(t, "top cap normal", hits[0].Normal, core.NewVec3(0, 1, 0), tolerance)
	checkVec(t, "bottom cap normal", hits[1].Normal, core.NewVec3(0, -1, 0), tolerance)
}

func TestCylinder_Intersect_MissAboveHeight(t *testing.T) {
	cylinder, err := NewCylinder(2, 1)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}
	// Would hit an infinite cylinder, but passes above the capped extent
	ray := core.NewRay(core.NewPoint3(5, 5, 0), core.NewVec3(-1, 0, 0))

	if hits := cylinder.Intersect(ray, 0.001, 1000.0); len(hits) != 0 {
		t.Errorf("Expected miss, got %d hits", len(hits))
	}
}

func TestCylinder_Intersect_ObliqueThroughCapAndSide(t *testing.T) {
	cylinder, err := NewCylinder(2, 1)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}
	// 45 degree ray entering the top cap at (0.5, 1, 0) and exiting the
	// side at (1, 0.5, 0)
	ray := core.NewRay(core.NewPoint3(-0.5, 2, 0), core.NewVec3(1, -1, 0))

	hits := cylinder.Intersect(ray, 0.001, 1000.0)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}

	const tolerance = 1e-9
	checkPoint(t, "cap entry", hits[0].Point, core.NewPoint3(0.5, 1, 0), tolerance)
	checkVec(t, "cap normal", hits[0].Normal, core.NewVec3(0, 1, 0), tolerance)
	checkPoint(t, "side exit", hits[1].Point, core.NewPoint3(1, 0.5, 0), tolerance)
	checkVec(t, "side normal", hits[1].Normal, core.NewVec3(1, 0, 0), tolerance)
}

func TestCylinder_Bounds(t *testing.T) {
	cylinder, err := NewCylinder(4, 1.5)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}

	bounds := cylinder.Bounds()
	checkPoint(t, "min", bounds.Min, core.NewPoint3(-1.5, -2, -1.5), 1e-12)
	checkPoint(t, "max", bounds.Max, core.NewPoint3(1.5, 2, 1.5), 1e-12)
}
