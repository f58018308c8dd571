package types

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Tolerance used when comparing vector components.
const FloatCmpEpsilon = 1e-7

type Vec2 f32.Vec2
type Vec3 f32.Vec3

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Expand a 2 component vector to a Vec3
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v[0], v[1], z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Returns true if both vectors match within FloatCmpEpsilon.
func (v Vec2) Equal(v2 Vec2) bool {
	return ApproxEqual2(v, v2, FloatCmpEpsilon)
}

// Returns true if both vectors match within FloatCmpEpsilon.
func (v Vec3) Equal(v2 Vec3) bool {
	return ApproxEqual(v, v2, FloatCmpEpsilon)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v[0], v[1])
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}

// Check if two 3 component vectors are equal using a particular threshold.
func ApproxEqual(v1, v2 Vec3, threshold float32) bool {
	for i := 0; i < 3; i++ {
		if abs32(v1[i]-v2[i]) >= threshold {
			return false
		}
	}
	return true
}

// Check if two 2 component vectors are equal using a particular threshold.
func ApproxEqual2(v1, v2 Vec2, threshold float32) bool {
	return abs32(v1[0]-v2[0]) < threshold && abs32(v1[1]-v2[1]) < threshold
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// Calc max component from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
