package mathutil

import "github.com/chewxy/math32"

// Inf is the initial "nearest so far" distance for hit searches.
var Inf = math32.Inf(1)

// Zero is the black color and the origin.
var Zero = Vec3{}

// Clamp01 limits x to [0, 1].
func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
