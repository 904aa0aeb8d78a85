package scene

import (
	"fmt"
	"sort"

	"ppm-raytracer/internal/mathutil"
)

type vec = mathutil.Vec3

var presets = map[string]func() *Scene{
	"default":    Default,
	"empty":      Empty,
	"red-sphere": RedSphere,
	"lit-above":  LitAbove,
	"lit-front":  LitFront,
	"occluded":   Occluded,
	"triangle":   SingleTriangle,
}

// Preset builds the named built-in scene.
func Preset(name string) (*Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown preset %q", name)
	}
	return build(), nil
}

// PresetNames lists the built-in scenes in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Light returns a black emissive sphere.
func Light(center vec, radius float32, emission vec) Sphere {
	return NewSphere(center, radius, mathutil.Zero, emission, 0, 0)
}

// Diffuse returns a non-emissive opaque sphere.
func Diffuse(center vec, radius float32, surface vec) Sphere {
	return NewSphere(center, radius, surface, mathutil.Zero, 0, 0)
}

// Default is a large ground sphere, four colored spheres, a tilted
// triangle and one overhead light.
func Default() *Scene {
	return New("default").
		AddSphere(NewSphere(vec{0, -10004, -20}, 10000, vec{0.20, 0.20, 0.20}, mathutil.Zero, 0, 0)).
		AddSphere(NewSphere(vec{0, 0, -20}, 4, vec{1.00, 0.32, 0.36}, mathutil.Zero, 1, 0.5)).
		AddSphere(NewSphere(vec{5, -1, -15}, 2, vec{0.90, 0.76, 0.46}, mathutil.Zero, 1, 0)).
		AddSphere(NewSphere(vec{5, 0, -25}, 3, vec{0.65, 0.77, 0.97}, mathutil.Zero, 1, 0)).
		AddSphere(NewSphere(vec{-5.5, 0, -15}, 3, vec{0.90, 0.90, 0.90}, mathutil.Zero, 1, 0)).
		AddTriangle(vec{-10, -4, -28}, vec{-4, -4, -28}, vec{-7, 2, -32}, vec{0.40, 0.80, 0.40}).
		AddSphere(Light(vec{0, 20, -30}, 3, mathutil.Splat(3)))
}

// Empty has no primitives; every pixel is background.
func Empty() *Scene {
	return New("empty")
}

// RedSphere is a single unlit red sphere on the view axis.
func RedSphere() *Scene {
	return New("red-sphere").
		AddSphere(Diffuse(vec{0, 0, -20}, 4, vec{1, 0, 0}))
}

// LitAbove adds a light directly above the red sphere.
func LitAbove() *Scene {
	s := RedSphere().AddSphere(Light(vec{0, 20, -20}, 3, mathutil.Splat(3)))
	s.Name = "lit-above"
	return s
}

// LitFront puts the light between the camera and the red sphere.
func LitFront() *Scene {
	s := RedSphere().AddSphere(Light(vec{0, 0, -10}, 3, mathutil.Splat(3)))
	s.Name = "lit-front"
	return s
}

// Occluded places an opaque sphere between the light and the red sphere.
func Occluded() *Scene {
	s := LitAbove().AddSphere(Diffuse(vec{0, 0, -15}, 2, vec{0.5, 0.5, 0.5}))
	s.Name = "occluded"
	return s
}

// SingleTriangle is one camera-facing triangle lit from behind the camera.
func SingleTriangle() *Scene {
	return New("triangle").
		AddTriangle(vec{-1, -1, -5}, vec{1, -1, -5}, vec{0, 1, -5}, vec{0.2, 0.6, 1.0}).
		AddSphere(Light(vec{0, 0, 5}, 1, mathutil.Splat(2)))
}
