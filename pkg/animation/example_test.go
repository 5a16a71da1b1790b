package animation_test

import (
	"fmt"
	"time"

	"github.com/go-glaze/glaze/pkg/animation"
	"github.com/go-glaze/glaze/pkg/geometry"
)

// This example shows how to create and control an animation.
func ExampleAnimationController() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	controller.Curve = animation.EaseOut

	// Listen for value changes
	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	// Animate forward (0 -> 1)
	controller.Forward()

	// Later, animate in reverse (1 -> 0)
	controller.Reverse()

	// Clean up when done
	controller.Dispose()
}

// This example shows how to create a tween for basic interpolation.
func ExampleTween() {
	opacity := animation.TweenFloat64(0.0, 1.0)
	position := animation.TweenOffset(
		geometry.Offset{X: 0, Y: 0},
		geometry.Offset{X: 100, Y: 50},
	)

	fmt.Printf("Opacity at 0.5: %.1f\n", opacity.Evaluate(0.5))
	fmt.Printf("Position at 1.0: (%.0f, %.0f)\n", position.Evaluate(1.0).X, position.Evaluate(1.0).Y)

	// Output:
	// Opacity at 0.5: 0.5
	// Position at 1.0: (100, 50)
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	// Create a custom curve matching CSS cubic-bezier(0.4, 0.0, 0.2, 1.0)
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	// The curve transforms linear progress to eased progress
	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
