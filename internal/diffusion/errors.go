package diffusion

import "errors"

// Numerical failure modes of the group-diffusion solve. Both indicate
// pathological cross-section input, never a recoverable state.
var (
	// ErrSingular indicates a singular or near-singular removal matrix.
	ErrSingular = errors.New("diffusion: removal matrix singular or ill-conditioned")

	// ErrInvalidFlux indicates a negative or non-finite flux component.
	ErrInvalidFlux = errors.New("diffusion: flux vector negative or non-finite")
)
