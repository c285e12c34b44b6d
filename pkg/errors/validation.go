package errors

import "time"

// MaxLength bounds the sequence length accepted from configuration.
// Larger runs are valid for the engine but unusable for animation.
const MaxLength = 1 << 20

// ValidateQuantum checks that a work quantum is a positive number of units.
func ValidateQuantum(quantum int) error {
	if quantum < 1 {
		return New(ErrCodeInvalidQuantum, "quantum must be a positive number of units per frame, got %d", quantum)
	}
	return nil
}

// ValidateLength checks that a sequence length is positive and bounded.
func ValidateLength(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidLength, "sequence length must be positive, got %d", n)
	}
	if n > MaxLength {
		return New(ErrCodeInvalidLength, "sequence length too large (max %d), got %d", MaxLength, n)
	}
	return nil
}

// ValidateFPS checks that a display frame rate is usable.
func ValidateFPS(fps int) error {
	if fps < 1 || fps > 1000 {
		return New(ErrCodeInvalidConfig, "fps must be between 1 and 1000, got %d", fps)
	}
	return nil
}

// ValidatePause checks that a pause duration is not negative.
func ValidatePause(d time.Duration) error {
	if d < 0 {
		return New(ErrCodeInvalidConfig, "pause cannot be negative, got %s", d)
	}
	return nil
}
