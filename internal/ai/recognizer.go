package ai

import "context"

// PersonRecognizer extracts the first person name found in free-form text.
// Implementations may call external services; callers must treat failures as
// "no name found" and fall back to pattern matching.
type PersonRecognizer interface {
	FirstPerson(ctx context.Context, text string) (string, error)
}
