// Package gateway is the boundary to the external generative-AI service.
//
// The Generator interface covers everything the app asks of the model:
// structured character and world profiles (JSON with a response schema),
// prose synopses, item and scene images, and a streaming chat session seeded
// with the story's context.
//
// Failure semantics are deliberately blunt: any failure wraps
// ErrGenerationFailed, callers show it and move on, nothing is retried, and
// prior state is never touched by a failed call.
package gateway
