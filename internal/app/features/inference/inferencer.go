// internal/app/features/inference/inferencer.go
package inference

import (
	"context"
)

// Metadata is what the model could work out about a resource. Either
// field may be blank when the model had nothing trustworthy to say.
type Metadata struct {
	Duration         string `json:"duration,omitempty"`
	ManualLastUpdate string `json:"manualLastUpdate,omitempty"`
}

// Inferencer analyzes a resource's name and URL and estimates its
// consumption time and last-update date.
type Inferencer interface {
	InferMetadata(ctx context.Context, name, url string) (Metadata, error)
}
