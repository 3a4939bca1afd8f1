package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is one catalog entry (article, video, course, tool, or
// documentation page), fully normalized for use by handlers and templates.
//
// Instances are produced by the resources store, which converts raw stored
// documents into this shape and guarantees every field is populated (see
// store/resources.Normalize). Code outside the store should never see a
// Resource with a nil Tags slice or an empty Type.
type Resource struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	RelativeURL string             `json:"relativeUrl"`
	FullURL     string             `json:"fullUrl"`
	Tags        []string           `json:"tags"`
	Duration    string             `json:"duration"`
	Type        ResourceType       `json:"type"`
	Category    string             `json:"category"`
	Topic       string             `json:"topic"`

	// UpdatedDate is assigned by the store on every create and update.
	// It tracks the catalog record, not the underlying content.
	UpdatedDate time.Time `json:"updatedDate"`

	// ManualLastUpdate is the user-asserted "content last updated" month in
	// strict MM/YYYY form, or empty when unknown.
	ManualLastUpdate string `json:"manualLastUpdate,omitempty"`
}
