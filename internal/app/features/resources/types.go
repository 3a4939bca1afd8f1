// internal/app/features/resources/types.go
package resources

import (
	resourcestore "github.com/dalemusser/resourcehub/internal/app/store/resources"
	"github.com/dalemusser/resourcehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/resourcehub/internal/app/system/inputval"
	"github.com/dalemusser/resourcehub/internal/app/system/monthyear"
	"github.com/dalemusser/resourcehub/internal/domain/models"
)

// ResourceInput is the JSON payload for creating or updating a resource.
// The same shape serves both operations; an update replaces the record
// wholesale.
type ResourceInput struct {
	Name             string   `json:"name"`
	RelativeURL      string   `json:"relativeUrl"`
	FullURL          string   `json:"fullUrl"`
	Tags             []string `json:"tags"`
	Duration         string   `json:"duration"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Topic            string   `json:"topic"`
	ManualLastUpdate string   `json:"manualLastUpdate"`
}

// validate sanitizes the input and checks every field rule. On success the
// returned Draft is ready for the store; otherwise the Errors map carries
// one message per failing field.
func (in ResourceInput) validate() (resourcestore.Draft, inputval.Errors) {
	errs := inputval.Errors{}

	name := htmlsanitize.Strip(in.Name)
	relativeURL := htmlsanitize.Strip(in.RelativeURL)
	fullURL := htmlsanitize.Strip(in.FullURL)
	duration := htmlsanitize.Strip(in.Duration)
	category := htmlsanitize.Strip(in.Category)
	topic := htmlsanitize.Strip(in.Topic)
	manual := htmlsanitize.Strip(in.ManualLastUpdate)

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if cleaned := htmlsanitize.Strip(t); cleaned != "" {
			tags = append(tags, cleaned)
		}
	}

	if !inputval.MinRunes(name, 3) {
		errs.Add("name", "Name must be at least 3 characters long.")
	}
	if relativeURL != "" && !inputval.IsValidURL(relativeURL) {
		errs.Add("relativeUrl", "Please enter a valid URL.")
	}
	if !inputval.IsValidURL(fullURL) {
		errs.Add("fullUrl", "Please enter a valid URL.")
	}
	if len(tags) == 0 {
		errs.Add("tags", "At least one tag is required.")
	}
	if !inputval.MinRunes(category, 2) {
		errs.Add("category", "Category must be at least 2 characters long.")
	}
	if !inputval.MinRunes(topic, 2) {
		errs.Add("topic", "Topic must be at least 2 characters long.")
	}
	if manual != "" && !monthyear.Valid(manual) {
		errs.Add("manualLastUpdate", "Format must be MM/YYYY")
	}

	resType := models.DefaultResourceType()
	if in.Type != "" {
		parsed, ok := models.ParseResourceType(in.Type)
		if !ok {
			errs.Add("type", "Type is invalid.")
		} else {
			resType = parsed
		}
	}

	if !errs.Ok() {
		return resourcestore.Draft{}, errs
	}

	return resourcestore.Draft{
		Name:             name,
		RelativeURL:      relativeURL,
		FullURL:          fullURL,
		Tags:             tags,
		Duration:         duration,
		Type:             resType,
		Category:         category,
		Topic:            topic,
		ManualLastUpdate: manual,
	}, errs
}
