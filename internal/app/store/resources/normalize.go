// internal/app/store/resources/normalize.go
package resourcestore

import (
	"fmt"
	"time"

	"github.com/dalemusser/resourcehub/internal/app/system/monthyear"
	"github.com/dalemusser/resourcehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinels applied when a stored document is missing required fields.
// The catalog must stay browsable even with partially corrupt historical
// records, so reads default instead of failing.
const (
	FallbackName     = "Unnamed Resource"
	FallbackURL      = "https://example.com/invalid-url"
	FallbackCategory = "Uncategorized"
	FallbackTopic    = "General"
)

// RawRecord is one stored document exactly as it came off the wire:
// loosely typed, possibly missing fields, possibly carrying legacy shapes.
// Normalize is the only function that turns it into a models.Resource.
type RawRecord = bson.M

// Diagnostic records one data-quality anomaly found while normalizing a
// stored document. Anomalies never fail a read; they are returned so
// callers (and tests) can log or assert on them without relying on log
// output as a side channel.
type Diagnostic struct {
	RecordID string `json:"recordId"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// Normalize converts a raw stored document into a fully populated Resource.
// It never fails: every malformed or missing field is replaced with a
// default, and anything that looks like corruption (rather than mere
// absence) is reported as a Diagnostic.
func Normalize(id primitive.ObjectID, raw RawRecord) (models.Resource, []Diagnostic) {
	var diags []Diagnostic
	hexID := id.Hex()
	note := func(field, format string, args ...any) {
		diags = append(diags, Diagnostic{
			RecordID: hexID,
			Field:    field,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	r := models.Resource{ID: id}

	if name, ok := nonEmptyString(raw["name"]); ok {
		r.Name = name
	} else {
		r.Name = FallbackName
		note("name", "missing name; defaulting to %q", FallbackName)
	}

	if u, ok := nonEmptyString(raw["fullUrl"]); ok {
		r.FullURL = u
	} else {
		r.FullURL = FallbackURL
		note("fullUrl", "missing fullUrl; defaulting to %q", FallbackURL)
	}

	r.RelativeURL, _ = nonEmptyString(raw["relativeUrl"])
	r.Tags = stringSlice(raw["tags"])
	r.Duration, _ = nonEmptyString(raw["duration"])

	// Absent type defaults silently; a present but unrecognized value is a
	// data-quality signal.
	r.Type = models.DefaultResourceType()
	if v, present := raw["type"]; present && v != nil {
		s, _ := v.(string)
		if t, ok := models.ParseResourceType(s); ok {
			r.Type = t
		} else {
			note("type", "invalid type %v; defaulting to %q", v, r.Type)
		}
	}

	if c, ok := nonEmptyString(raw["category"]); ok {
		r.Category = c
	} else {
		r.Category = FallbackCategory
	}
	if tp, ok := nonEmptyString(raw["topic"]); ok {
		r.Topic = tp
	} else {
		r.Topic = FallbackTopic
	}

	if ts, ok := asTime(raw["updatedDate"]); ok {
		r.UpdatedDate = ts
	} else {
		r.UpdatedDate = time.Unix(0, 0).UTC()
		if v, present := raw["updatedDate"]; present && v != nil {
			note("updatedDate", "invalid updatedDate %v; defaulting to epoch", v)
		}
	}

	r.ManualLastUpdate = normalizeManualLastUpdate(raw)

	return r, diags
}

// normalizeManualLastUpdate resolves the three stored representations of
// the user-asserted content date. The canonical string wins when it is
// well-formed; otherwise the string is reconstructed from the numeric
// month/year parts; otherwise the value is absent. Anything that fails the
// strict MM/YYYY pattern is treated as absent.
func normalizeManualLastUpdate(raw RawRecord) string {
	if s, ok := nonEmptyString(raw["manualLastUpdateString"]); ok && monthyear.Valid(s) {
		return s
	}
	month, mok := asInt(raw["manualLastUpdateMonth"])
	year, yok := asInt(raw["manualLastUpdateYear"])
	if mok && yok {
		if s, ok := monthyear.Format(month, year); ok {
			return s
		}
	}
	return ""
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// stringSlice extracts the string elements of a stored array. A value that
// is not an array at all yields an empty (never nil) slice.
func stringSlice(v any) []string {
	out := []string{}
	switch arr := v.(type) {
	case primitive.A:
		for _, el := range arr {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, arr...)
	case []any:
		for _, el := range arr {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// asTime accepts the shapes the driver may hand back for a stored
// server-assigned timestamp.
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC(), true
	case time.Time:
		return t.UTC(), true
	default:
		return time.Time{}, false
	}
}

// asInt accepts the numeric shapes BSON may decode into.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
