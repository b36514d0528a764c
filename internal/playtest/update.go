package playtest

import (
	"math"
	"strings"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
)

// Submission carries the values a player sends for a ticket. Nil means
// "not supplied".
type Submission struct {
	FunScore        *float64
	ArtScore        *float64
	CreativityScore *float64
	AudioScore      *float64
	MoodScore       *float64
	Feedback        *string
	PlaytimeSeconds *float64
}

type candidate struct {
	field string
	value interface{}
}

func (s Submission) candidates() []candidate {
	var out []candidate
	add := func(field string, v *float64) {
		if v != nil {
			out = append(out, candidate{field, *v})
		}
	}
	add(models.FieldFunScore, s.FunScore)
	add(models.FieldArtScore, s.ArtScore)
	add(models.FieldCreativityScore, s.CreativityScore)
	add(models.FieldAudioScore, s.AudioScore)
	add(models.FieldMoodScore, s.MoodScore)
	if s.Feedback != nil && strings.TrimSpace(*s.Feedback) != "" {
		out = append(out, candidate{models.FieldFeedback, *s.Feedback})
	}
	add(models.FieldPlaytimeSeconds, s.PlaytimeSeconds)
	return out
}

// Validate rejects negative or non-finite numbers.
func (s Submission) Validate() error {
	for _, c := range s.candidates() {
		if f, ok := c.value.(float64); ok && (f < 0 || math.IsNaN(f) || math.IsInf(f, 0)) {
			return &InvalidFieldError{Field: c.field}
		}
	}
	return nil
}

// ComputeUpdate returns the fields to write to ticket: every supplied value
// whose field is currently empty, plus status forced to Complete. filled
// lists the data fields included, in a stable order.
func ComputeUpdate(ticket airtable.Record, sub Submission) (fields map[string]interface{}, filled []string) {
	fields = map[string]interface{}{
		models.FieldPlaytestStatus: models.PlaytestStatusComplete,
	}
	filled = []string{}
	for _, c := range sub.candidates() {
		if !ticket.IsEmpty(c.field) {
			continue
		}
		fields[c.field] = c.value
		filled = append(filled, c.field)
	}
	return fields, filled
}
