package fortune

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Field names of the structured response.
const (
	FieldRating         = "rating"
	FieldTitle          = "title"
	FieldFortune        = "fortune"
	FieldBaristaComment = "baristaComment"
)

// RequiredFields lists the response fields in the order the model should emit them.
var RequiredFields = []string{FieldRating, FieldTitle, FieldFortune, FieldBaristaComment}

var (
	// ErrNoContent is returned when the model answers with an empty body.
	ErrNoContent = errors.New("fortune: empty response")

	// ErrInvalidFortune is returned when the response does not match the schema.
	ErrInvalidFortune = errors.New("fortune: response does not match schema")
)

// wireFortune mirrors the response object. Pointers distinguish missing
// fields from zero values.
type wireFortune struct {
	Rating         *float64 `json:"rating"`
	Title          *string  `json:"title"`
	Fortune        *string  `json:"fortune"`
	BaristaComment *string  `json:"baristaComment"`
}

// Parse validates a JSON response and converts it into a CoffeeFortune.
// The object must contain exactly the four fields; rating must be a finite
// number in [0, 10] and is rounded to the nearest integer; the strings must
// be non-blank.
func Parse(text string) (CoffeeFortune, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return CoffeeFortune{}, ErrNoContent
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	var w wireFortune
	if err := dec.Decode(&w); err != nil {
		return CoffeeFortune{}, fmt.Errorf("%w: %v", ErrInvalidFortune, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return CoffeeFortune{}, fmt.Errorf("%w: trailing data after object", ErrInvalidFortune)
	}

	switch {
	case w.Rating == nil:
		return CoffeeFortune{}, missing(FieldRating)
	case w.Title == nil:
		return CoffeeFortune{}, missing(FieldTitle)
	case w.Fortune == nil:
		return CoffeeFortune{}, missing(FieldFortune)
	case w.BaristaComment == nil:
		return CoffeeFortune{}, missing(FieldBaristaComment)
	}

	rating := *w.Rating
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating < 0 || rating > 10 {
		return CoffeeFortune{}, fmt.Errorf("%w: rating %v out of range [0, 10]", ErrInvalidFortune, rating)
	}

	for name, v := range map[string]string{
		FieldTitle:          *w.Title,
		FieldFortune:        *w.Fortune,
		FieldBaristaComment: *w.BaristaComment,
	} {
		if strings.TrimSpace(v) == "" {
			return CoffeeFortune{}, fmt.Errorf("%w: %s is blank", ErrInvalidFortune, name)
		}
	}

	return CoffeeFortune{
		Rating:         int(math.Round(rating)),
		Title:          strings.TrimSpace(*w.Title),
		Fortune:        strings.TrimSpace(*w.Fortune),
		BaristaComment: strings.TrimSpace(*w.BaristaComment),
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrInvalidFortune, field)
}
