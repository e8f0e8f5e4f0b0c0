package domain

import "fmt"

// Rating user-facing scale bounds. Values move in half steps; the remote
// service speaks a doubled 1-10 scale (see ToServiceScale).
const (
	RatingMin  = 1.0
	RatingMax  = 5.0
	RatingStep = 0.5
)

// Rating is a user's personal rating for one movie, on the 1-5 half-step
// scale. The zero value is not a valid rating; absence is expressed with
// a nil *Rating.
type Rating struct {
	Value float64
}

// NewRating validates v against the user-facing scale
func NewRating(v float64) (Rating, error) {
	if v < RatingMin || v > RatingMax {
		return Rating{}, fmt.Errorf("rating %.1f out of range [%.0f, %.0f]", v, RatingMin, RatingMax)
	}
	if steps := v / RatingStep; steps != float64(int(steps)) {
		return Rating{}, fmt.Errorf("rating %.2f is not a half-step value", v)
	}
	return Rating{Value: v}, nil
}

// ToServiceScale converts to the remote service's doubled 1-10 scale
func (r Rating) ToServiceScale() float64 {
	return r.Value * 2
}

// RatingFromServiceScale converts a remote 1-10 value back to the
// user-facing scale
func RatingFromServiceScale(v float64) Rating {
	return Rating{Value: v / 2}
}

// Stars renders the rating as filled/half/empty star glyphs
func (r Rating) Stars() string {
	var s []rune
	full := int(r.Value)
	for i := 0; i < full; i++ {
		s = append(s, '★')
	}
	if r.Value-float64(full) >= RatingStep {
		s = append(s, '⯨')
	}
	for len(s) < int(RatingMax) {
		s = append(s, '☆')
	}
	return string(s)
}

func (r Rating) String() string {
	if r.Value == float64(int(r.Value)) {
		return fmt.Sprintf("%.0f", r.Value)
	}
	return fmt.Sprintf("%.1f", r.Value)
}

// RatedMovie pairs a movie summary with the user's committed rating, as
// returned by the rated-movies listing
type RatedMovie struct {
	Movie
	Rating Rating
}
