package entity

// Rating is the five-bucket review scale. Values outside the scale are a
// data error and are rejected at creation, never clamped.
type Rating int

const (
	RatingDespair Rating = 1
	RatingSad     Rating = 2
	RatingOkay    Rating = 3
	RatingHappy   Rating = 4
	RatingDelight Rating = 5
)

func (r Rating) Valid() bool {
	return r >= RatingDespair && r <= RatingDelight
}

// Reaction is the categorical presentation of a rating bucket.
type Reaction struct {
	Label string `json:"reaction"`
	Glyph string `json:"unicode"`
}

// reactionTable is a static lookup covering every rating bucket.
var reactionTable = map[Rating]Reaction{
	RatingDespair: {Label: "Despair", Glyph: "\U0001F620"},
	RatingSad:     {Label: "Sad", Glyph: "\U0001F641"},
	RatingOkay:    {Label: "Okay", Glyph: "\U0001F642"},
	RatingHappy:   {Label: "Happy", Glyph: "\U0001F603"},
	RatingDelight: {Label: "Delight", Glyph: "\U0001F60D"},
}

// ReactionForRating maps a rating to its reaction. ok is false for values
// outside the five-bucket scale.
func ReactionForRating(r Rating) (Reaction, bool) {
	reaction, ok := reactionTable[r]
	return reaction, ok
}

// Trust-o-meter display levels, ascending. A raw trust score is bucketed to
// the highest level it reaches; unknown or negative scores read as the
// lowest bucket rather than an error.
var trustMeterLevels = []int{0, 50, 80, 100}

func TrustMeterLevel(score int) int {
	level := trustMeterLevels[0]
	for _, l := range trustMeterLevels {
		if score >= l {
			level = l
		}
	}
	return level
}
