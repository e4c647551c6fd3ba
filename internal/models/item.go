package models

// Item is a single piece of learnable content, e.g. the letter "A" or the
// color "red". Items are created at seed time and never updated through the
// API.
type Item struct {
	ID       string `bson:"_id,omitempty" json:"id,omitempty"`
	Category string `bson:"category" json:"category"`
	Key      string `bson:"key" json:"key"`
	Label    string `bson:"label" json:"label"`
	Phonics  string `bson:"phonics,omitempty" json:"phonics,omitempty"`
	Display  string `bson:"display,omitempty" json:"display,omitempty"`
}

// DefaultCategories is returned when the item collection is empty or no
// store is connected.
var DefaultCategories = []string{
	"alphabets", "numbers", "colors", "shapes", "animals",
	"fruits", "vegetables", "birds", "days", "months",
	"family", "body", "seasons", "weather", "habits", "opposites",
}
