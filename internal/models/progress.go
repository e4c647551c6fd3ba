package models

// Progress is the cumulative learning record for one (device_id, category)
// pair. Counters only ever grow; badges are a set that only ever gains
// members.
type Progress struct {
	ID       string   `bson:"_id,omitempty" json:"id,omitempty"`
	DeviceID string   `bson:"device_id" json:"device_id"`
	Category string   `bson:"category" json:"category"`
	Points   int      `bson:"points" json:"points"`
	Correct  int      `bson:"correct" json:"correct"`
	Attempts int      `bson:"attempts" json:"attempts"`
	Badges   []string `bson:"badges" json:"badges"`
}

// ProgressDelta is one incremental progress update. The counter fields are
// added to the stored totals, never assigned.
type ProgressDelta struct {
	DeviceID string `json:"device_id" binding:"required"`
	Category string `json:"category" binding:"required"`
	Correct  int    `json:"correct" binding:"omitempty,gte=0"`
	Attempts int    `json:"attempts" binding:"omitempty,gte=0"`
	Points   int    `json:"points" binding:"omitempty,gte=0"`
	Badge    string `json:"badge"`
}
