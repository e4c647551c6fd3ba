package models

// QuizOption is one selectable choice. It deliberately carries no item id
// and no correctness flag so a client can render options without the answer
// leaking.
type QuizOption struct {
	Label   string `json:"label"`
	Display string `json:"display"`
	Key     string `json:"key"`
}

// QuizAnswer carries only the correct item's key, kept separate from the
// option list.
type QuizAnswer struct {
	Key string `json:"key"`
}

type Quiz struct {
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
	Answer   QuizAnswer   `json:"answer"`
}
