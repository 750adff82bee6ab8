package entity

// Match is the outcome of checking a selection against the remaining words.
type Match struct {
	Found bool   `json:"found"`
	Word  string `json:"word,omitempty"`
	Path  Path   `json:"path,omitempty"`
}

type GenerateRequest struct {
	Words []string `json:"words"`
	Size  *int     `json:"size"`
	Seed  *int64   `json:"seed"`
}

type GenerateResponse struct {
	Grid    *Grid    `json:"grid"`
	Seed    int64    `json:"seed"`
	Omitted []string `json:"omitted,omitempty"`
}

type ValidateRequest struct {
	Grid           *Grid      `json:"grid"`
	WordsRemaining []string   `json:"wordsRemaining"`
	Selection      *Selection `json:"selection"`
}

type SolveRequest struct {
	Grid           *Grid    `json:"grid"`
	WordsRemaining []string `json:"wordsRemaining"`
}

type SolveResponse struct {
	Solutions []Solution `json:"solutions"`
}
