package core

// Result is a scored retrieval hit. Results are derived per query and never
// stored; for normalized vectors the score is a cosine similarity in [-1, 1],
// with 0 defined for zero vectors.
type Result struct {
	Text   string  `json:"text"`
	Source string  `json:"source"`
	Score  float64 `json:"score"`
}
