package dto

// GenerateRequest represents the generation request body
// @Description Request body for generating assignments and quiz questions
type GenerateRequest struct {
	// Text is the raw document or topic description to generate from.
	Text string `json:"text"`
	// Seed, when present, makes the run deterministic and cacheable.
	Seed *int64 `json:"seed,omitempty"`
}

// QuizQuestionResponse represents one multiple-choice question in the API response
type QuizQuestionResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation"`
}

// GenerateResponse represents the generated content in the API response
// @Description Generated assignments and quiz questions
type GenerateResponse struct {
	ID            string                 `json:"id"`
	Assignments   []string               `json:"assignments"`
	QuizQuestions []QuizQuestionResponse `json:"quiz_questions"`
}

// SampleResponse carries the fixed sample text
type SampleResponse struct {
	Text string `json:"text"`
}

// HealthResponse reports service and cache health
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
