package domain

// QuizQuestion is a single multiple-choice question. Options always has
// exactly four entries and Options[CorrectIndex] is the correct one.
type QuizQuestion struct {
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// Validate checks the structural invariants of a quiz question.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) != 4 {
		return NewInvalidInputError("a quiz question must have exactly 4 options")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewInvalidInputError("correct index is out of range")
	}
	return nil
}

// GeneratedContent is the output of one generation run. ID tags the run for
// logging and caching; the content itself is never persisted.
type GeneratedContent struct {
	ID          string
	Assignments []string
	Quiz        []QuizQuestion
}

// SampleText is the fixed demonstration paragraph the presentation layer
// offers when the user has no document of their own.
const SampleText = `Photosynthesis is the process by which plants convert sunlight, carbon dioxide, and water into glucose and oxygen. This process occurs in the chloroplasts of plant cells and involves two main stages: the light reactions and the Calvin cycle. During light reactions, chlorophyll absorbs sunlight and converts it into chemical energy in the form of ATP and NADPH. The Calvin cycle uses this energy to convert carbon dioxide into glucose. Photosynthesis is essential for life on Earth as it produces oxygen and serves as the foundation of most food chains. Factors affecting photosynthesis include light intensity, carbon dioxide concentration, and temperature. Understanding photosynthesis is crucial for agriculture and environmental science.`
