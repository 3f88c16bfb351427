package generator

import (
	"fmt"
	"math/rand"

	"quiz-forge/internal/domain"
)

const (
	questionCount = 3
	// snippetLen bounds how much of the source sentence appears in the
	// correct option.
	snippetLen = 50
)

// QuizQuestions produces the multiple-choice questions for one generation
// run. With no usable sentences or no key terms it short-circuits to a
// single generic question; otherwise it emits exactly three.
func QuizQuestions(rng *rand.Rand, sentences, keyTerms []string) []domain.QuizQuestion {
	if len(sentences) == 0 || len(keyTerms) == 0 {
		return []domain.QuizQuestion{genericQuestion()}
	}

	questions := make([]domain.QuizQuestion, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		if i < len(sentences) {
			questions = append(questions, termQuestion(rng, sentences[i], keyTerms))
		} else {
			questions = append(questions, inferenceQuestion(i))
		}
	}
	return questions
}

// termQuestion builds a question around one sentence and a randomly chosen
// key term, shuffling the correct option in among the fixed distractors.
func termQuestion(rng *rand.Rand, sentence string, keyTerms []string) domain.QuizQuestion {
	term := titleCase(keyTerms[rng.Intn(len(keyTerms))])
	starter := questionStarters[rng.Intn(len(questionStarters))]

	correct := fmt.Sprintf("%s is related to %s...", term, snippet(sentence))

	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, option := range options {
		if option == correct {
			correctIndex = i
			break
		}
	}

	return domain.QuizQuestion{
		Question:     fmt.Sprintf("%s %s mentioned in the text?", starter, term),
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  "The correct answer relates to the context provided in the text.",
	}
}

// genericQuestion is the full fallback when the input gave the extractor
// nothing to work with.
func genericQuestion() domain.QuizQuestion {
	return domain.QuizQuestion{
		Question:     "Based on the provided text, what is the main topic discussed?",
		Options:      []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectIndex: 0,
		Explanation:  "This is a general comprehension question.",
	}
}

// inferenceQuestion fills slot i when the text had fewer than three
// qualifying sentences.
func inferenceQuestion(i int) domain.QuizQuestion {
	return domain.QuizQuestion{
		Question: fmt.Sprintf("Question %d: What can be inferred from the given text?", i+1),
		Options: []string{
			"The text provides comprehensive information",
			"The text is completely unrelated to the topic",
			"The text contains no useful information",
			"The text is written in a foreign language",
		},
		CorrectIndex: 0,
		Explanation:  "This question tests reading comprehension.",
	}
}

// snippet returns the first snippetLen runes of the sentence.
func snippet(sentence string) string {
	runes := []rune(sentence)
	if len(runes) > snippetLen {
		runes = runes[:snippetLen]
	}
	return string(runes)
}
