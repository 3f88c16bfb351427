package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"quiz-forge/internal/domain"
)

func TestExtract_EmptyInput(t *testing.T) {
	t.Run("EmptyString", func(t *testing.T) {
		sentences, keyTerms := Extract("")
		assert.Empty(t, sentences)
		assert.Empty(t, keyTerms)
	})

	t.Run("WhitespaceOnly", func(t *testing.T) {
		sentences, keyTerms := Extract("   \n\t  ")
		assert.Empty(t, sentences)
		assert.Empty(t, keyTerms)
	})
}

func TestExtract_ShortSentence(t *testing.T) {
	// "cats" is both too short to be a sentence and too short to be a term.
	sentences, keyTerms := Extract("Cats.")
	assert.Empty(t, sentences)
	assert.Empty(t, keyTerms)
}

func TestExtract_SentenceFilter(t *testing.T) {
	sentences, _ := Extract("Hi. Go on. This sentence is long enough to qualify.")
	assert.Len(t, sentences, 1)
	assert.Equal(t, "this sentence is long enough to qualify", sentences[0])
}

func TestExtract_SentenceOrderPreserved(t *testing.T) {
	sentences, _ := Extract("Photosynthesis converts light energy. Respiration releases stored energy.")
	assert.Equal(t, []string{
		"photosynthesis converts light energy",
		"respiration releases stored energy",
	}, sentences)
}

func TestExtract_Normalization(t *testing.T) {
	sentences, keyTerms := Extract("Plants CONVERT sunlight, (carbon-dioxide) & water!")
	// Punctuation other than the period is stripped, so the exclamation mark
	// does not end a sentence and the whole input is one fragment.
	assert.Len(t, sentences, 1)
	assert.Equal(t, "plants convert sunlight carbondioxide  water", sentences[0])
	assert.Contains(t, keyTerms, "plants")
	assert.Contains(t, keyTerms, "convert")
	assert.Contains(t, keyTerms, "carbondioxide")
}

func TestExtract_StopWordsAndLength(t *testing.T) {
	_, keyTerms := Extract("These plants would have been growing under the bright light.")
	for _, term := range keyTerms {
		assert.Greater(t, len(term), 4, "term %q is too short", term)
		assert.NotContains(t, []string{"these", "would", "have", "been", "the"}, term)
	}
	assert.Contains(t, keyTerms, "plants")
	assert.Contains(t, keyTerms, "growing")
	assert.Contains(t, keyTerms, "bright")
	assert.Contains(t, keyTerms, "light")
}

func TestExtract_Deduplication(t *testing.T) {
	_, keyTerms := Extract("Energy energy ENERGY matters. Energy really matters.")
	count := 0
	for _, term := range keyTerms {
		if term == "energy" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtract_KeyTermCap(t *testing.T) {
	text := "alpha1 bravo2 charlie3 delta4 echo55 foxtrot golf77 hotel8 india9 juliet kilo11 lima12 mike13"
	_, keyTerms := Extract(text)
	assert.Len(t, keyTerms, 10)
	// First-occurrence order makes the selection reproducible.
	assert.Equal(t, []string{
		"alpha1", "bravo2", "charlie3", "delta4", "echo55",
		"foxtrot", "golf77", "hotel8", "india9", "juliet",
	}, keyTerms)
}

func TestExtract_NeverFabricatesTerms(t *testing.T) {
	// Fewer than 10 distinct qualifying words means fewer than 10 terms.
	_, keyTerms := Extract("Plants absorb sunlight. Plants absorb water.")
	assert.ElementsMatch(t, []string{"plants", "absorb", "sunlight", "water"}, keyTerms)
}

func TestExtract_SampleText(t *testing.T) {
	sentences, keyTerms := Extract(domain.SampleText)

	assert.GreaterOrEqual(t, len(sentences), 5)
	assert.LessOrEqual(t, len(keyTerms), 10)

	assert.Contains(t, keyTerms, "photosynthesis")
	assert.Contains(t, keyTerms, "carbon")
	assert.Contains(t, keyTerms, "glucose")
	assert.Contains(t, keyTerms, "sunlight")

	for _, s := range sentences {
		assert.Greater(t, len(strings.TrimSpace(s)), 10)
		assert.Equal(t, strings.ToLower(s), s)
	}
}
