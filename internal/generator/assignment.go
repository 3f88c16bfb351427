package generator

import (
	"fmt"
	"math/rand"
)

const assignmentCount = 2

// Assignments produces the essay prompts for one generation run. It always
// returns exactly two labeled prompts; when keyTerms is empty the base
// prompts go out unmodified.
func Assignments(rng *rand.Rand, keyTerms []string) []string {
	assignments := make([]string, 0, assignmentCount)

	// Sample without replacement from the prompt catalog.
	order := rng.Perm(len(essayPrompts))
	for i := 0; i < assignmentCount; i++ {
		prompt := essayPrompts[order[i]]
		if len(keyTerms) > 0 {
			term := titleCase(keyTerms[rng.Intn(len(keyTerms))])
			prompt = fmt.Sprintf("%s Focus particularly on the concept of '%s' mentioned in the material.", prompt, term)
		}
		assignments = append(assignments, fmt.Sprintf("Assignment %d: %s", i+1, prompt))
	}

	return assignments
}
