package generator

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// essayPrompts is the fixed catalog assignment prompts are sampled from.
var essayPrompts = []string{
	"Analyze the main concepts discussed in the text and explain their significance.",
	"Compare and contrast the key ideas presented and provide your own perspective.",
	"Discuss the implications of the information provided and its real-world applications.",
	"Evaluate the arguments presented and provide supporting evidence for your viewpoint.",
	"Examine the relationship between the different concepts mentioned in the text.",
	"Critically assess the topic and propose potential solutions or improvements.",
	"Explore the historical context and evolution of the subject matter.",
	"Investigate the causes and effects of the phenomena described in the text.",
}

// questionStarters open a synthesized quiz question.
var questionStarters = []string{
	"What is", "How does", "Why is", "When did", "Where does",
	"Which", "Who was", "What are the main", "How can", "What would happen if",
}

// distractors are the fixed wrong options attached to every term question.
var distractors = []string{
	"It refers to a completely different concept",
	"It is not mentioned in the provided text",
	"It only appears in the conclusion",
}

// titleCase renders a key term the way it appears inside questions and
// correct options. A fresh caser per call keeps this safe for the
// concurrent synthesizers.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
