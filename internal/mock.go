package internal

import (
	"fmt"
	"strings"
)

// FallbackPrompt replaces an empty prompt before it is substituted into a template
const FallbackPrompt = "an interesting scenario"

// mockScenario pairs a keyword group with the artifacts served when one of the keywords matches
type mockScenario struct {
	keywords  []string
	artifacts map[Kind]string
}

// mockCatalog is evaluated in order; the first scenario with a matching keyword wins.
// Both kinds share the same groups.
var mockCatalog = []mockScenario{
	{
		keywords:  []string{"iron man", "avengers"},
		artifacts: map[Kind]string{KindStory: ironManStory, KindComic: ironManComic},
	},
	{
		keywords:  []string{"harry potter", "slytherin"},
		artifacts: map[Kind]string{KindStory: harryPotterStory, KindComic: harryPotterComic},
	},
	{
		keywords:  []string{"luke skywalker", "dark side"},
		artifacts: map[Kind]string{KindStory: lukeSkywalkerStory, KindComic: lukeSkywalkerComic},
	},
}

var genericTemplates = map[Kind]string{
	KindStory: genericStory,
	KindComic: genericComic,
}

// Mock returns the hand-written artifact for a prompt. The result only depends on
// (prompt, kind). Unknown kinds are served as stories.
func Mock(prompt string, kind Kind) string {
	if strings.TrimSpace(prompt) == "" {
		prompt = FallbackPrompt
	}
	if _, ok := genericTemplates[kind]; !ok {
		kind = KindStory
	}

	lowerPrompt := strings.ToLower(prompt)
	for _, scenario := range mockCatalog {
		for _, keyword := range scenario.keywords {
			if strings.Contains(lowerPrompt, keyword) {
				return scenario.artifacts[kind]
			}
		}
	}

	return fmt.Sprintf(genericTemplates[kind], prompt)
}
