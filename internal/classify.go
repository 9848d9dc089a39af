package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Category is the content classification of a video transcript.
type Category int

const (
	CategoryMiscellaneous Category = iota
	CategoryRecipe
	CategoryTutorial
	CategoryLecture
)

// Categories lists every valid category.
var Categories = []Category{CategoryRecipe, CategoryTutorial, CategoryLecture, CategoryMiscellaneous}

// String returns the display label used in prompts and API responses.
func (c Category) String() string {
	switch c {
	case CategoryRecipe:
		return "Recipe / Cooking"
	case CategoryTutorial:
		return "Tutorial / How-to"
	case CategoryLecture:
		return "Lecture / Educational"
	default:
		return "Miscellaneous"
	}
}

// MarshalJSON encodes the category as its display label.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON decodes a display label back into a Category. Unknown
// labels collapse to Miscellaneous, matching the classifier's degrade path.
func (c *Category) UnmarshalJSON(data []byte) error {
	*c = ParseCategory(strings.Trim(string(data), `"`))
	return nil
}

// ParseCategory maps model output to a Category. The match is lenient about
// list numbering, quoting, and casing; anything unrecognized collapses to
// Miscellaneous.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, `<>"'.`)
	s = strings.TrimLeft(s, "1234. )")

	switch {
	case strings.Contains(s, "recipe"), strings.Contains(s, "cooking"):
		return CategoryRecipe
	case strings.Contains(s, "tutorial"), strings.Contains(s, "how-to"), strings.Contains(s, "how to"):
		return CategoryTutorial
	case strings.Contains(s, "lecture"), strings.Contains(s, "educational"):
		return CategoryLecture
	default:
		return CategoryMiscellaneous
	}
}

const classifyPrompt = `You are a YouTube video content classifier.
Analyze the given video transcript or description and classify it into ONE category only.
Classification categories:
1. Recipe / Cooking
2. Tutorial / How-to
3. Lecture / Educational
4. Miscellaneous
Classification rules:
- Choose "Recipe / Cooking" if the content includes cooking instructions, ingredients, meal preparation, baking, or food-related demonstrations.
- Choose "Tutorial / How-to" if the content provides step-by-step instructions for completing a task, learning a skill, or building something (DIY, software, crafts, fitness routines, etc.).
- Choose "Lecture / Educational" if the content is academic, educational explanation, study material, course content, or knowledge-based teaching.
- Choose "Miscellaneous" for all other content types (reviews, vlogs, entertainment, news, music, etc.).
Output format:
Return ONLY the category name in this exact format: <category name>
Input text:
%s`

const (
	classifyTemperature = 0.0
	classifyMaxTokens   = 30
)

// Classifier assigns a Category to transcript text with a single
// deterministic generative call.
type Classifier struct {
	completer ChatCompleter
	log       *logrus.Entry
}

// NewClassifier creates a classifier backed by the given completion client.
func NewClassifier(completer ChatCompleter, log *logrus.Entry) *Classifier {
	return &Classifier{completer: completer, log: log}
}

// Classify returns exactly one Category for the transcript. Call failures
// and unparsable output degrade to Miscellaneous; they never abort the
// pipeline.
func (c *Classifier) Classify(ctx context.Context, transcript string) Category {
	result, err := c.completer.Complete(ctx, ChatRequest{
		Prompt:      fmt.Sprintf(classifyPrompt, transcript),
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		c.log.WithError(err).Warn("classification failed, defaulting to Miscellaneous")
		return CategoryMiscellaneous
	}

	category := ParseCategory(result)
	c.log.WithFields(logrus.Fields{
		"raw":      strings.TrimSpace(result),
		"category": category.String(),
	}).Debug("transcript classified")
	return category
}
