package internal

import (
	"bytes"
	"context"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
)

// SummaryTemplate is the fixed structural specification a category's summary
// must follow: headings, their order, and which sections to omit when the
// source material says nothing about them.
type SummaryTemplate struct {
	Name     string
	Sections string
}

// summaryTemplates binds each category to its template. The closed map keeps
// the four-template invariant checkable: dispatch never branches on free-form
// strings.
var summaryTemplates = map[Category]SummaryTemplate{
	CategoryRecipe: {
		Name: "Recipe Summary",
		Sections: `🍳 **Recipe Summary**

**📋 Ingredients:**
- [Ingredient 1] - [amount/quantity]
- [Ingredient 2] - [amount/quantity]

**🔪 Required Tools/Equipment:**
- [Tool 1]
- [Tool 2]

**👨‍🍳 Cooking Steps:**
1. [First step with clear instructions]
2. [Second step with clear instructions]

⏱️ **Total Time:** [Prep time + Cook time]
🔥 **Difficulty Level:** [Easy/Medium/Hard]
💡 **Pro Tips:** [Any helpful tips mentioned]`,
	},
	CategoryTutorial: {
		Name: "Tutorial Summary",
		Sections: `🎯 **Tutorial Summary**

**🛠️ What You'll Need:**
- [Tool/Material 1]
- [Tool/Material 2]

**📝 Prerequisites:**
- [Required knowledge/skills]

**✅ Step-by-Step Instructions:**
1. **[Step title]**: [Clear detailed instruction]
2. **[Step title]**: [Clear detailed instruction]

⏱️ **Estimated Time:** [Time to complete]
🎯 **Difficulty Level:** [Beginner/Intermediate/Advanced]
⚠️ **Common Mistakes to Avoid:** [If mentioned]
💡 **Pro Tips:** [Helpful shortcuts or tricks]`,
	},
	CategoryLecture: {
		Name: "Lecture Notes Summary",
		Sections: `📚 **Lecture Notes Summary**

**📝 Main Topic:** [Topic title]

**🔑 Key Concepts:**
• **[Concept 1]**: [Brief explanation]
• **[Concept 2]**: [Brief explanation]

**📖 Detailed Breakdown:**
**Section 1: [Topic name]**
- [Important point 1]
- [Important point 2]
**Section 2: [Topic name]**
- [Important point 1]
- [Important point 2]

**💡 Key Takeaways:**
✓ [Main learning point 1]
✓ [Main learning point 2]

**❓ Study Questions:**
1. [Question to test understanding]
2. [Question to test understanding]

**📌 Important Terms/Definitions:**
- **[Term 1]**: [Definition]
- **[Term 2]**: [Definition]`,
	},
	CategoryMiscellaneous: {
		Name: "Video Summary",
		Sections: `📺 **Video Summary**

**🎯 Main Topic:** [What the video is about]

**📝 Key Points:**
• [Point 1]
• [Point 2]
• [Point 3]

**⏱️ Video Length:** [Duration if known]

**💡 Quick Takeaway:** [One-sentence summary of main message]`,
	},
}

// formatPromptTemplate builds the formatting prompt. Only the template for
// the resolved category is sent, so the model cannot borrow another
// category's structure.
var formatPromptTemplate = template.Must(template.New("format").Parse(`You are an expert content summarizer and formatter.
Based on the content category provided, create a beautifully formatted summary with emojis and clear structure.
**Category received:** {{.Category}}
**Input content:** {{.Transcript}}
---
## FORMATTING INSTRUCTIONS:
Format the output as follows:
{{.Sections}}
---
**IMPORTANT FORMATTING RULES:**
- Use emojis consistently
- Use bold text (**text**) for emphasis and headers
- Use numbered lists for sequential steps
- Use bullet points (•, ✓) for non-sequential information
- Extract ONLY information present in the content - do not add assumptions
- If information is missing (like time, difficulty), omit that section

Now generate the formatted summary:`))

type formatPromptData struct {
	Category   string
	Transcript string
	Sections   string
}

const (
	formatTemperature = 0.5
	formatMaxTokens   = 2048
)

// Formatter failure sentinels. Formatting problems flow into the success
// response as degraded values, they never fail the request.
const (
	summaryGenerationFailed = "Error: Could not generate a formatted summary."
	summaryEmptyResult      = "Could not generate summary."
)

// Formatter produces the category-structured summary with a second
// generative call.
type Formatter struct {
	completer ChatCompleter
	log       *logrus.Entry
}

// NewFormatter creates a formatter backed by the given completion client.
func NewFormatter(completer ChatCompleter, log *logrus.Entry) *Formatter {
	return &Formatter{completer: completer, log: log}
}

// Format returns the markdown summary for the transcript using the template
// bound to category. On any failure it returns a sentinel string instead of
// an error.
func (f *Formatter) Format(ctx context.Context, category Category, transcript string) string {
	prompt, err := BuildFormatPrompt(category, transcript)
	if err != nil {
		f.log.WithError(err).Error("building format prompt failed")
		return summaryGenerationFailed
	}

	result, err := f.completer.Complete(ctx, ChatRequest{
		Prompt:      prompt,
		Temperature: formatTemperature,
		MaxTokens:   formatMaxTokens,
	})
	if err != nil {
		f.log.WithError(err).WithField("category", category.String()).Warn("summary formatting failed")
		return summaryGenerationFailed
	}
	if strings.TrimSpace(result) == "" {
		return summaryEmptyResult
	}

	return result
}

// BuildFormatPrompt renders the formatting prompt for a category and
// transcript.
func BuildFormatPrompt(category Category, transcript string) (string, error) {
	tmpl, ok := summaryTemplates[category]
	if !ok {
		tmpl = summaryTemplates[CategoryMiscellaneous]
	}

	var buf bytes.Buffer
	err := formatPromptTemplate.Execute(&buf, formatPromptData{
		Category:   category.String(),
		Transcript: transcript,
		Sections:   tmpl.Sections,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
