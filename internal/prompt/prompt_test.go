package prompt

import (
	"strings"
	"testing"

	"github.com/BerylCAtieno/career-feedback-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCompose_SelectsTemplateByVariant(t *testing.T) {
	review := Compose(&models.DocumentReview{}, "Experienced backend engineer")
	assert.Contains(t, review, "software engineering roles")
	assert.Contains(t, review, "\"\"\"\nExperienced backend engineer\n\"\"\"")

	guidance := Compose(&models.GuidanceQuery{Query: "How do I become a data engineer?"}, "ignored")
	assert.Contains(t, guidance, `"How do I become a data engineer?"`)
	assert.Contains(t, guidance, "Month-by-Month Learning Roadmap (6 months)")
	assert.Contains(t, guidance, "Recommended Career Paths")
	assert.Contains(t, guidance, "Required Skills")
	assert.Contains(t, guidance, "Useful Online Resources")
	assert.NotContains(t, guidance, "ignored")

	interview := Compose(&models.InterviewFeedback{Question: "Tell me about yourself", Answer: "I build APIs"}, "")
	assert.Contains(t, interview, `Question: "Tell me about yourself"`)
	assert.Contains(t, interview, `Answer: "I build APIs"`)
	assert.Contains(t, interview, "experienced interviewer")
}

func TestCompose_Deterministic(t *testing.T) {
	reqs := []struct {
		req  models.ReviewRequest
		text string
	}{
		{&models.DocumentReview{}, "Jane Doe\nGo, Postgres"},
		{&models.GuidanceQuery{Query: "Should I learn Rust?"}, ""},
		{&models.InterviewFeedback{Question: "Q", Answer: "A"}, ""},
	}

	for _, r := range reqs {
		first := Compose(r.req, r.text)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Compose(r.req, r.text))
		}
	}
}

func TestCompose_NoFormatVerbLeakage(t *testing.T) {
	// User text containing format verbs is inserted literally.
	out := CareerGuidance("100% sure? %s %d")
	assert.Contains(t, out, `"100% sure? %s %d"`)
	assert.False(t, strings.Contains(out, "%!"))
}
