// Package prompt holds the instructions sent to the Vision chat endpoint.
package prompt

import (
	"fmt"
	"strings"

	"video-quiz/internal/domain"

	"github.com/tmc/langchaingo/prompts"
)

// DefaultQuizPrompt is used when a quiz is requested without a custom prompt.
const DefaultQuizPrompt = `Watch this video and write a short quiz about it.
Write 5 questions that test understanding of what is shown and said in the video.
Mix multiple choice questions (with 4 options each) and short answer questions.
After the questions, add an "Answers" section with the correct answer and a one sentence explanation for each question.
Reply in markdown format.`

const analysisTemplate = `Analyze this educational video and provide a comprehensive educational analysis.

Identify:
1. Subject Area: the main academic subject (e.g. Mathematics, Science, History, Language Arts)
2. Topic: the specific topic being taught
3. Difficulty Level: beginner, intermediate or advanced
4. Key Concepts: 3-5 main concepts or strategies being taught
5. Learning Objectives: what students should learn from this video
6. Key Moments: important timestamps (in seconds) and the concept taught at each
7. Educational Value: what makes this video educationally valuable
8. Prerequisites: prior knowledge students might need

Return ONLY a valid JSON object with these exact field names:
{
    "subject": "string",
    "topic": "string",
    "difficulty": "string",
    "key_concepts": ["concept1", "concept2", "concept3"],
    "learning_objectives": ["objective1", "objective2"],
    "key_moments": [
        {"timestamp": 120, "concept": "factoring", "description": "Shows how to factor quadratic equations"}
    ],
    "educational_value": "string",
    "prerequisites": ["prerequisite1", "prerequisite2"]
}

Focus on educational content that could be used to create meaningful quiz questions.`

const quizTemplate = `Based on this {{.subject}} video about {{.topic}}, create a comprehensive educational quiz.

Video Analysis Summary:
- Subject: {{.subject}}
- Topic: {{.topic}}
- Difficulty: {{.difficulty}}
- Key Concepts: {{.key_concepts}}
- Learning Objectives: {{.learning_objectives}}
{{- if .raw_analysis}}

Analysis notes:
{{.raw_analysis}}
{{- end}}

Create a quiz with the following structure:
1. Multiple Choice Questions ({{.multiple_choice}} questions): test understanding of key concepts
2. Short Answer Questions ({{.short_answer}} questions): test deeper comprehension
3. Problem-Solving Questions ({{.problem_solving}} question): test application of concepts

For each question provide:
- question_text: the question itself
- question_type: "multiple_choice", "short_answer" or "problem_solving"
- options: array of choices (multiple choice only)
- correct_answer: the correct answer
- explanation: why this answer is correct
- difficulty_points: 1-5 scale
- concept_tested: which key concept this tests

Return ONLY a valid JSON object with this exact structure:
{
    "quiz_title": "Quiz based on [topic]",
    "quiz_description": "Test your understanding of [topic] concepts",
    "total_questions": {{.total}},
    "estimated_time": "10-15 minutes",
    "questions": [
        {
            "question_id": 1,
            "question_text": "What is the main concept discussed?",
            "question_type": "multiple_choice",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": "Option B",
            "explanation": "This is correct because...",
            "difficulty_points": 3,
            "concept_tested": "main_concept"
        }
    ]
}

Make sure questions are directly related to the video content, match the difficulty level,
test understanding rather than memorization, and include clear explanations.`

// QuizShape is the number of questions of each type requested from the model.
type QuizShape struct {
	MultipleChoice int
	ShortAnswer    int
	ProblemSolving int
}

var DefaultQuizShape = QuizShape{MultipleChoice: 3, ShortAnswer: 2, ProblemSolving: 1}

func (s QuizShape) Total() int {
	return s.MultipleChoice + s.ShortAnswer + s.ProblemSolving
}

var (
	analysisPrompt = prompts.NewPromptTemplate(analysisTemplate, nil)
	quizPrompt     = prompts.NewPromptTemplate(quizTemplate, []string{
		"subject", "topic", "difficulty", "key_concepts", "learning_objectives", "raw_analysis",
		"multiple_choice", "short_answer", "problem_solving", "total",
	})
)

// Analysis returns the prompt asking for a structured analysis of a video.
func Analysis() (string, error) {
	text, err := analysisPrompt.Format(map[string]any{})
	if err != nil {
		return "", fmt.Errorf("analysisPrompt.Format > %w", err)
	}
	return text, nil
}

// Quiz returns the prompt asking for a structured quiz built from analysis.
func Quiz(analysis *domain.VideoAnalysis, shape QuizShape) (string, error) {
	if analysis == nil {
		analysis = &domain.VideoAnalysis{}
	}

	values := map[string]any{
		"subject":             orDefault(analysis.Subject, "educational"),
		"topic":               orDefault(analysis.Topic, "the topic"),
		"difficulty":          orDefault(analysis.Difficulty, "Not specified"),
		"key_concepts":        orDefault(strings.Join(analysis.KeyConcepts, ", "), "Not specified"),
		"learning_objectives": orDefault(strings.Join(analysis.LearningObjectives, ", "), "Not specified"),
		"raw_analysis":        analysis.RawResponse,
		"multiple_choice":     shape.MultipleChoice,
		"short_answer":        shape.ShortAnswer,
		"problem_solving":     shape.ProblemSolving,
		"total":               shape.Total(),
	}

	text, err := quizPrompt.Format(values)
	if err != nil {
		return "", fmt.Errorf("quizPrompt.Format > %w", err)
	}
	return text, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
