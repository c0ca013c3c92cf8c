package domain

import (
	"encoding/json"
	"strings"
)

// KeyMoment marks a point in the video where a concept is taught.
type KeyMoment struct {
	Timestamp   float64 `json:"timestamp"`
	Concept     string  `json:"concept"`
	Description string  `json:"description"`
}

// VideoAnalysis is the educational breakdown of a video produced by the
// Vision service. When the reply could not be decoded only RawResponse is set.
type VideoAnalysis struct {
	Subject            string      `json:"subject,omitempty"`
	Topic              string      `json:"topic,omitempty"`
	Difficulty         string      `json:"difficulty,omitempty"`
	KeyConcepts        []string    `json:"key_concepts,omitempty"`
	LearningObjectives []string    `json:"learning_objectives,omitempty"`
	KeyMoments         []KeyMoment `json:"key_moments,omitempty"`
	EducationalValue   string      `json:"educational_value,omitempty"`
	Prerequisites      []string    `json:"prerequisites,omitempty"`
	RawResponse        string      `json:"raw_response,omitempty"`
}

// IsEmpty reports whether the analysis carries no information at all.
func (a *VideoAnalysis) IsEmpty() bool {
	return a == nil || (a.Subject == "" && a.Topic == "" && len(a.KeyConcepts) == 0 && a.RawResponse == "")
}

// Structured reports whether the analysis was decoded from JSON.
func (a *VideoAnalysis) Structured() bool {
	return a != nil && a.Subject != ""
}

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionProblemSolving QuestionType = "problem_solving"
)

type Question struct {
	ID               int          `json:"question_id"`
	Text             string       `json:"question_text"`
	Type             QuestionType `json:"question_type"`
	Options          []string     `json:"options,omitempty"`
	CorrectAnswer    string       `json:"correct_answer"`
	Explanation      string       `json:"explanation"`
	DifficultyPoints int          `json:"difficulty_points"`
	ConceptTested    string       `json:"concept_tested"`
}

// Quiz is a structured quiz generated from a video analysis. When the reply
// could not be decoded only RawResponse is set.
type Quiz struct {
	Title          string     `json:"quiz_title,omitempty"`
	Description    string     `json:"quiz_description,omitempty"`
	TotalQuestions int        `json:"total_questions,omitempty"`
	EstimatedTime  string     `json:"estimated_time,omitempty"`
	Questions      []Question `json:"questions,omitempty"`
	RawResponse    string     `json:"raw_response,omitempty"`
}

// Structured reports whether the quiz was decoded from JSON.
func (q *Quiz) Structured() bool {
	return q != nil && q.RawResponse == ""
}

// ExtractJSONObject returns the outermost {...} block of text, dropping code
// fences, <think> blocks and prose around it. ok is false when no object is
// found.
func ExtractJSONObject(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
		}
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// ParseAnalysis decodes a chat reply into a VideoAnalysis. Replies that are not
// a JSON object with a subject are kept verbatim in RawResponse.
func ParseAnalysis(text string) *VideoAnalysis {
	if obj, ok := ExtractJSONObject(text); ok {
		var analysis VideoAnalysis
		if err := json.Unmarshal([]byte(obj), &analysis); err == nil && analysis.Subject != "" {
			analysis.RawResponse = ""
			return &analysis
		}
	}
	return &VideoAnalysis{RawResponse: text}
}

// ParseQuiz decodes a chat reply into a Quiz. Replies that are not a JSON
// object with a questions array are kept verbatim in RawResponse.
func ParseQuiz(text string) *Quiz {
	if obj, ok := ExtractJSONObject(text); ok {
		var quiz Quiz
		if err := json.Unmarshal([]byte(obj), &quiz); err == nil && quiz.Questions != nil {
			quiz.RawResponse = ""
			if quiz.TotalQuestions == 0 {
				quiz.TotalQuestions = len(quiz.Questions)
			}
			return &quiz
		}
	}
	return &Quiz{RawResponse: text}
}
