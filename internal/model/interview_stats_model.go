package model

// InterviewStats is derived by aggregation over a session's questions,
// never stored. Average/highest/lowest are nil until at least one
// question has been answered.
type InterviewStats struct {
	TotalQuestions    int      `json:"total_questions"`
	AnsweredQuestions int      `json:"answered_questions"`
	AverageScore      *float64 `json:"average_score"`
	HighestScore      *int     `json:"highest_score"`
	LowestScore       *int     `json:"lowest_score"`
}
