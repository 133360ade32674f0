package dto

import "time"

type CreateInterviewRequest struct {
	IntervieweeName string    `json:"interviewee_name"`
	Role            string    `json:"role"`
	Technologies    []string  `json:"technologies"`
	InterviewTime   time.Time `json:"interview_time"`
}

type UpdateInterviewRequest struct {
	IntervieweeName *string    `json:"interviewee_name"`
	Role            *string    `json:"role"`
	Technologies    *[]string  `json:"technologies"`
	InterviewTime   *time.Time `json:"interview_time"`
	Status          *string    `json:"status"`
}
