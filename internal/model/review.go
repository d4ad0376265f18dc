package model

import "time"

// Review is a student-submitted review of either a class or a professor.
//
// The IsProfessor flag selects which variant of 1–10 sub-metrics applies:
// difficulty/workload/recommendability for classes, engagement/lecture
// quality/assignment quality for professors. The inactive variant's fields
// stay null. Reviews are created and queried by subject name; the public API
// never updates or deletes them.
type Review struct {
	ID          int       `json:"id"`
	IsProfessor bool      `json:"is_professor"`
	SubjectName string    `json:"subject_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`

	// Class-review metrics (1–10).
	Difficulty       *int `json:"difficulty,omitempty"`
	Workload         *int `json:"workload,omitempty"`
	Recommendability *int `json:"recommendability,omitempty"`

	// Professor-review metrics (1–10).
	Engagement        *int `json:"engagement,omitempty"`
	LectureQuality    *int `json:"lecture_quality,omitempty"`
	AssignmentQuality *int `json:"assignment_quality,omitempty"`
}

// CreateReviewRequest is the payload for submitting a review.
type CreateReviewRequest struct {
	IsProfessor bool     `json:"is_professor"`
	SubjectName string   `json:"subject_name" binding:"required,min=2,max=200"`
	Rating      int      `json:"rating" binding:"required,min=1,max=5"`
	Comment     string   `json:"comment" binding:"max=5000"`
	Tags        []string `json:"tags" binding:"max=10,dive,min=1,max=50"`

	Difficulty       *int `json:"difficulty" binding:"omitempty,min=1,max=10"`
	Workload         *int `json:"workload" binding:"omitempty,min=1,max=10"`
	Recommendability *int `json:"recommendability" binding:"omitempty,min=1,max=10"`

	Engagement        *int `json:"engagement" binding:"omitempty,min=1,max=10"`
	LectureQuality    *int `json:"lecture_quality" binding:"omitempty,min=1,max=10"`
	AssignmentQuality *int `json:"assignment_quality" binding:"omitempty,min=1,max=10"`
}
