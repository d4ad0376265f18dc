package model

// ProfessorStats is an upstream GPA aggregate for one instructor of a class.
type ProfessorStats struct {
	Name         string  `json:"name"`
	AverageGPA   float64 `json:"avg_gpa"`
	StudentCount int     `json:"student_count"`
}

// RMPRating is an upstream RateMyProfessors-style rating aggregate.
type RMPRating struct {
	Name           string  `json:"name"`
	OverallRating  float64 `json:"overall_rating"`
	Difficulty     float64 `json:"difficulty"`
	RatingCount    int     `json:"rating_count"`
	WouldTakeAgain float64 `json:"would_take_again"`
}
