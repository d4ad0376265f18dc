package model

import "time"

// CourseWiki is the crowdsourced wiki page for one class, keyed by class name.
// Every content field is independently optional.
type CourseWiki struct {
	ID             int       `json:"id"`
	ClassName      string    `json:"class_name"`
	TopicsCovered  []string  `json:"topics_covered"`
	Prerequisites  []string  `json:"prerequisites"`
	Instructors    []string  `json:"instructors"`
	Tips           string    `json:"tips"`
	WhenToTake     string    `json:"when_to_take"`
	StudyResources string    `json:"study_resources"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpsertWikiRequest is the payload for creating or amending a course wiki.
//
// List fields arrive as comma-separated strings, the way contributors type
// them into a form. Empty fields mean "leave the stored value alone";
// non-empty fields replace it wholesale.
type UpsertWikiRequest struct {
	TopicsCovered  string `json:"topics_covered" binding:"max=5000"`
	Prerequisites  string `json:"prerequisites" binding:"max=5000"`
	Instructors    string `json:"instructors" binding:"max=5000"`
	Tips           string `json:"tips" binding:"max=10000"`
	WhenToTake     string `json:"when_to_take" binding:"max=1000"`
	StudyResources string `json:"study_resources" binding:"max=10000"`
}
