package model

// CourseRecord is one course+section row from the upstream catalog API.
//
// Upstream serves each record as a fixed-position JSON array of ~25
// heterogeneous fields. The positions are decoded once, at the API client
// boundary, into this named struct; nothing past that boundary indexes into
// raw arrays. Malformed upstream rows may carry fewer fields than expected,
// in which case the missing trailing fields stay zero-valued.
type CourseRecord struct {
	Year        string `json:"year"`
	Term        string `json:"term"`
	Subject     string `json:"subject"`
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreditHours string `json:"credit_hours"`

	// SectionCode and CRN together uniquely identify a section within a
	// course. SectionCode alone is not unique (cross-listed sections reuse
	// codes); CRN is the enrollment identifier.
	SectionCode string `json:"section_code"`
	Status      string `json:"status"`
	PartOfTerm  string `json:"part_of_term"`
	SectionInfo string `json:"section_info"`
	Notes       string `json:"notes"`
	CRN         string `json:"crn"`

	MeetingType string `json:"meeting_type"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Days        string `json:"days"`
	Room        string `json:"room"`
	Building    string `json:"building"`
	Instructors string `json:"instructors"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	GPA               float64 `json:"gpa"`
	Attributes        string  `json:"attributes"`
	DegreeRequirement string  `json:"degree_requirement"`
}

// CourseKey returns the unique course identity (subject + number).
func (r CourseRecord) CourseKey() string {
	return r.Subject + " " + r.Number
}

// SectionKey returns the dedup identity of a section within a course.
func (r CourseRecord) SectionKey() string {
	return r.SectionCode + "|" + r.CRN
}
