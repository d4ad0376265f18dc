package model

// SubjectName is one entry of the upstream subject directory.
type SubjectName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SubjectInfo is the upstream metadata for a single subject code.
type SubjectInfo struct {
	Label string `json:"label"`
}
