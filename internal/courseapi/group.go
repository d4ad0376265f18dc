package courseapi

import "github.com/courselens/courselens-backend/internal/model"

// UnknownMeetingType buckets records whose meeting-type field is empty.
// They are grouped rather than rejected.
const UnknownMeetingType = "Unknown"

// SectionGroups is the sections-by-meeting-type view model for one
// course+term. Groups holds the deduplicated records per meeting type;
// Order lists the types in first-seen order, since the map alone cannot
// preserve it.
type SectionGroups struct {
	Order  []string                        `json:"order"`
	Groups map[string][]model.CourseRecord `json:"groups"`
}

// GroupSections partitions a flat ordered record list by meeting type,
// dropping duplicate sections. The dedup key is (section code, CRN); CRN is
// always the enrollment-identifier field of the record. Within a bucket,
// records keep API response order. No sorting is applied anywhere.
func GroupSections(records []model.CourseRecord) SectionGroups {
	groups := SectionGroups{Groups: make(map[string][]model.CourseRecord)}
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		key := rec.SectionKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		meetingType := rec.MeetingType
		if meetingType == "" {
			meetingType = UnknownMeetingType
		}

		if _, exists := groups.Groups[meetingType]; !exists {
			groups.Order = append(groups.Order, meetingType)
		}
		groups.Groups[meetingType] = append(groups.Groups[meetingType], rec)
	}

	return groups
}
