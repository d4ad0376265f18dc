package courseapi

import (
	"strconv"

	"github.com/courselens/courselens-backend/internal/model"
)

// Field positions of an upstream course-record array. These are the durable
// contract of the "~25 field" rows the catalog API serves; decoding happens
// here and nowhere else.
const (
	fieldYear = iota
	fieldTerm
	fieldSubject
	fieldNumber
	fieldTitle
	fieldDescription
	fieldCreditHours
	fieldSectionCode
	fieldStatus
	fieldPartOfTerm
	fieldSectionInfo
	fieldNotes
	fieldCRN
	fieldMeetingType
	fieldStartTime
	fieldEndTime
	fieldDays
	fieldRoom
	fieldBuilding
	fieldInstructors
	fieldStartDate
	fieldEndDate
	fieldGPA
	fieldAttributes
	fieldDegreeRequirement
)

// decodeRecord converts one positional row into a named CourseRecord.
// Rows shorter than the full field count decode the fields present and
// leave the rest zero-valued rather than failing.
func decodeRecord(row []any) model.CourseRecord {
	return model.CourseRecord{
		Year:              stringAt(row, fieldYear),
		Term:              stringAt(row, fieldTerm),
		Subject:           stringAt(row, fieldSubject),
		Number:            stringAt(row, fieldNumber),
		Title:             stringAt(row, fieldTitle),
		Description:       stringAt(row, fieldDescription),
		CreditHours:       stringAt(row, fieldCreditHours),
		SectionCode:       stringAt(row, fieldSectionCode),
		Status:            stringAt(row, fieldStatus),
		PartOfTerm:        stringAt(row, fieldPartOfTerm),
		SectionInfo:       stringAt(row, fieldSectionInfo),
		Notes:             stringAt(row, fieldNotes),
		CRN:               stringAt(row, fieldCRN),
		MeetingType:       stringAt(row, fieldMeetingType),
		StartTime:         stringAt(row, fieldStartTime),
		EndTime:           stringAt(row, fieldEndTime),
		Days:              stringAt(row, fieldDays),
		Room:              stringAt(row, fieldRoom),
		Building:          stringAt(row, fieldBuilding),
		Instructors:       stringAt(row, fieldInstructors),
		StartDate:         stringAt(row, fieldStartDate),
		EndDate:           stringAt(row, fieldEndDate),
		GPA:               floatAt(row, fieldGPA),
		Attributes:        stringAt(row, fieldAttributes),
		DegreeRequirement: stringAt(row, fieldDegreeRequirement),
	}
}

// decodeRecords converts a batch of positional rows.
func decodeRecords(rows [][]any) []model.CourseRecord {
	records := make([]model.CourseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, decodeRecord(row))
	}
	return records
}

// stringAt reads a string field, tolerating missing entries, nulls, and
// numeric values the upstream occasionally serves where strings belong.
func stringAt(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// floatAt reads a numeric field served either as a JSON number or as a
// numeric string. Anything else reads as 0.
func floatAt(row []any, i int) float64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
