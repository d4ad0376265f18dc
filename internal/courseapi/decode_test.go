package courseapi

import "testing"

func fullRow() []any {
	return []any{
		"2025", "Fall 2025", "CS", "173", "Discrete Structures",
		"Sets, logic, proofs.", "3", "AL1", "Open", "1",
		"In Person", "Restricted to majors.", float64(31234), "Lecture", "10:00 AM",
		"10:50 AM", "MWF", "1404", "Siebel Center", "Fleck, M",
		"2025-08-25", "2025-12-10", 3.42, "Quantitative Reasoning", "CS core",
	}
}

func TestDecodeRecordFullRow(t *testing.T) {
	rec := decodeRecord(fullRow())

	if rec.Subject != "CS" || rec.Number != "173" {
		t.Errorf("subject/number = %q %q", rec.Subject, rec.Number)
	}
	if rec.Title != "Discrete Structures" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.CRN != "31234" {
		t.Errorf("numeric CRN should decode to its string form, got %q", rec.CRN)
	}
	if rec.MeetingType != "Lecture" {
		t.Errorf("meeting type = %q", rec.MeetingType)
	}
	if rec.GPA != 3.42 {
		t.Errorf("gpa = %v", rec.GPA)
	}
	if rec.DegreeRequirement != "CS core" {
		t.Errorf("degree requirement = %q", rec.DegreeRequirement)
	}
}

func TestDecodeRecordShortRow(t *testing.T) {
	rec := decodeRecord([]any{"2025", "Fall 2025", "MATH", "231"})

	if rec.Subject != "MATH" || rec.Number != "231" {
		t.Errorf("subject/number = %q %q", rec.Subject, rec.Number)
	}
	if rec.Title != "" || rec.CRN != "" || rec.GPA != 0 {
		t.Errorf("fields past the row end should be zero-valued: %+v", rec)
	}
}

func TestDecodeRecordNullAndStringGPA(t *testing.T) {
	row := fullRow()
	row[fieldTitle] = nil
	row[fieldGPA] = "3.1"
	rec := decodeRecord(row)

	if rec.Title != "" {
		t.Errorf("null title should decode as empty, got %q", rec.Title)
	}
	if rec.GPA != 3.1 {
		t.Errorf("string gpa should parse, got %v", rec.GPA)
	}

	row[fieldGPA] = "n/a"
	if got := decodeRecord(row).GPA; got != 0 {
		t.Errorf("unparseable gpa should read as 0, got %v", got)
	}
}

func TestDecodeRecords(t *testing.T) {
	records := decodeRecords([][]any{fullRow(), {"2025", "Fall 2025", "PHYS", "211"}})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Subject != "PHYS" {
		t.Errorf("second record subject = %q", records[1].Subject)
	}
}
