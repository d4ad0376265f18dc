package courseapi

import (
	"testing"

	"github.com/courselens/courselens-backend/internal/model"
)

func TestGroupSectionsDropsDuplicates(t *testing.T) {
	records := []model.CourseRecord{
		{MeetingType: "Lecture", SectionCode: "A", CRN: "1"},
		{MeetingType: "Lecture", SectionCode: "A", CRN: "1"}, // duplicate
		{MeetingType: "Discussion", SectionCode: "B", CRN: "2"},
	}

	groups := GroupSections(records)

	if len(groups.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups.Groups))
	}
	if n := len(groups.Groups["Lecture"]); n != 1 {
		t.Errorf("Lecture group has %d records, want 1", n)
	}
	if n := len(groups.Groups["Discussion"]); n != 1 {
		t.Errorf("Discussion group has %d records, want 1", n)
	}
}

func TestGroupSectionsSameCodeDifferentCRN(t *testing.T) {
	records := []model.CourseRecord{
		{MeetingType: "Lecture", SectionCode: "A", CRN: "1"},
		{MeetingType: "Lecture", SectionCode: "A", CRN: "2"},
	}

	groups := GroupSections(records)
	if n := len(groups.Groups["Lecture"]); n != 2 {
		t.Errorf("sections sharing a code but not a CRN must both survive, got %d", n)
	}
}

func TestGroupSectionsPreservesOrder(t *testing.T) {
	records := []model.CourseRecord{
		{MeetingType: "Discussion", SectionCode: "D1", CRN: "10"},
		{MeetingType: "Lecture", SectionCode: "L1", CRN: "11"},
		{MeetingType: "Discussion", SectionCode: "D2", CRN: "12"},
		{MeetingType: "Lab", SectionCode: "B1", CRN: "13"},
	}

	groups := GroupSections(records)

	wantOrder := []string{"Discussion", "Lecture", "Lab"}
	if len(groups.Order) != len(wantOrder) {
		t.Fatalf("group order = %v, want %v", groups.Order, wantOrder)
	}
	for i, typ := range wantOrder {
		if groups.Order[i] != typ {
			t.Errorf("group order[%d] = %q, want %q", i, groups.Order[i], typ)
		}
	}

	discussions := groups.Groups["Discussion"]
	if discussions[0].SectionCode != "D1" || discussions[1].SectionCode != "D2" {
		t.Errorf("in-group order not preserved: %v", discussions)
	}
}

func TestGroupSectionsMissingMeetingType(t *testing.T) {
	records := []model.CourseRecord{
		{SectionCode: "X", CRN: "99"},
	}

	groups := GroupSections(records)
	if n := len(groups.Groups[UnknownMeetingType]); n != 1 {
		t.Errorf("record without meeting type should land in %q, got groups %v", UnknownMeetingType, groups.Groups)
	}
}

func TestGroupSectionsEmptyInput(t *testing.T) {
	groups := GroupSections(nil)
	if len(groups.Groups) != 0 || len(groups.Order) != 0 {
		t.Errorf("empty input should yield empty groups, got %v", groups)
	}
}
