package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/courselens/courselens-backend/internal/model"
)

func TestMergeWikiPartialSubmission(t *testing.T) {
	existing := &model.CourseWiki{
		ID:            7,
		ClassName:     "CS 173",
		Prerequisites: []string{"X"},
		TopicsCovered: []string{"Logic"},
		Instructors:   []string{},
		WhenToTake:    "Fall",
		Tips:          "Do the homework.",
	}
	req := &model.UpsertWikiRequest{Prerequisites: "A, B"}

	merged := MergeWiki(existing, "CS 173", req)

	if !reflect.DeepEqual(merged.Prerequisites, []string{"A", "B"}) {
		t.Errorf("prerequisites = %v, want [A B]", merged.Prerequisites)
	}
	if merged.WhenToTake != "Fall" {
		t.Errorf("unsubmitted field overwritten: whenToTake = %q", merged.WhenToTake)
	}
	if !reflect.DeepEqual(merged.TopicsCovered, []string{"Logic"}) {
		t.Errorf("unsubmitted list overwritten: topicsCovered = %v", merged.TopicsCovered)
	}
	if merged.Tips != "Do the homework." {
		t.Errorf("tips = %q", merged.Tips)
	}
	if merged.ID != 7 {
		t.Errorf("merge must keep the stored row identity, id = %d", merged.ID)
	}
}

func TestMergeWikiNilExisting(t *testing.T) {
	req := &model.UpsertWikiRequest{
		TopicsCovered: "Induction, Graphs",
		Tips:          "Start early.",
	}

	merged := MergeWiki(nil, "CS 173", req)

	if merged.ClassName != "CS 173" {
		t.Errorf("className = %q", merged.ClassName)
	}
	if !reflect.DeepEqual(merged.TopicsCovered, []string{"Induction", "Graphs"}) {
		t.Errorf("topicsCovered = %v", merged.TopicsCovered)
	}
	if merged.Prerequisites == nil || len(merged.Prerequisites) != 0 {
		t.Errorf("unsubmitted lists on a fresh page should be empty, not nil: %v", merged.Prerequisites)
	}
	if merged.Tips != "Start early." {
		t.Errorf("tips = %q", merged.Tips)
	}
}

func TestMergeWikiEmptyRequestKeepsPage(t *testing.T) {
	existing := &model.CourseWiki{
		ClassName:      "MATH 231",
		TopicsCovered:  []string{"Series"},
		Prerequisites:  []string{"MATH 221"},
		Instructors:    []string{"Smith"},
		Tips:           "Practice.",
		WhenToTake:     "Spring",
		StudyResources: "Past exams.",
	}

	merged := MergeWiki(existing, "MATH 231", &model.UpsertWikiRequest{})

	if !reflect.DeepEqual(merged.TopicsCovered, existing.TopicsCovered) ||
		!reflect.DeepEqual(merged.Prerequisites, existing.Prerequisites) ||
		!reflect.DeepEqual(merged.Instructors, existing.Instructors) ||
		merged.Tips != existing.Tips ||
		merged.WhenToTake != existing.WhenToTake ||
		merged.StudyResources != existing.StudyResources {
		t.Errorf("empty submission must be a no-op, got %+v", merged)
	}
}

func TestLinkifyWikiRendersClassLinks(t *testing.T) {
	wiki := &model.CourseWiki{
		ClassName:  "CS 233",
		Tips:       "Take CS 225 first",
		WhenToTake: "After MATH 231",
	}

	linkifyWiki(wiki)

	wantTip := `Take <a href="/class?subject=CS&number=225&term=latest">CS 225</a> first`
	if wiki.Tips != wantTip {
		t.Errorf("tips = %q, want %q", wiki.Tips, wantTip)
	}
	if !strings.Contains(wiki.WhenToTake, `<a href="/class?subject=MATH&number=231&term=latest">MATH 231</a>`) {
		t.Errorf("whenToTake = %q", wiki.WhenToTake)
	}
}

func TestLinkifyWikiNil(t *testing.T) {
	linkifyWiki(nil) // must not panic
}

func TestSplitCommaList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"A", []string{"A"}},
		{"A, B ,C", []string{"A", "B", "C"}},
		{"A,,B", []string{"A", "B"}},
	}
	for _, tc := range cases {
		if got := splitCommaList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitCommaList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
