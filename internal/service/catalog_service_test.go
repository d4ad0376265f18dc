package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/courselens/courselens-backend/internal/courseapi"
	"github.com/courselens/courselens-backend/internal/format"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// sectionBody is one upstream row with a raw GPA of 3.338999 at the GPA slot;
// twoGroupBody adds a discussion section to it.
const (
	sectionBody  = `[["2025","Fall 2025","CS","225","Data Structures","","4","AL1","Open","1","","","31234","Lecture","","","","","","","","",3.338999]]`
	twoGroupBody = `[["2025","Fall 2025","CS","225","Data Structures","","4","AL1","Open","1","","","31234","Lecture","","","","","","","","",3.338999],` +
		`["2025","Fall 2025","CS","225","Data Structures","","4","AD1","Open","1","","","31235","Discussion","","","","","","","","",3.338999]]`
)

// newTestCatalogService builds a CatalogService against a scripted upstream.
// The Redis client points at a closed port, so cache reads and writes fail
// and every call falls through to the upstream.
func newTestCatalogService(t *testing.T, handler http.HandlerFunc) *CatalogService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := courseapi.NewClient(srv.URL, zerolog.Nop())
	resolver := courseapi.NewTermResolver(client, []string{"Fall 2025"}, zerolog.Nop())
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { rdb.Close() })

	return NewCatalogService(client, resolver, rdb, time.Minute, zerolog.Nop())
}

func TestSearchTruncatesGPA(t *testing.T) {
	svc := newTestCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sectionBody))
	})

	records, err := svc.Search(context.Background(), "CS 225")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d", len(records))
	}
	if records[0].GPA != 3.33 {
		t.Errorf("gpa = %v, want 3.33", records[0].GPA)
	}
}

func TestClassSectionsFormatsAndLabels(t *testing.T) {
	svc := newTestCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/sections"):
			w.Write([]byte(twoGroupBody))
		case strings.HasPrefix(r.URL.Path, "/subject-info"):
			w.Write([]byte(`{"label":"Computer Science"}`))
		default:
			w.Write([]byte(`"Course not found"`))
		}
	})

	out, err := svc.ClassSections(context.Background(), "CS", "225", "")
	if err != nil {
		t.Fatalf("ClassSections: %v", err)
	}
	if out.Term != "Fall 2025" {
		t.Errorf("term = %q", out.Term)
	}
	if out.SubjectLabel != "Computer Science" {
		t.Errorf("subject label = %q", out.SubjectLabel)
	}

	lectures := out.Sections.Groups["Lecture"]
	if len(lectures) != 1 {
		t.Fatalf("lecture group = %v", out.Sections.Groups)
	}
	if lectures[0].GPA != 3.33 {
		t.Errorf("grouped gpa = %v, want 3.33", lectures[0].GPA)
	}

	if out.GroupColors["Lecture"] != "#13294b" {
		t.Errorf("first group color = %q, want base accent", out.GroupColors["Lecture"])
	}
	if want := format.Lighten("#13294b", 12); out.GroupColors["Discussion"] != want {
		t.Errorf("second group color = %q, want %q", out.GroupColors["Discussion"], want)
	}
}

func TestSubjectInfoSurvivesCacheOutage(t *testing.T) {
	hits := 0
	svc := newTestCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"label":"Mathematics"}`))
	})

	info, err := svc.SubjectInfo(context.Background(), "MATH")
	if err != nil {
		t.Fatalf("SubjectInfo: %v", err)
	}
	if info.Label != "Mathematics" {
		t.Errorf("label = %q", info.Label)
	}
	if hits != 1 {
		t.Errorf("upstream hits = %d, want 1", hits)
	}
}

func TestRequirementsTruncatesGPA(t *testing.T) {
	svc := newTestCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sectionBody))
	})

	records, err := svc.Requirements(context.Background(), "Quantitative Reasoning")
	if err != nil {
		t.Fatalf("Requirements: %v", err)
	}
	if records[0].GPA != 3.33 {
		t.Errorf("gpa = %v, want 3.33", records[0].GPA)
	}
}
