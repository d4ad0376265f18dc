package courseapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop()), srv
}

func TestClientSearchDecodesRecords(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "CS 173" {
			t.Errorf("query = %q", got)
		}
		w.Write([]byte(`[["2025","Fall 2025","CS","173","Discrete Structures"]]`))
	})

	res := client.Search(context.Background(), "CS 173")
	if res.Status != StatusOK {
		t.Fatalf("status = %v, err = %v", res.Status, res.Err)
	}
	if len(res.Records) != 1 || res.Records[0].Title != "Discrete Structures" {
		t.Errorf("records = %+v", res.Records)
	}
}

func TestClientSectionsNotFoundSentinel(t *testing.T) {
	for name, body := range map[string]string{
		"bare": "Course not found",
		"json": `"Course not found"`,
	} {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			res := client.Sections(context.Background(), "CS 999 Fall 2025")
			if res.Status != StatusNotFound {
				t.Errorf("status = %v, want StatusNotFound", res.Status)
			}
			if res.Err != nil {
				t.Errorf("sentinel is not an error, got %v", res.Err)
			}
		})
	}
}

func TestClientUpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := client.Search(context.Background(), "CS 173")
	if res.Status != StatusError || res.Err == nil {
		t.Errorf("status = %v, err = %v; want StatusError with an error", res.Status, res.Err)
	}
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, zerolog.Nop())

	res := client.Sections(context.Background(), "CS 173 Fall 2025")
	if res.Status != StatusError || res.Err == nil {
		t.Errorf("status = %v, err = %v; want StatusError with an error", res.Status, res.Err)
	}
}

func TestClientMalformedRecordBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	})

	res := client.Search(context.Background(), "CS 173")
	if res.Status != StatusError || res.Err == nil {
		t.Errorf("status = %v, err = %v; want decode failure", res.Status, res.Err)
	}
}

func TestClientSubjectNames(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subject-names" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[{"code":"CS","name":"Computer Science"},{"code":"MATH","name":"Mathematics"}]`))
	})

	names, err := client.SubjectNames(context.Background())
	if err != nil {
		t.Fatalf("SubjectNames: %v", err)
	}
	if len(names) != 2 || names[0].Code != "CS" || names[1].Name != "Mathematics" {
		t.Errorf("names = %+v", names)
	}
}

func TestClientSubjectInfo(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("subject"); got != "CS" {
			t.Errorf("subject = %q", got)
		}
		w.Write([]byte(`{"label":"Computer Science"}`))
	})

	info, err := client.SubjectInfo(context.Background(), "CS")
	if err != nil {
		t.Fatalf("SubjectInfo: %v", err)
	}
	if info.Label != "Computer Science" {
		t.Errorf("label = %q", info.Label)
	}
}
