package courseapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// fakeCatalog serves section queries from a fixed query→body table and
// records the order queries arrive in. Unknown queries get the sentinel.
type fakeCatalog struct {
	bodies  map[string]string
	queries []string
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	f.queries = append(f.queries, q)
	body, ok := f.bodies[q]
	if !ok {
		body = `"Course not found"`
	}
	w.Write([]byte(body))
}

func newTestResolver(t *testing.T, catalog *fakeCatalog, terms []string) *TermResolver {
	t.Helper()
	srv := httptest.NewServer(catalog)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, zerolog.Nop())
	return NewTermResolver(client, terms, zerolog.Nop())
}

const sectionRow = `[["2025","Fall 2025","CS","173","Discrete Structures","","3","AL1","Open","1","","","31234","Lecture"]]`

func TestResolvePreferredTermFirst(t *testing.T) {
	catalog := &fakeCatalog{bodies: map[string]string{
		"CS 173 Spring 2025": sectionRow,
	}}
	resolver := newTestResolver(t, catalog, []string{"Fall 2025", "Spring 2025"})

	res, term := resolver.Resolve(context.Background(), "CS", "173", "Spring 2025")
	if !res.OK() {
		t.Fatalf("result = %+v", res)
	}
	if term != "Spring 2025" {
		t.Errorf("term = %q, want Spring 2025", term)
	}
	if len(catalog.queries) != 1 {
		t.Errorf("preferred term hit should end the probe, queries = %v", catalog.queries)
	}
}

func TestResolveFallsBackInOrder(t *testing.T) {
	catalog := &fakeCatalog{bodies: map[string]string{
		"CS 173 Spring 2024": sectionRow,
	}}
	terms := []string{"Fall 2025", "Spring 2025", "Fall 2024", "Spring 2024"}
	resolver := newTestResolver(t, catalog, terms)

	res, term := resolver.Resolve(context.Background(), "CS", "173", "")
	if !res.OK() {
		t.Fatalf("result = %+v", res)
	}
	if term != "Spring 2024" {
		t.Errorf("term = %q, want Spring 2024", term)
	}

	want := []string{
		"CS 173 Fall 2025",
		"CS 173 Spring 2025",
		"CS 173 Fall 2024",
		"CS 173 Spring 2024",
	}
	if len(catalog.queries) != len(want) {
		t.Fatalf("queries = %v, want %v", catalog.queries, want)
	}
	for i := range want {
		if catalog.queries[i] != want[i] {
			t.Errorf("query[%d] = %q, want %q", i, catalog.queries[i], want[i])
		}
	}
}

func TestResolveSkipsAlreadyProbedTerm(t *testing.T) {
	catalog := &fakeCatalog{}
	resolver := newTestResolver(t, catalog, []string{"Fall 2025", "Spring 2025"})

	resolver.Resolve(context.Background(), "CS", "173", "Fall 2025")

	for i, q := range catalog.queries {
		if i > 0 && q == catalog.queries[0] {
			t.Errorf("preferred term probed twice: %v", catalog.queries)
		}
	}
	if len(catalog.queries) != 2 {
		t.Errorf("expected 2 probes, got %v", catalog.queries)
	}
}

func TestResolveExhaustionIsNotFound(t *testing.T) {
	catalog := &fakeCatalog{}
	resolver := newTestResolver(t, catalog, []string{"Fall 2025", "Spring 2025"})

	res, term := resolver.Resolve(context.Background(), "CS", "999", "")
	if res.Status != StatusNotFound {
		t.Errorf("status = %v, want StatusNotFound", res.Status)
	}
	if res.Err != nil {
		t.Errorf("exhaustion is not an error, got %v", res.Err)
	}
	if term != "" {
		t.Errorf("term = %q, want empty", term)
	}
}

func TestResolveIgnoresSentinelAsPreferredTerm(t *testing.T) {
	catalog := &fakeCatalog{}
	resolver := newTestResolver(t, catalog, []string{"Fall 2025"})

	resolver.Resolve(context.Background(), "CS", "173", "Course not found")

	for _, q := range catalog.queries {
		if q == "CS 173 Course not found" {
			t.Errorf("sentinel must never be used as a term, queries = %v", catalog.queries)
		}
	}
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	catalog := &fakeCatalog{}
	resolver := newTestResolver(t, catalog, []string{"Fall 2025", "Spring 2025", "Fall 2024"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _ := resolver.Resolve(ctx, "CS", "173", "")
	if res.Status != StatusError {
		t.Errorf("status = %v, want StatusError after cancellation", res.Status)
	}
}
