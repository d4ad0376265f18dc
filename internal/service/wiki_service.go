package service

import (
	"context"
	"strings"

	"github.com/courselens/courselens-backend/internal/format"
	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/repository"
	"github.com/rs/zerolog"
)

// classLinkRoute is the frontend route rendered class-code links point at.
const classLinkRoute = "/class"

// WikiService handles course-wiki reads and upsert merges.
type WikiService struct {
	wikiRepo *repository.WikiRepository
	log      zerolog.Logger
}

// NewWikiService creates a new WikiService.
func NewWikiService(wikiRepo *repository.WikiRepository, log zerolog.Logger) *WikiService {
	return &WikiService{
		wikiRepo: wikiRepo,
		log:      log.With().Str("component", "wiki_service").Logger(),
	}
}

// GetByClassName returns a class's wiki with class-code mentions rendered as
// links, or nil when none exists yet.
func (s *WikiService) GetByClassName(ctx context.Context, className string) (*model.CourseWiki, error) {
	wiki, err := s.wikiRepo.GetByClassName(ctx, className)
	if err != nil {
		return nil, err
	}
	linkifyWiki(wiki)
	return wiki, nil
}

// List returns every course wiki, rendered.
func (s *WikiService) List(ctx context.Context) ([]model.CourseWiki, error) {
	wikis, err := s.wikiRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range wikis {
		linkifyWiki(&wikis[i])
	}
	return wikis, nil
}

// Upsert creates the wiki for a class if absent, otherwise merges the
// submission into the stored page, and persists the result.
func (s *WikiService) Upsert(ctx context.Context, className string, req *model.UpsertWikiRequest) (*model.CourseWiki, error) {
	existing, err := s.wikiRepo.GetByClassName(ctx, className)
	if err != nil {
		return nil, err
	}

	merged := MergeWiki(existing, className, req)
	if err := s.wikiRepo.Upsert(ctx, merged); err != nil {
		return nil, err
	}
	linkifyWiki(merged)
	return merged, nil
}

// linkifyWiki renders class-code mentions in a wiki's free-text fields as
// links. Only fetched copies are touched; stored text stays plain, so merges
// never re-link already rendered output.
func linkifyWiki(w *model.CourseWiki) {
	if w == nil {
		return
	}
	w.Tips = format.LinkifyClassCodes(w.Tips, classLinkRoute)
	w.WhenToTake = format.LinkifyClassCodes(w.WhenToTake, classLinkRoute)
	w.StudyResources = format.LinkifyClassCodes(w.StudyResources, classLinkRoute)
}

// MergeWiki applies the wiki upsert policy: each non-empty submitted field
// replaces the stored value wholesale, each empty field keeps it. List
// fields are parsed from comma-separated form input. A nil existing wiki
// merges against an empty page.
func MergeWiki(existing *model.CourseWiki, className string, req *model.UpsertWikiRequest) *model.CourseWiki {
	merged := &model.CourseWiki{
		ClassName:      className,
		TopicsCovered:  []string{},
		Prerequisites:  []string{},
		Instructors:    []string{},
	}
	if existing != nil {
		merged.ID = existing.ID
		merged.TopicsCovered = existing.TopicsCovered
		merged.Prerequisites = existing.Prerequisites
		merged.Instructors = existing.Instructors
		merged.Tips = existing.Tips
		merged.WhenToTake = existing.WhenToTake
		merged.StudyResources = existing.StudyResources
		merged.CreatedAt = existing.CreatedAt
		merged.UpdatedAt = existing.UpdatedAt
	}

	if items := splitCommaList(req.TopicsCovered); items != nil {
		merged.TopicsCovered = items
	}
	if items := splitCommaList(req.Prerequisites); items != nil {
		merged.Prerequisites = items
	}
	if items := splitCommaList(req.Instructors); items != nil {
		merged.Instructors = items
	}
	if req.Tips != "" {
		merged.Tips = req.Tips
	}
	if req.WhenToTake != "" {
		merged.WhenToTake = req.WhenToTake
	}
	if req.StudyResources != "" {
		merged.StudyResources = req.StudyResources
	}

	return merged
}

// splitCommaList parses comma-separated form input into a trimmed slice.
// Empty input returns nil, meaning "field not submitted".
func splitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
