package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/courselens/courselens-backend/internal/config"
	"github.com/courselens/courselens-backend/internal/courseapi"
	"github.com/courselens/courselens-backend/internal/format"
	"github.com/courselens/courselens-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Domain errors.
var (
	ErrCourseNotFound     = errors.New("no course data found for any recent term")
	ErrCatalogUnavailable = errors.New("course catalog is unavailable")
)

// ClassSections is the grouped view model for one course's class-detail page.
// GroupColors carries one badge color per meeting-type group, lightened
// progressively in group order.
type ClassSections struct {
	Subject      string                  `json:"subject"`
	Number       string                  `json:"number"`
	Term         string                  `json:"term"`
	SubjectLabel string                  `json:"subject_label"`
	Sections     courseapi.SectionGroups `json:"sections"`
	GroupColors  map[string]string       `json:"group_colors"`
}

// groupAccent is the base badge color for the first section group.
const groupAccent = "#13294b"

func groupColors(order []string) map[string]string {
	colors := make(map[string]string, len(order))
	for i, typ := range order {
		colors[typ] = format.Lighten(groupAccent, float64(i*12))
	}
	return colors
}

// CatalogService runs the course-data pipeline: fetch from the upstream API
// with term fallback, then group and deduplicate sections. The fallback path
// is never cached; only the effectively static subject metadata (the
// directory and per-subject labels) is, in Redis with a TTL.
type CatalogService struct {
	client   *courseapi.Client
	resolver *courseapi.TermResolver
	rdb      *redis.Client
	cacheTTL time.Duration
	log      zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	client *courseapi.Client,
	resolver *courseapi.TermResolver,
	rdb *redis.Client,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		client:   client,
		resolver: resolver,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log.With().Str("component", "catalog_service").Logger(),
	}
}

// formatRecords applies presentation formatting to records before they leave
// the service. GPA values are truncated to two decimals.
func formatRecords(records []model.CourseRecord) []model.CourseRecord {
	for i := range records {
		records[i].GPA = format.GPA(records[i].GPA)
	}
	return records
}

// Search runs a free-text course search against the upstream API.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.CourseRecord, error) {
	res := s.client.Search(ctx, query)
	switch res.Status {
	case courseapi.StatusOK:
		return formatRecords(res.Records), nil
	case courseapi.StatusNotFound:
		return []model.CourseRecord{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, res.Err)
	}
}

// ClassSections resolves section data for a course (probing fallback terms if
// the preferred term has none) and groups it by meeting type.
func (s *CatalogService) ClassSections(ctx context.Context, subject, number, preferredTerm string) (*ClassSections, error) {
	res, term := s.resolver.Resolve(ctx, subject, number, preferredTerm)
	switch res.Status {
	case courseapi.StatusOK:
	case courseapi.StatusNotFound:
		return nil, ErrCourseNotFound
	default:
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, res.Err)
	}

	out := &ClassSections{
		Subject:  subject,
		Number:   number,
		Term:     term,
		Sections: courseapi.GroupSections(formatRecords(res.Records)),
	}
	out.GroupColors = groupColors(out.Sections.Order)

	// Subject label is decoration; its absence never fails the page.
	if info, err := s.SubjectInfo(ctx, subject); err == nil {
		out.SubjectLabel = info.Label
	} else {
		s.log.Warn().Err(err).Str("subject", subject).Msg("Subject info lookup failed")
	}

	return out, nil
}

// SubjectDirectory returns the upstream subject directory, served from the
// Redis cache when fresh.
func (s *CatalogService) SubjectDirectory(ctx context.Context) ([]model.SubjectName, error) {
	cacheKey := config.CacheKey.SubjectDirectoryKey()

	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var names []model.SubjectName
		if err := json.Unmarshal([]byte(cached), &names); err == nil {
			return names, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Subject directory cache read failed")
	}

	names, err := s.client.SubjectNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if payload, err := json.Marshal(names); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Subject directory cache write failed")
		}
	}

	return names, nil
}

// SubjectInfo returns the label for one subject code, served from the Redis
// cache when fresh.
func (s *CatalogService) SubjectInfo(ctx context.Context, code string) (*model.SubjectInfo, error) {
	cacheKey := config.CacheKey.SubjectInfoKey(code)

	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var info model.SubjectInfo
		if err := json.Unmarshal([]byte(cached), &info); err == nil {
			return &info, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Subject info cache read failed")
	}

	info, err := s.client.SubjectInfo(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if payload, err := json.Marshal(info); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Subject info cache write failed")
		}
	}

	return info, nil
}

// ProfessorStats returns instructor GPA aggregates for a class.
func (s *CatalogService) ProfessorStats(ctx context.Context, class string) ([]model.ProfessorStats, error) {
	stats, err := s.client.ProfessorStats(ctx, class)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return stats, nil
}

// RateMyProfessor returns external rating aggregates for a query.
func (s *CatalogService) RateMyProfessor(ctx context.Context, query string) ([]model.RMPRating, error) {
	ratings, err := s.client.RateMyProfessor(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return ratings, nil
}

// Requirements returns courses matching a gen-ed category.
func (s *CatalogService) Requirements(ctx context.Context, query string) ([]model.CourseRecord, error) {
	res := s.client.Requirements(ctx, query)
	switch res.Status {
	case courseapi.StatusOK:
		return formatRecords(res.Records), nil
	case courseapi.StatusNotFound:
		return []model.CourseRecord{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, res.Err)
	}
}
