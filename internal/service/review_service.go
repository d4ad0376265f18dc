package service

import (
	"context"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ReviewService handles review submission and lookup.
type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	log        zerolog.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo *repository.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		log:        log.With().Str("component", "review_service").Logger(),
	}
}

// Create persists a submitted review. Metric fields for the variant the flag
// does not select are discarded so a class review never carries professor
// metrics and vice versa.
func (s *ReviewService) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	rev := &model.Review{
		IsProfessor: req.IsProfessor,
		SubjectName: req.SubjectName,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Tags:        req.Tags,
	}
	if rev.Tags == nil {
		rev.Tags = []string{}
	}

	if req.IsProfessor {
		rev.Engagement = req.Engagement
		rev.LectureQuality = req.LectureQuality
		rev.AssignmentQuality = req.AssignmentQuality
	} else {
		rev.Difficulty = req.Difficulty
		rev.Workload = req.Workload
		rev.Recommendability = req.Recommendability
	}

	if err := s.reviewRepo.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// ListBySubject returns all reviews for a subject name.
func (s *ReviewService) ListBySubject(ctx context.Context, subjectName string) ([]model.Review, error) {
	return s.reviewRepo.ListBySubject(ctx, subjectName)
}

// List returns all reviews.
func (s *ReviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.List(ctx)
}

// GetByID returns one review, or nil when absent.
func (s *ReviewService) GetByID(ctx context.Context, id int) (*model.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}
