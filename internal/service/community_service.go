package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/courselens/courselens-backend/internal/config"
	"github.com/courselens/courselens-backend/internal/format"
	"github.com/courselens/courselens-backend/internal/model"
	"github.com/courselens/courselens-backend/internal/repository"
	ws "github.com/courselens/courselens-backend/internal/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CommunityService handles the per-class community feed: posts, replies, the
// class-title registry, and live event publication over Redis PubSub.
type CommunityService struct {
	postRepo  *repository.PostRepository
	classRepo *repository.ClassRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(
	postRepo *repository.PostRepository,
	classRepo *repository.ClassRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *CommunityService {
	return &CommunityService{
		postRepo:  postRepo,
		classRepo: classRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "community_service").Logger(),
	}
}

// CreatePost persists a post with the author's profile denormalized in, and
// registers the class title on first use.
func (s *CommunityService) CreatePost(ctx context.Context, req *model.CreatePostRequest, author *Claims) (*model.Post, error) {
	if err := s.classRepo.Ensure(ctx, req.ClassName); err != nil {
		return nil, fmt.Errorf("register class: %w", err)
	}

	post := &model.Post{
		ClassName:      req.ClassName,
		Type:           model.PostType(req.Type),
		Title:          req.Title,
		Content:        req.Content,
		EventDate:      req.EventDate,
		EventLocation:  req.EventLocation,
		AuthorUsername: author.Username,
		AuthorAvatar:   author.Avatar,
		Replies:        []model.Reply{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.publish(ctx, post.ClassName, ws.FeedMessage{Event: ws.EventPostCreated, Post: post})
	return post, nil
}

// CreateReply persists a reply to an existing post. Returns (nil, nil) when
// the post does not exist.
func (s *CommunityService) CreateReply(ctx context.Context, postID int, req *model.CreateReplyRequest, author *Claims) (*model.Reply, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	reply := &model.Reply{
		PostID:         postID,
		Content:        req.Content,
		AuthorUsername: author.Username,
		AuthorAvatar:   author.Avatar,
	}
	if err := s.postRepo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	s.publish(ctx, post.ClassName, ws.FeedMessage{Event: ws.EventReplyCreated, Reply: reply})
	return reply, nil
}

// ListByClass returns a class's posts with replies, rendered.
func (s *CommunityService) ListByClass(ctx context.Context, className string) ([]model.Post, error) {
	posts, err := s.postRepo.ListByClass(ctx, className)
	if err != nil {
		return nil, err
	}
	linkifyPosts(posts)
	return posts, nil
}

// List returns every post with replies, rendered.
func (s *CommunityService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	linkifyPosts(posts)
	return posts, nil
}

// GetPost returns one post with replies, rendered, or nil when absent.
func (s *CommunityService) GetPost(ctx context.Context, id int) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	linkifyPost(post)
	return post, nil
}

// linkifyPost renders class-code mentions in a post's body and replies as
// links. Stored text stays plain.
func linkifyPost(p *model.Post) {
	if p == nil {
		return
	}
	p.Content = format.LinkifyClassCodes(p.Content, classLinkRoute)
	for i := range p.Replies {
		p.Replies[i].Content = format.LinkifyClassCodes(p.Replies[i].Content, classLinkRoute)
	}
}

func linkifyPosts(posts []model.Post) {
	for i := range posts {
		linkifyPost(&posts[i])
	}
}

// ListClasses returns all class titles the feed has seen.
func (s *CommunityService) ListClasses(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.List(ctx)
}

// publish sends a feed event to the class's PubSub channel. Publication is
// best-effort: a Redis failure must not fail the write that triggered it.
func (s *CommunityService) publish(ctx context.Context, className string, msg ws.FeedMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error().Err(err).Msg("Feed event marshal failed")
		return
	}
	channel := config.CacheKey.FeedChannel(className)
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("channel", channel).Msg("Feed event publish failed")
	}
}
