package app

import (
	"context"
	"errors"
	"strings"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
)

var ErrPostNotFound = errors.New("post not found")

type PostStore interface {
	Create(post *model.Post) error
	ListAll() ([]model.Post, error)
	GetByID(id uint) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error
}

// PostFeedCache caches the full list-posts result. A nil cache disables
// caching; cache errors degrade to database reads.
type PostFeedCache interface {
	Get(ctx context.Context) ([]model.Post, bool, error)
	Set(ctx context.Context, posts []model.Post) error
	Invalidate(ctx context.Context) error
}

type PostService struct {
	posts     PostStore
	feedCache PostFeedCache
	events    ActivityPublisher
}

func NewPostService(posts PostStore, feedCache PostFeedCache, events ActivityPublisher) *PostService {
	return &PostService{
		posts:     posts,
		feedCache: feedCache,
		events:    events,
	}
}

// List returns all posts with no caller filter; the route carries no
// auth gate, so the feed is the same for everyone.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	if s.feedCache != nil {
		if cached, hit, err := s.feedCache.Get(ctx); err == nil && hit {
			return cached, nil
		}
	}

	posts, err := s.posts.ListAll()
	if err != nil {
		return nil, err
	}
	if s.feedCache != nil {
		_ = s.feedCache.Set(ctx, posts)
	}
	return posts, nil
}

func (s *PostService) Create(ctx context.Context, author *model.User, title, content string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if author == nil || title == "" || content == "" {
		return nil, ErrValidation
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
		Author:   *author,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	publishActivity(ctx, s.events, author.ID, model.ActionPostCreated, "post", post.ID)
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update replaces title and content only when supplied; an empty field
// keeps its prior value. Only the owner may update.
func (s *PostService) Update(ctx context.Context, callerID, id uint, title, content string) (*model.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err := authorizeOwner(post.AuthorID, callerID); err != nil {
		return nil, err
	}

	if title = strings.TrimSpace(title); title != "" {
		post.Title = title
	}
	if content = strings.TrimSpace(content); content != "" {
		post.Content = content
	}
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	publishActivity(ctx, s.events, callerID, model.ActionPostUpdated, "post", post.ID)
	return post, nil
}

// Delete removes a post. The check-then-delete pair is not atomic: two
// concurrent deletes by the owner race, and the loser sees ErrPostNotFound.
func (s *PostService) Delete(ctx context.Context, callerID, id uint) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err := authorizeOwner(post.AuthorID, callerID); err != nil {
		return err
	}

	if err := s.posts.Delete(id); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	publishActivity(ctx, s.events, callerID, model.ActionPostDeleted, "post", id)
	return nil
}

func (s *PostService) invalidateFeed(ctx context.Context) {
	if s.feedCache != nil {
		_ = s.feedCache.Invalidate(ctx)
	}
}
