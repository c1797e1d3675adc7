package app

import (
	"context"
	"errors"
	"strings"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentStore interface {
	Create(comment *model.Comment) error
	GetByID(id uint) (*model.Comment, error)
	ListByPostID(postID uint) ([]model.Comment, error)
	Update(comment *model.Comment) error
	Delete(id uint) error
}

type CommentService struct {
	comments CommentStore
	posts    PostStore
	events   ActivityPublisher
}

func NewCommentService(comments CommentStore, posts PostStore, events ActivityPublisher) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		events:   events,
	}
}

// AddToPost creates a comment owned by the caller under an existing post.
func (s *CommentService) AddToPost(ctx context.Context, author *model.User, postID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if author == nil || content == "" {
		return nil, ErrValidation
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Author:   *author,
		Content:  content,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.events, author.ID, model.ActionCommentCreated, "comment", comment.ID)
	return comment, nil
}

// ListForPost returns an existing post's comments oldest-first.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]model.Comment, error) {
	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.comments.ListByPostID(postID)
}

func (s *CommentService) Get(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

// Update replaces the comment's content in full; unlike posts there is
// no partial-update path, content is always required.
func (s *CommentService) Update(ctx context.Context, callerID, id uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	comment, err := s.comments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if err := authorizeOwner(comment.AuthorID, callerID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.events, callerID, model.ActionCommentUpdated, "comment", comment.ID)
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, callerID, id uint) error {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if err := authorizeOwner(comment.AuthorID, callerID); err != nil {
		return err
	}

	if err := s.comments.Delete(id); err != nil {
		return err
	}

	publishActivity(ctx, s.events, callerID, model.ActionCommentDeleted, "comment", id)
	return nil
}
