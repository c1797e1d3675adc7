package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query comment by id failed: %w", err)
	}
	return &comment, nil
}

// ListByPostID returns a post's comments oldest-first.
func (r *CommentRepository) ListByPostID(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Preload("Author").Where("post_id = ?", postID).Order("created_at ASC, id ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Update(comment *model.Comment) error {
	if err := r.db.Save(comment).Error; err != nil {
		return fmt.Errorf("update comment failed: %w", err)
	}
	return nil
}

func (r *CommentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Comment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}
	return nil
}
