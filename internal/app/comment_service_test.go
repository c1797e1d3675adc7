package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraj-17-jadhav/internship-program/internal/model"
)

type mockCommentStore struct {
	createFn       func(comment *model.Comment) error
	getByIDFn      func(id uint) (*model.Comment, error)
	listByPostIDFn func(postID uint) ([]model.Comment, error)
	updateFn       func(comment *model.Comment) error
	deleteFn       func(id uint) error
}

func (m *mockCommentStore) Create(comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentStore) GetByID(id uint) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockCommentStore) ListByPostID(postID uint) ([]model.Comment, error) {
	if m.listByPostIDFn != nil {
		return m.listByPostIDFn(postID)
	}
	return nil, nil
}

func (m *mockCommentStore) Update(comment *model.Comment) error {
	if m.updateFn != nil {
		return m.updateFn(comment)
	}
	return nil
}

func (m *mockCommentStore) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func postStoreWith(post *model.Post) *mockPostStore {
	return &mockPostStore{
		getByIDFn: func(id uint) (*model.Post, error) {
			if post != nil && post.ID == id {
				return post, nil
			}
			return nil, nil
		},
	}
}

func TestCommentService_AddToPost_MissingContent(t *testing.T) {
	svc := NewCommentService(&mockCommentStore{}, postStoreWith(&model.Post{ID: 3}), nil)

	_, err := svc.AddToPost(context.Background(), alice, 3, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCommentService_AddToPost_ParentMissing(t *testing.T) {
	svc := NewCommentService(&mockCommentStore{}, postStoreWith(nil), nil)

	_, err := svc.AddToPost(context.Background(), alice, 3, "hello")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentService_AddToPost_Success(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewCommentService(&mockCommentStore{}, postStoreWith(&model.Post{ID: 3}), publisher)

	comment, err := svc.AddToPost(context.Background(), alice, 3, "hello")
	require.NoError(t, err)

	assert.Equal(t, uint(3), comment.PostID)
	assert.Equal(t, alice.ID, comment.AuthorID)
	assert.Equal(t, "hello", comment.Content)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, model.ActionCommentCreated, publisher.events[0].Action)
}

func TestCommentService_ListForPost_ParentMissing(t *testing.T) {
	svc := NewCommentService(&mockCommentStore{}, postStoreWith(nil), nil)

	_, err := svc.ListForPost(context.Background(), 3)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentService_ListForPost_Success(t *testing.T) {
	store := &mockCommentStore{
		listByPostIDFn: func(postID uint) ([]model.Comment, error) {
			return []model.Comment{
				{ID: 1, PostID: postID, Content: "first"},
				{ID: 2, PostID: postID, Content: "second"},
			}, nil
		},
	}
	svc := NewCommentService(store, postStoreWith(&model.Post{ID: 3}), nil)

	comments, err := svc.ListForPost(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
}

func TestCommentService_Get_NotFound(t *testing.T) {
	svc := NewCommentService(&mockCommentStore{}, &mockPostStore{}, nil)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentService_Update_ContentRequired(t *testing.T) {
	store := &mockCommentStore{
		getByIDFn: func(id uint) (*model.Comment, error) {
			t.Fatal("validation must run before the store lookup")
			return nil, nil
		},
	}
	svc := NewCommentService(store, &mockPostStore{}, nil)

	_, err := svc.Update(context.Background(), alice.ID, 9, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCommentService_Update_NotOwner(t *testing.T) {
	store := &mockCommentStore{
		getByIDFn: func(id uint) (*model.Comment, error) {
			return &model.Comment{ID: id, AuthorID: 2, Content: "old"}, nil
		},
		updateFn: func(*model.Comment) error {
			t.Fatal("mutation must not run for a non-owner")
			return nil
		},
	}
	svc := NewCommentService(store, &mockPostStore{}, nil)

	_, err := svc.Update(context.Background(), alice.ID, 9, "new")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCommentService_Update_FullReplace(t *testing.T) {
	store := &mockCommentStore{
		getByIDFn: func(id uint) (*model.Comment, error) {
			return &model.Comment{ID: id, AuthorID: alice.ID, Content: "old"}, nil
		},
	}
	svc := NewCommentService(store, &mockPostStore{}, nil)

	comment, err := svc.Update(context.Background(), alice.ID, 9, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", comment.Content)
}

func TestCommentService_Delete_OwnershipMatrix(t *testing.T) {
	comment := &model.Comment{ID: 9, AuthorID: alice.ID}
	store := &mockCommentStore{
		getByIDFn: func(id uint) (*model.Comment, error) {
			if comment != nil && comment.ID == id {
				return comment, nil
			}
			return nil, nil
		},
		deleteFn: func(uint) error {
			comment = nil
			return nil
		},
	}
	svc := NewCommentService(store, &mockPostStore{}, nil)
	ctx := context.Background()

	err := svc.Delete(ctx, 2, 9)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, alice.ID, 9))

	err = svc.Delete(ctx, alice.ID, 9)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
