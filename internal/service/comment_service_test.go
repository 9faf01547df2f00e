package service

import (
	"context"
	"testing"

	"Quill/internal/gateway"
	"Quill/internal/model"

	"github.com/stretchr/testify/assert"
)

type fakeCommentGateway struct {
	gateway.CommentGateway
	comments    []model.Comment
	createCalls int
	lastContent string
}

func (f *fakeCommentGateway) ListByPost(_ context.Context, _ string) ([]model.Comment, error) {
	return f.comments, nil
}

func (f *fakeCommentGateway) Create(_ context.Context, postID, content string) (*model.Comment, error) {
	f.createCalls++
	f.lastContent = content
	return &model.Comment{ID: "c1", PostID: postID, Content: content}, nil
}

func (f *fakeCommentGateway) Update(_ context.Context, id, content string) (*model.Comment, error) {
	f.createCalls++
	f.lastContent = content
	return &model.Comment{ID: id, Content: content}, nil
}

func TestCommentService(t *testing.T) {
	ctx := context.Background()

	t.Run("blank comment is rejected locally", func(t *testing.T) {
		gw := &fakeCommentGateway{}
		svc := NewCommentService(gw)

		_, err := svc.Create(ctx, "p1", "   \n\t ")
		assert.ErrorIs(t, err, ErrCommentEmpty)
		assert.Equal(t, "Comment cannot be empty.", err.Error())
		assert.Zero(t, gw.createCalls, "no request may leave the process for a blank comment")

		_, err = svc.Update(ctx, "c1", "")
		assert.ErrorIs(t, err, ErrCommentEmpty)
		assert.Zero(t, gw.createCalls)
	})

	t.Run("content is trimmed before submission", func(t *testing.T) {
		gw := &fakeCommentGateway{}
		svc := NewCommentService(gw)

		_, err := svc.Create(ctx, "p1", "  nice post  ")
		assert.NoError(t, err)
		assert.Equal(t, "nice post", gw.lastContent)
	})

	t.Run("ownership decides the edit affordance", func(t *testing.T) {
		likes := 3
		gw := &fakeCommentGateway{comments: []model.Comment{
			{ID: "c1", Content: "mine", User: &model.Author{ID: "u1", Name: "jane"}, Likes: &likes},
			{ID: "c2", Content: "theirs", User: &model.Author{ID: "u2", Name: "jane"}},
			{ID: "c3", Content: "orphan"},
		}}
		svc := NewCommentService(gw)

		views, err := svc.ListByPost(ctx, "p1", &model.User{ID: "u1", Name: "someone else"})
		assert.NoError(t, err)
		assert.Len(t, views, 3)
		assert.True(t, views[0].CanEdit)
		assert.Equal(t, 3, views[0].Likes)
		// 同名不同 ID 不可编辑：判定只看 ID
		assert.False(t, views[1].CanEdit)
		assert.False(t, views[2].CanEdit)
	})

	t.Run("anonymous readers cannot edit anything", func(t *testing.T) {
		gw := &fakeCommentGateway{comments: []model.Comment{
			{ID: "c1", Content: "x", User: &model.Author{ID: "u1"}},
		}}
		svc := NewCommentService(gw)

		views, err := svc.ListByPost(ctx, "p1", nil)
		assert.NoError(t, err)
		assert.False(t, views[0].CanEdit)
	})
}
