package service

import (
	"context"
	"testing"
	"time"

	"Quill/internal/model"

	"github.com/stretchr/testify/assert"
)

type fakeCategoryGateway struct {
	categories []model.Category
	listCalls  int
}

func (f *fakeCategoryGateway) List(_ context.Context) ([]model.Category, error) {
	f.listCalls++
	return f.categories, nil
}

func (f *fakeCategoryGateway) Create(_ context.Context, name string) (*model.Category, error) {
	return &model.Category{ID: "new", Name: name}, nil
}

func (f *fakeCategoryGateway) Update(_ context.Context, id, name string) (*model.Category, error) {
	return &model.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryGateway) Delete(_ context.Context, _ string) error {
	return nil
}

type fakeTagGateway struct {
	tags      []model.Tag
	bulkNames []string
}

func (f *fakeTagGateway) List(_ context.Context) ([]model.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagGateway) Create(_ context.Context, name string) (*model.Tag, error) {
	return &model.Tag{ID: "new", Name: name}, nil
}

func (f *fakeTagGateway) CreateBulk(_ context.Context, names []string) ([]model.Tag, error) {
	f.bulkNames = names
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, model.Tag{ID: "t-" + name, Name: name})
	}
	return tags, nil
}

func (f *fakeTagGateway) Update(_ context.Context, id, name string) (*model.Tag, error) {
	return &model.Tag{ID: id, Name: name}, nil
}

func (f *fakeTagGateway) Delete(_ context.Context, _ string) error {
	return nil
}

func intPtr(v int) *int { return &v }

func TestTaxonomyService(t *testing.T) {
	ctx := context.Background()

	t.Run("delete affordance requires an empty taxonomy entry", func(t *testing.T) {
		catGw := &fakeCategoryGateway{categories: []model.Category{
			{ID: "c1", Name: "Go", PostCount: intPtr(3)},
			{ID: "c2", Name: "Empty", PostCount: intPtr(0)},
			{ID: "c3", Name: "Unknown"},
		}}
		svc := NewTaxonomyService(catGw, &fakeTagGateway{}, time.Minute, false)

		views, err := svc.Categories(ctx)
		assert.NoError(t, err)
		assert.Len(t, views, 3)
		assert.False(t, views[0].CanDelete)
		assert.Equal(t, 3, views[0].PostCount)
		assert.True(t, views[1].CanDelete)
		// 缺失计数按 0 处理
		assert.True(t, views[2].CanDelete)
	})

	t.Run("tags mirror the same gating", func(t *testing.T) {
		tagGw := &fakeTagGateway{tags: []model.Tag{
			{ID: "t1", Name: "redis", PostCount: intPtr(1)},
			{ID: "t2", Name: "unused", PostCount: intPtr(0)},
		}}
		svc := NewTaxonomyService(&fakeCategoryGateway{}, tagGw, time.Minute, false)

		views, err := svc.Tags(ctx)
		assert.NoError(t, err)
		assert.False(t, views[0].CanDelete)
		assert.True(t, views[1].CanDelete)
	})

	t.Run("without redis every read hits the backend", func(t *testing.T) {
		catGw := &fakeCategoryGateway{}
		svc := NewTaxonomyService(catGw, &fakeTagGateway{}, time.Minute, false)

		_, _ = svc.Categories(ctx)
		_, _ = svc.Categories(ctx)
		assert.Equal(t, 2, catGw.listCalls)
	})

	t.Run("bulk create rejects an empty name list", func(t *testing.T) {
		tagGw := &fakeTagGateway{}
		svc := NewTaxonomyService(&fakeCategoryGateway{}, tagGw, time.Minute, false)

		_, err := svc.CreateTags(ctx, nil)
		assert.ErrorIs(t, err, ErrNameEmpty)
		assert.Nil(t, tagGw.bulkNames)
	})

	t.Run("bulk create passes names through", func(t *testing.T) {
		tagGw := &fakeTagGateway{}
		svc := NewTaxonomyService(&fakeCategoryGateway{}, tagGw, time.Minute, false)

		tags, err := svc.CreateTags(ctx, []string{"go", "redis"})
		assert.NoError(t, err)
		assert.Len(t, tags, 2)
		assert.Equal(t, []string{"go", "redis"}, tagGw.bulkNames)
	})
}
