package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/pkg/apperror"
)

type countingCatalog struct {
	courses map[uuid.UUID]entity.Course
	calls   atomic.Int32
}

func (c *countingCatalog) FindCourse(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	c.calls.Add(1)
	course, ok := c.courses[id]
	if !ok {
		return nil, apperror.ErrCourseNotFound
	}
	return &course, nil
}

func (c *countingCatalog) FindCourses(_ context.Context, ids []uuid.UUID) ([]entity.Course, error) {
	c.calls.Add(1)
	var out []entity.Course
	for _, id := range ids {
		if course, ok := c.courses[id]; ok {
			out = append(out, course)
		}
	}
	return out, nil
}

func TestCachedCatalog(t *testing.T) {
	edu := entity.Course{ID: uuid.New(), Code: "EDU-C1", SpecialtyCode: "EDU-101"}
	math := entity.Course{ID: uuid.New(), Code: "MATH-C1", SpecialtyCode: "MATH-204"}
	source := &countingCatalog{courses: map[uuid.UUID]entity.Course{edu.ID: edu, math.ID: math}}
	catalog := NewCachedCatalog(source, NewCacheService(t.Context()), time.Minute)
	ctx := context.Background()

	got, err := catalog.FindCourse(ctx, edu.ID)
	require.NoError(t, err)
	assert.Equal(t, "EDU-C1", got.Code)

	_, err = catalog.FindCourse(ctx, edu.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), source.calls.Load())

	courses, err := catalog.FindCourses(ctx, []uuid.UUID{edu.ID, math.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, edu.ID, courses[0].ID)
	assert.Equal(t, int32(2), source.calls.Load())

	_, err = catalog.FindCourses(ctx, []uuid.UUID{math.ID})
	require.NoError(t, err)
	assert.Equal(t, int32(2), source.calls.Load())

	catalog.Invalidate()
	_, err = catalog.FindCourse(ctx, math.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(3), source.calls.Load())

	_, err = catalog.FindCourse(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCacheService_Expiry(t *testing.T) {
	cs := NewCacheService(t.Context())
	cs.Set("k", 1, -time.Second)
	_, ok := cs.Get("k")
	assert.False(t, ok)

	cs.Set("k", 2, time.Minute)
	v, ok := cs.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
