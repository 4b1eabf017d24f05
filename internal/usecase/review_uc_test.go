package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intechds/storefront/internal/adapters/kvstore"
	kvrepo "github.com/intechds/storefront/internal/adapters/repo/kv"
	"github.com/intechds/storefront/internal/domain"
	"github.com/intechds/storefront/internal/usecase"
)

func newReviewUC() *usecase.ReviewUC {
	return &usecase.ReviewUC{Reviews: kvrepo.NewReviewRepo(kvstore.NewMemory())}
}

func TestReviewCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newReviewUC()

	valid := usecase.ReviewInput{ProductID: 2, UserName: "สมชาย", Rating: 5, Title: "ดีมาก", Comment: "ใช้งานได้ดี คุ้มราคา"}

	t.Run("rejects missing fields", func(t *testing.T) {
		in := valid
		in.Comment = ""
		_, err := uc.Create(ctx, in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "กรุณากรอกข้อมูลให้ครบ", ve.Msg)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		in := valid
		in.Rating = 6
		_, err := uc.Create(ctx, in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "คะแนนต้องอยู่ระหว่าง 1-5", ve.Msg)
	})

	t.Run("anonymous review is unverified", func(t *testing.T) {
		r, err := uc.Create(ctx, valid)
		require.NoError(t, err)
		assert.False(t, r.Verified)
		assert.NotEmpty(t, r.CreatedAt)
	})

	t.Run("review with userId is verified", func(t *testing.T) {
		time.Sleep(2 * time.Millisecond)
		in := valid
		in.UserID = "user_1"
		in.Rating = 1
		r, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.True(t, r.Verified)
		assert.Equal(t, 1, r.Rating)
	})
}

func TestReviewListByProductAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newReviewUC()

	first, err := uc.Create(ctx, usecase.ReviewInput{ProductID: 2, UserName: "A", Rating: 4, Title: "ok", Comment: "ok"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = uc.Create(ctx, usecase.ReviewInput{ProductID: 3, UserName: "B", Rating: 3, Title: "ok", Comment: "ok"})
	require.NoError(t, err)

	byProduct, err := uc.ListByProduct(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, first.ID, byProduct[0].ID)

	require.NoError(t, uc.Delete(ctx, first.ID))
	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 3, all[0].ProductID)

	// deleting an unknown id succeeds
	require.NoError(t, uc.Delete(ctx, "review_0"))
}
