package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/intechds/storefront/internal/domain"
)

type ReviewUC struct {
	Reviews domain.ReviewRepo
}

type ReviewInput struct {
	ProductID int    `json:"productId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

func (uc *ReviewUC) List(ctx context.Context) ([]domain.Review, error) {
	return uc.Reviews.List(ctx)
}

func (uc *ReviewUC) ListByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	reviews, err := uc.Reviews.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := reviews[:0:0]
	for _, r := range reviews {
		if r.ProductID == productID {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Create marks the review verified only when a userId accompanied it. The
// productId is not checked against the catalog.
func (uc *ReviewUC) Create(ctx context.Context, in ReviewInput) (*domain.Review, error) {
	if in.ProductID == 0 || in.UserName == "" || in.Rating == 0 || in.Title == "" || in.Comment == "" {
		return nil, domain.Validation("กรุณากรอกข้อมูลให้ครบ")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.Validation("คะแนนต้องอยู่ระหว่าง 1-5")
	}
	r := domain.Review{
		ID:        fmt.Sprintf("review_%d", time.Now().UnixMilli()),
		ProductID: in.ProductID,
		UserID:    in.UserID,
		UserName:  in.UserName,
		Rating:    in.Rating,
		Title:     in.Title,
		Comment:   in.Comment,
		Verified:  in.UserID != "",
		CreatedAt: domain.Timestamp(time.Now()),
	}
	err := uc.Reviews.Update(ctx, func(reviews []domain.Review) ([]domain.Review, error) {
		return append(reviews, r), nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (uc *ReviewUC) Delete(ctx context.Context, id string) error {
	return uc.Reviews.Update(ctx, func(reviews []domain.Review) ([]domain.Review, error) {
		kept := reviews[:0:0]
		for _, r := range reviews {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		return kept, nil
	})
}
