package repository

import (
	"errors"
	"time"

	"github.com/user/onmovie/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository stores reviews in a single table. The public per-item
// listing and the per-user lookup both read the same rows, so there is no
// second copy to keep in sync.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Upsert creates or replaces a user's review of one item.
func (r *ReviewRepository) Upsert(review *model.Review) error {
	now := time.Now()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "media_type"}, {Name: "item_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "body", "item_title", "user_name", "updated_at"}),
	}).Create(review).Error
}

// ListByItem returns all reviews of one item, newest first.
func (r *ReviewRepository) ListByItem(mediaType, itemID string) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Where("media_type = ? AND item_id = ?", mediaType, itemID).
		Order("updated_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ListByUser returns all reviews a user has written, newest first.
func (r *ReviewRepository) ListByUser(userID int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// FindByUserAndItem returns a user's review of one item; missing is (nil, nil).
func (r *ReviewRepository) FindByUserAndItem(userID int, mediaType, itemID string) (*model.Review, error) {
	var review model.Review
	err := r.db.Where("user_id = ? AND media_type = ? AND item_id = ?", userID, mediaType, itemID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a user's review of one item.
func (r *ReviewRepository) Delete(userID int, mediaType, itemID string) error {
	return r.db.Where("user_id = ? AND media_type = ? AND item_id = ?", userID, mediaType, itemID).
		Delete(&model.Review{}).Error
}
