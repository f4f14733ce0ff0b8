package internal

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// LinkStore is the only gateway to persisted links. All shared state
// lives behind it; handlers never cache link rows in process.
type LinkStore interface {
	Create(ctx context.Context, link *Link) error
	Get(ctx context.Context, code string) (*Link, error)
	List(ctx context.Context) ([]Link, error)
	Delete(ctx context.Context, code string) error
	IncrementClick(ctx context.Context, code string) error
	CodeExists(ctx context.Context, code string) (bool, error)
}

// GormStore implements LinkStore on Postgres. The *gorm.DB must be
// opened with TranslateError so unique-index violations arrive as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, link *Link) error {
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCodeTaken
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, code string) (*Link, error) {
	var link Link
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}
	return &link, nil
}

func (s *GormStore) List(ctx context.Context) ([]Link, error) {
	links := []Link{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

func (s *GormStore) Delete(ctx context.Context, code string) error {
	res := s.db.WithContext(ctx).Where("code = ?", code).Delete(&Link{})
	if res.Error != nil {
		return fmt.Errorf("delete link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementClick applies the click as a single relative UPDATE so
// concurrent redirects to the same code never lose an increment.
func (s *GormStore) IncrementClick(ctx context.Context, code string) error {
	res := s.db.WithContext(ctx).Model(&Link{}).Where("code = ?", code).
		UpdateColumns(map[string]interface{}{
			"total_clicks":    gorm.Expr("total_clicks + 1"),
			"last_clicked_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return fmt.Errorf("increment click: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Link{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check code: %w", err)
	}
	return count > 0, nil
}
