package purchase

import (
	"context"
	"errors"
	"time"

	"babel/src/utils/model"

	"gorm.io/gorm"
)

// gorm-backed content store
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (self *Store) Get(ctx context.Context, id string) (content *model.Content, err error) {
	content = new(model.Content)
	err = self.db.WithContext(ctx).
		Table(model.TableContent).
		Where("id = ?", id).
		First(content).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return
}

func (self *Store) Create(ctx context.Context, content *model.Content) (err error) {
	now := time.Now()
	content.CreatedAt = now
	content.UpdatedAt = now
	return self.db.WithContext(ctx).
		Table(model.TableContent).
		Create(content).
		Error
}

// UpdateContentData writes the attribute payload and the update timestamp
// in a single statement
func (self *Store) UpdateContentData(ctx context.Context, content *model.Content) (err error) {
	return self.db.WithContext(ctx).
		Table(model.TableContent).
		Where("id = ?", content.Id).
		Updates(map[string]interface{}{
			"content_data": content.ContentData,
			"updated_at":   time.Now(),
		}).
		Error
}
