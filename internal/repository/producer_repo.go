package repository

import (
	"context"

	"agrofield/internal/model"

	"gorm.io/gorm"
)

// ProducerRepository defines CRUD operations for producers.
type ProducerRepository interface {
	Create(ctx context.Context, p *model.Producer) error
	FindByID(ctx context.Context, id uint) (*model.Producer, error)
	FindByDocument(ctx context.Context, document string) (*model.Producer, error)
	List(ctx context.Context) ([]model.Producer, error)
	Update(ctx context.Context, p *model.Producer) error
	Delete(ctx context.Context, id uint) error
	HasAreas(ctx context.Context, id uint) (bool, error)
}

type producerRepo struct{ db *gorm.DB }

func NewProducerRepository(db *gorm.DB) ProducerRepository { return &producerRepo{db: db} }

func (r *producerRepo) Create(ctx context.Context, p *model.Producer) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *producerRepo) FindByID(ctx context.Context, id uint) (*model.Producer, error) {
	var p model.Producer
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *producerRepo) FindByDocument(ctx context.Context, document string) (*model.Producer, error) {
	var p model.Producer
	if err := r.db.WithContext(ctx).Where("document = ?", document).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *producerRepo) List(ctx context.Context) ([]model.Producer, error) {
	var producers []model.Producer
	err := r.db.WithContext(ctx).Order("name asc").Find(&producers).Error
	return producers, err
}

func (r *producerRepo) Update(ctx context.Context, p *model.Producer) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *producerRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Producer{}, id).Error
}

func (r *producerRepo) HasAreas(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Area{}).Where("producer_id = ?", id).Count(&count).Error
	return count > 0, err
}
