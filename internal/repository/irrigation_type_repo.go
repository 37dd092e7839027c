package repository

import (
	"context"

	"agrofield/internal/model"

	"gorm.io/gorm"
)

// IrrigationTypeRepository defines CRUD operations for irrigation-type
// reference data.
type IrrigationTypeRepository interface {
	Create(ctx context.Context, it *model.IrrigationType) error
	FindByID(ctx context.Context, id uint) (*model.IrrigationType, error)
	FindByName(ctx context.Context, name string) (*model.IrrigationType, error)
	List(ctx context.Context) ([]model.IrrigationType, error)
	Update(ctx context.Context, it *model.IrrigationType) error
	Delete(ctx context.Context, id uint) error
}

type irrigationTypeRepo struct{ db *gorm.DB }

func NewIrrigationTypeRepository(db *gorm.DB) IrrigationTypeRepository {
	return &irrigationTypeRepo{db: db}
}

func (r *irrigationTypeRepo) Create(ctx context.Context, it *model.IrrigationType) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *irrigationTypeRepo) FindByID(ctx context.Context, id uint) (*model.IrrigationType, error) {
	var it model.IrrigationType
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *irrigationTypeRepo) FindByName(ctx context.Context, name string) (*model.IrrigationType, error) {
	var it model.IrrigationType
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *irrigationTypeRepo) List(ctx context.Context) ([]model.IrrigationType, error) {
	var types []model.IrrigationType
	err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error
	return types, err
}

func (r *irrigationTypeRepo) Update(ctx context.Context, it *model.IrrigationType) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *irrigationTypeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.IrrigationType{}, id).Error
}
