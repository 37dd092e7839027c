package repository

import (
	"context"

	"agrofield/internal/model"

	"gorm.io/gorm"
)

// ProductRepository covers products and their varieties — varieties never
// exist without a product, so both live behind one contract.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint) error

	// Varieties
	CreateVariety(ctx context.Context, v *model.Variety) error
	FindVarietyByID(ctx context.Context, id uint) (*model.Variety, error)
	ListVarieties(ctx context.Context) ([]model.Variety, error)
	UpdateVariety(ctx context.Context, v *model.Variety) error
	DeleteVariety(ctx context.Context, id uint) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name asc").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) CreateVariety(ctx context.Context, v *model.Variety) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *productRepo) FindVarietyByID(ctx context.Context, id uint) (*model.Variety, error) {
	var v model.Variety
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *productRepo) ListVarieties(ctx context.Context) ([]model.Variety, error) {
	var varieties []model.Variety
	err := r.db.WithContext(ctx).Order("name asc").Find(&varieties).Error
	return varieties, err
}

func (r *productRepo) UpdateVariety(ctx context.Context, v *model.Variety) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *productRepo) DeleteVariety(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Variety{}, id).Error
}
