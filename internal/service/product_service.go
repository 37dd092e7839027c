package service

import (
	"context"
	"errors"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"

	"gorm.io/gorm"
)

// ProductService covers crop products and their varieties.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	FindAll(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error

	CreateVariety(ctx context.Context, req dto.CreateVarietyRequest) (*dto.VarietyResponse, error)
	FindAllVarieties(ctx context.Context) ([]dto.VarietyResponse, error)
	UpdateVariety(ctx context.Context, id uint, req dto.UpdateVarietyRequest) (*dto.VarietyResponse, error)
	DeleteVariety(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	p := &model.Product{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, Description: p.Description}, nil
}

func (s *productService) FindAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, dto.ProductResponse{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != p.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateName
		}
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, Description: p.Description}, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) CreateVariety(ctx context.Context, req dto.CreateVarietyRequest) (*dto.VarietyResponse, error) {
	if _, err := s.repo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	v := &model.Variety{Name: req.Name, ProductID: req.ProductID}
	if err := s.repo.CreateVariety(ctx, v); err != nil {
		return nil, err
	}
	return &dto.VarietyResponse{ID: v.ID, Name: v.Name, ProductID: v.ProductID}, nil
}

func (s *productService) FindAllVarieties(ctx context.Context) ([]dto.VarietyResponse, error) {
	varieties, err := s.repo.ListVarieties(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VarietyResponse, 0, len(varieties))
	for _, v := range varieties {
		result = append(result, dto.VarietyResponse{ID: v.ID, Name: v.Name, ProductID: v.ProductID})
	}
	return result, nil
}

func (s *productService) UpdateVariety(ctx context.Context, id uint, req dto.UpdateVarietyRequest) (*dto.VarietyResponse, error) {
	v, err := s.repo.FindVarietyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVarietyNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.ProductID != nil {
		if _, err := s.repo.FindByID(ctx, *req.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		v.ProductID = *req.ProductID
	}

	if err := s.repo.UpdateVariety(ctx, v); err != nil {
		return nil, err
	}
	return &dto.VarietyResponse{ID: v.ID, Name: v.Name, ProductID: v.ProductID}, nil
}

func (s *productService) DeleteVariety(ctx context.Context, id uint) error {
	if _, err := s.repo.FindVarietyByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVarietyNotFound
		}
		return err
	}
	return s.repo.DeleteVariety(ctx, id)
}
