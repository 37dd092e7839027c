package service

import (
	"context"
	"errors"

	"agrofield/internal/dto"
	"agrofield/internal/model"
	"agrofield/internal/repository"

	"gorm.io/gorm"
)

type ProducerService interface {
	Create(ctx context.Context, req dto.CreateProducerRequest) (*dto.ProducerResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.ProducerResponse, error)
	FindAll(ctx context.Context) ([]dto.ProducerResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProducerRequest) (*dto.ProducerResponse, error)
	Delete(ctx context.Context, id uint) error
}

type producerService struct {
	repo repository.ProducerRepository
}

func NewProducerService(repo repository.ProducerRepository) ProducerService {
	return &producerService{repo: repo}
}

func mapProducer(p *model.Producer) *dto.ProducerResponse {
	return &dto.ProducerResponse{
		ID:       p.ID,
		Name:     p.Name,
		Document: p.Document,
		City:     p.City,
		State:    p.State,
	}
}

func (s *producerService) Create(ctx context.Context, req dto.CreateProducerRequest) (*dto.ProducerResponse, error) {
	existing, err := s.repo.FindByDocument(ctx, req.Document)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateDocument
	}

	p := &model.Producer{
		Name:     req.Name,
		Document: req.Document,
		City:     req.City,
		State:    req.State,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return mapProducer(p), nil
}

func (s *producerService) FindOne(ctx context.Context, id uint) (*dto.ProducerResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProducerNotFound
		}
		return nil, err
	}
	return mapProducer(p), nil
}

func (s *producerService) FindAll(ctx context.Context) ([]dto.ProducerResponse, error) {
	producers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProducerResponse, 0, len(producers))
	for i := range producers {
		result = append(result, *mapProducer(&producers[i]))
	}
	return result, nil
}

func (s *producerService) Update(ctx context.Context, id uint, req dto.UpdateProducerRequest) (*dto.ProducerResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProducerNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.City != nil {
		p.City = req.City
	}
	if req.State != nil {
		p.State = req.State
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return mapProducer(p), nil
}

func (s *producerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProducerNotFound
		}
		return err
	}
	inUse, err := s.repo.HasAreas(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrProducerHasAreas
	}
	return s.repo.Delete(ctx, id)
}
