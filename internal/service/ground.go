package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MahikaLakoul07/SportifyBackend/internal/domain"
	"github.com/MahikaLakoul07/SportifyBackend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const groundCacheTTL = 5 * time.Minute

type GroundService struct {
	repo   ports.GroundRepo
	cache  *redis.Client
	logger logger.Logger
}

func NewGroundService(repo ports.GroundRepo, cache *redis.Client, log logger.Logger) *GroundService {
	return &GroundService{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (s *GroundService) Create(ctx context.Context, in domain.CreateGroundInput) (*domain.Ground, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrValidation)
	}
	if len(in.Windows) == 0 {
		return nil, fmt.Errorf("%w: at least one availability window is required", domain.ErrValidation)
	}
	if err := domain.ValidateWindows(in.Windows); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ground := &domain.Ground{
		ID:        uuid.New().String(),
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Location:  in.Location,
		Size:      in.Size,
		Windows:   in.Windows,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, ground); err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}

	s.logger.Info("ground created",
		logger.String("ground_id", ground.ID),
		logger.String("owner_id", in.OwnerID),
	)

	return ground, nil
}

// Get reads through the cache; a miss hits the ledger and repopulates.
func (s *GroundService) Get(ctx context.Context, id string) (*domain.Ground, error) {
	key := groundCacheKey(id)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var g domain.Ground
		if err = json.Unmarshal([]byte(cached), &g); err == nil {
			return &g, nil
		}
	}

	ground, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(ground); err == nil {
		if err = s.cache.Set(ctx, key, raw, groundCacheTTL).Err(); err != nil {
			s.logger.Debug("failed to cache ground",
				logger.String("ground_id", id),
			)
		}
	}

	return ground, nil
}

func (s *GroundService) List(ctx context.Context) ([]*domain.Ground, error) {
	return s.repo.List(ctx)
}

// Delete soft-deletes the ground and drops its cache entry. Historical
// bookings stay untouched.
func (s *GroundService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete ground: %w", err)
	}

	if err := s.cache.Del(ctx, groundCacheKey(id)).Err(); err != nil {
		s.logger.Error("failed to invalidate ground cache",
			logger.String("ground_id", id),
			logger.String("error", err.Error()),
		)
	}

	return nil
}

func (s *GroundService) AddDocument(ctx context.Context, groundID, docType, url string) (*domain.GroundDocument, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, groundID); err != nil {
		return nil, fmt.Errorf("check ground: %w", err)
	}

	doc := &domain.GroundDocument{
		ID:        uuid.New().String(),
		GroundID:  groundID,
		Type:      docType,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("add document: %w", err)
	}

	return doc, nil
}

func (s *GroundService) Documents(ctx context.Context, groundID string) ([]*domain.GroundDocument, error) {
	return s.repo.ListDocuments(ctx, groundID)
}

func groundCacheKey(id string) string {
	return fmt.Sprintf("ground:%s", id)
}
