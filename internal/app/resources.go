package app

import (
	"context"
	"fmt"
	"time"

	"backoffice_console/internal/domain"
)

// ResourceService fronts the resource CRUD collaborator: it validates
// through the industry's strategy, delegates storage, and keeps the
// per-industry list cache coherent. Validation failures come back as
// FieldErrors, never as a transport error.
type ResourceService struct {
	repo     domain.ResourceRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewResourceService(repo domain.ResourceRepository, cache domain.Cache, ttl time.Duration) *ResourceService {
	return &ResourceService{repo: repo, cache: cache, cacheTTL: ttl}
}

func resourceListKey(industry domain.IndustryType) string {
	return fmt.Sprintf("resources:%s", industry)
}

// List returns the industry's resources, cache-first.
func (s *ResourceService) List(ctx context.Context, cfg domain.IndustryConfig) ([]domain.Resource, error) {
	key := resourceListKey(cfg.Type)
	var cached []domain.Resource
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	rs, err := s.repo.ListResources(ctx, cfg.Type)
	if err != nil {
		return nil, err
	}
	// copy before caching so later mutations by callers can't leak into
	// the cached value
	cp := make([]domain.Resource, len(rs))
	copy(cp, rs)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return rs, nil
}

// Create validates r against the industry strategy and stores it. A
// non-empty FieldErrors means the record was rejected and nothing was
// persisted.
func (s *ResourceService) Create(ctx context.Context, cfg domain.IndustryConfig, r domain.Resource) (domain.Resource, domain.FieldErrors, error) {
	st := StrategyForIndustry(cfg)
	if errs := st.Validate(r); !errs.Valid() {
		return domain.Resource{}, errs, nil
	}
	out, err := s.repo.CreateResource(ctx, cfg.Type, r)
	if err != nil {
		return domain.Resource{}, nil, err
	}
	_ = s.cache.Del(ctx, resourceListKey(cfg.Type))
	return out, nil, nil
}

// Update validates and replaces an existing resource.
func (s *ResourceService) Update(ctx context.Context, cfg domain.IndustryConfig, r domain.Resource) (domain.Resource, domain.FieldErrors, error) {
	st := StrategyForIndustry(cfg)
	errs := st.Validate(r)
	if r.ID == "" {
		if errs.Valid() {
			errs = domain.FieldErrors{}
		}
		errs["id"] = "id is required"
	}
	if !errs.Valid() {
		return domain.Resource{}, errs, nil
	}
	out, err := s.repo.UpdateResource(ctx, cfg.Type, r)
	if err != nil {
		return domain.Resource{}, nil, err
	}
	_ = s.cache.Del(ctx, resourceListKey(cfg.Type))
	return out, nil, nil
}

// Delete removes a resource by id.
func (s *ResourceService) Delete(ctx context.Context, cfg domain.IndustryConfig, id string) error {
	if err := s.repo.DeleteResource(ctx, cfg.Type, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, resourceListKey(cfg.Type))
	return nil
}
