package templates

import (
	"context"
	"encoding/json"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"

	"github.com/coocood/freecache"
	"github.com/sirupsen/logrus"
)

const (
	cacheSizeBytes = 2 * 1024 * 1024
	// Templates only change on reseed, so the cache can hold them for a while.
	cacheExpireSeconds = 60 * 60
)

// Provider serves workout templates through an in-memory cache backed
// by the template repository. Templates are read on every session start
// and almost never change, so cache hits carry nearly all traffic.
type Provider struct {
	repo  repository.TemplateRepository
	cache *freecache.Cache
	log   *logrus.Entry
}

func NewProvider(repo repository.TemplateRepository, log *logrus.Entry) *Provider {
	return &Provider{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeBytes),
		log:   log,
	}
}

// Get returns the template with the given ID, from cache when possible.
// Misses fall through to the repository and repopulate the cache.
func (p *Provider) Get(ctx context.Context, id string) (*domain.WorkoutTemplate, error) {
	key := []byte(id)
	if cached, err := p.cache.Get(key); err == nil {
		var tmpl domain.WorkoutTemplate
		if err := json.Unmarshal(cached, &tmpl); err == nil {
			return &tmpl, nil
		}
		p.log.WithField("template_id", id).Warn("dropping unreadable cached template")
		p.cache.Del(key)
	}

	tmpl, err := p.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(tmpl); err == nil {
		if err := p.cache.Set(key, raw, cacheExpireSeconds); err != nil {
			p.log.WithError(err).WithField("template_id", id).Warn("failed to cache template")
		}
	}
	return tmpl, nil
}

// List returns every stored template. Listing is rare (catalog screens)
// and goes straight to the repository.
func (p *Provider) List(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	return p.repo.GetAll(ctx)
}

// Seed upserts the built-in catalog and clears the cache so stale
// copies do not outlive a reseed.
func (p *Provider) Seed(ctx context.Context) error {
	for _, tmpl := range DefaultTemplates() {
		if err := p.repo.Upsert(ctx, &tmpl); err != nil {
			return err
		}
	}
	p.cache.Clear()
	return nil
}
