package jobs

import (
	"context"
	"time"

	"reclamalibro/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const (
	CacheTTLMillis = 10 * 60 * 60 * 1000
	CleanInterval  = 1 * time.Hour
)

type FichaRepository interface {
	DeleteExpired(before int64) error
}

// FichaCacheCleaner sweeps stale SUNAT lookup caches so taxpayer data
// never drifts too far from the registry.
type FichaCacheCleaner struct {
	fichaRepo FichaRepository
}

func NewFichaCacheCleaner(repo FichaRepository) *FichaCacheCleaner {
	return &FichaCacheCleaner{fichaRepo: repo}
}

func (c *FichaCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(CleanInterval)
	defer ticker.Stop()

	log.Info("Ficha cache cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping ficha cache cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *FichaCacheCleaner) cleanup() {
	now := utils.NowUTC()
	cutoff := now - CacheTTLMillis

	err := c.fichaRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired ficha cache: %v", err)
		return
	}

	log.Debugf("Cleaner: successfully swept ficha caches older than %d", cutoff)
}
