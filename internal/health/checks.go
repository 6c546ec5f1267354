package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/maryanafarm/storefront/internal/config"
	service "github.com/maryanafarm/storefront/internal/services"
)

// NewHealthHandler wires the /health endpoint. The redis check is only
// registered when the redis-backed cart store is active; the catalog check
// always runs since an empty catalog means a broken deployment.
func NewHealthHandler(cfg *config.Config, catalog service.CatalogService) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "catalog",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				products, err := catalog.ListAll(ctx)
				if err != nil {
					return fmt.Errorf("catalog is unavailable: %w", err)
				}

				if len(products) == 0 {
					return fmt.Errorf("catalog loaded no products")
				}

				return nil
			},
		},
	}

	if cfg.CartStore.Backend == "redis" {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "farm-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize health checks: %w", err)
	}

	return h, nil
}
