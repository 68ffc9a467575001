package health

import (
	"context"
	"fmt"
	"time"

	"github.com/electricpro/storefront/internal/catalog"
	"github.com/electricpro/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

func NewHealthHandler(cfg *config.Config, cat *catalog.Catalog) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "catalog",
				Timeout:   time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if _, total := cat.List("", 1, 1); total == 0 {
						return fmt.Errorf("catalog is empty")
					}

					return nil
				},
			},
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
