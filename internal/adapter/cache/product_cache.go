package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
	"github.com/redis/go-redis/v9"
)

const productNamespace = "insurance_policy_product"
const productTTL = 10 * time.Minute

// InsurancePolicyProductCache is a read-through cache in front of the
// insurance policy product repository. Premiums are read on every policy
// creation, while the catalog itself rarely changes. Cache failures fall
// back to the repository; a write invalidates the cached entry.
type InsurancePolicyProductCache struct {
	client *redis.Client
	repo   repo_interfaces.InsurancePolicyProductRepository
}

// NewInsurancePolicyProductCache returns the underlying repository untouched
// when no redis client is configured.
func NewInsurancePolicyProductCache(client *redis.Client, repo repo_interfaces.InsurancePolicyProductRepository) repo_interfaces.InsurancePolicyProductRepository {
	if client == nil {
		return repo
	}
	return &InsurancePolicyProductCache{client: client, repo: repo}
}

func (c *InsurancePolicyProductCache) Create(ctx context.Context, product domain.InsurancePolicyProduct) (domain.InsurancePolicyProduct, error) {
	created, err := c.repo.Create(ctx, product)
	if err != nil {
		return domain.InsurancePolicyProduct{}, err
	}

	if delErr := c.client.Del(ctx, productKey(created.ID)).Err(); delErr != nil {
		logger.Error("product cache invalidate failed", delErr, logger.Fields{"productId": created.ID})
	}
	return created, nil
}

func (c *InsurancePolicyProductCache) GetByID(ctx context.Context, id string) (domain.InsurancePolicyProduct, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Result()
	if err == nil {
		var product domain.InsurancePolicyProduct
		if unmarshalErr := json.Unmarshal([]byte(raw), &product); unmarshalErr == nil {
			return product, nil
		}
	} else if err != redis.Nil {
		logger.Error("product cache read failed", err, logger.Fields{"productId": id})
	}

	product, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return domain.InsurancePolicyProduct{}, err
	}

	if encoded, marshalErr := json.Marshal(product); marshalErr == nil {
		if setErr := c.client.Set(ctx, productKey(id), encoded, productTTL).Err(); setErr != nil {
			logger.Error("product cache write failed", setErr, logger.Fields{"productId": id})
		}
	}
	return product, nil
}

func (c *InsurancePolicyProductCache) List(ctx context.Context) ([]domain.InsurancePolicyProduct, error) {
	return c.repo.List(ctx)
}

func productKey(id string) string {
	return productNamespace + ":" + id
}
