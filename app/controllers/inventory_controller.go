package controllers

import (
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

const (
	sizesCacheKey = "inventory:sizes"
	sizesCacheTTL = 10 * time.Minute
)

type InventoryController struct {
	repo  *repositories.InventoryRepository
	cache *cache.Store
}

// NewInventoryController wires the controller. store may be nil.
func NewInventoryController(repo *repositories.InventoryRepository, store *cache.Store) *InventoryController {
	return &InventoryController{repo: repo, cache: store}
}

func (c *InventoryController) Store(cx *ctx.Context) {
	var in requests.Inventory
	if !cx.BindJSON(&in) {
		return
	}
	inv, err := c.repo.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Inventory was created successfully", inv)
}

func (c *InventoryController) Index(cx *ctx.Context) {
	rows, err := c.repo.All(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Inventory retrieved successfully", rows)
}

// Sizes is read through the cache; the size list only changes by seeding.
func (c *InventoryController) Sizes(cx *ctx.Context) {
	var sizes []models.Size
	if c.cache.Get(cx.Context(), sizesCacheKey, &sizes) {
		cx.Success("Sizes retrieved successfully", sizes)
		return
	}
	sizes, err := c.repo.Sizes(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	if err := c.cache.Set(cx.Context(), sizesCacheKey, sizes, sizesCacheTTL); err != nil {
		logger.WithCtx(cx.Context()).Warn("inventory: cache sizes", "error", err)
	}
	cx.Success("Sizes retrieved successfully", sizes)
}

// Show looks inventory up by product id.
func (c *InventoryController) Show(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	inv, err := c.repo.Find(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Inventory retrieved successfully", inv)
}

func (c *InventoryController) Update(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.InventoryStock
	if !cx.BindJSON(&in) {
		return
	}
	inv, err := c.repo.SetStock(cx.Context(), id, int(*in.Stock))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Stock updated successfully", inv)
}

func (c *InventoryController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.repo.Delete(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Inventory deleted successfully", nil)
}
