package controllers

import (
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

type BrandController struct {
	repo *repositories.BrandRepository
}

func NewBrandController(repo *repositories.BrandRepository) *BrandController {
	return &BrandController{repo: repo}
}

func (c *BrandController) Index(cx *ctx.Context) {
	brands, err := c.repo.All(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Brands retrieved successfully", brands)
}

func (c *BrandController) Show(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	brand, err := c.repo.Find(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Brand retrieved successfully", brand)
}

func (c *BrandController) Store(cx *ctx.Context) {
	var in requests.Brand
	if !cx.BindJSON(&in) {
		return
	}
	brand, err := c.repo.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Brand saved successfully", brand)
}

func (c *BrandController) Update(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.BrandPatch
	if !cx.BindJSON(&in) {
		return
	}
	brand, err := c.repo.Update(cx.Context(), id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Brand updated successfully", brand)
}

func (c *BrandController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.repo.Delete(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Brand deleted successfully", nil)
}

type CategoryController struct {
	repo *repositories.CategoryRepository
}

func NewCategoryController(repo *repositories.CategoryRepository) *CategoryController {
	return &CategoryController{repo: repo}
}

func (c *CategoryController) Index(cx *ctx.Context) {
	categories, err := c.repo.All(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Categories retrieved successfully", categories)
}

func (c *CategoryController) Show(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	category, err := c.repo.Find(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Category retrieved successfully", category)
}

func (c *CategoryController) Store(cx *ctx.Context) {
	var in requests.Category
	if !cx.BindJSON(&in) {
		return
	}
	category, err := c.repo.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Category saved successfully", category)
}

func (c *CategoryController) Update(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.CategoryPatch
	if !cx.BindJSON(&in) {
		return
	}
	category, err := c.repo.Update(cx.Context(), id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Category updated successfully", category)
}

func (c *CategoryController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.repo.Delete(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Category deleted successfully", nil)
}
