package controllers

import (
	"mime/multipart"
	"strings"

	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

const imageField = "images"

type ProductController struct {
	svc *services.ProductService
}

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{svc: svc}
}

// Store accepts JSON, or a multipart form whose "images" files are stored
// with the product.
func (c *ProductController) Store(cx *ctx.Context) {
	var in requests.Product
	var files []*multipart.FileHeader
	if isMultipart(cx) {
		var ok bool
		if files, ok = cx.BindForm(&in, imageField); !ok {
			return
		}
	} else if !cx.BindJSON(&in) {
		return
	}

	product, err := c.svc.Create(cx.Context(), in, files)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Product saved successfully", product)
}

func (c *ProductController) Index(cx *ctx.Context) {
	products, err := c.svc.All(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Products retrieved successfully", products)
}

func (c *ProductController) Search(cx *ctx.Context) {
	products, err := c.svc.Search(cx.Context(), cx.Query("q"))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Products retrieved successfully", products)
}

func (c *ProductController) Show(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	product, err := c.svc.Find(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Product retrieved successfully", product)
}

func (c *ProductController) ByCategory(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	products, err := c.svc.ByCategory(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Products retrieved successfully", products)
}

func (c *ProductController) ByBrand(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	products, err := c.svc.ByBrand(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Products retrieved successfully", products)
}

func (c *ProductController) Update(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.ProductPatch
	if !cx.BindJSON(&in) {
		return
	}
	product, err := c.svc.Update(cx.Context(), id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Product updated successfully", product)
}

func (c *ProductController) UpdateImage(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var none struct{}
	files, ok := cx.BindForm(&none, imageField)
	if !ok {
		return
	}
	product, err := c.svc.ReplaceImages(cx.Context(), id, files)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Product image updated successfully", product)
}

func (c *ProductController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.svc.Delete(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Product deleted successfully", nil)
}

func isMultipart(cx *ctx.Context) bool {
	return strings.HasPrefix(cx.Header("Content-Type"), "multipart/")
}
