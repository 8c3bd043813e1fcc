package controllers

import (
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

// CartController keys every operation by the e-mail in the request body.
type CartController struct {
	repo *repositories.CartRepository
}

func NewCartController(repo *repositories.CartRepository) *CartController {
	return &CartController{repo: repo}
}

func (c *CartController) Store(cx *ctx.Context) {
	var in requests.CartItem
	if !cx.BindJSON(&in) {
		return
	}
	item, err := c.repo.Add(cx.Context(), in.UserEmail, int64(in.ProductID), int(in.Quantity))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Product added to cart", item)
}

func (c *CartController) Show(cx *ctx.Context) {
	var in requests.CartOwner
	if !cx.BindJSON(&in) {
		return
	}
	lines, err := c.repo.ForUser(cx.Context(), in.UserEmail)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Cart retrieved successfully", lines)
}

func (c *CartController) Update(cx *ctx.Context) {
	var in requests.CartItem
	if !cx.BindJSON(&in) {
		return
	}
	if err := c.repo.SetQuantity(cx.Context(), in.UserEmail, int64(in.ProductID), int(in.Quantity)); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Cart updated successfully", nil)
}

func (c *CartController) Destroy(cx *ctx.Context) {
	var in requests.CartKey
	if !cx.BindJSON(&in) {
		return
	}
	if err := c.repo.Remove(cx.Context(), in.UserEmail, int64(in.ProductID)); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Product removed from cart", nil)
}

func (c *CartController) Clear(cx *ctx.Context) {
	var in requests.CartOwner
	if !cx.BindJSON(&in) {
		return
	}
	if err := c.repo.Clear(cx.Context(), in.UserEmail); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Cart cleared successfully", nil)
}
