package controllers

import (
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

// IdempotencyHeader carries the client's retry key for order placement.
const IdempotencyHeader = "Idempotency-Key"

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

func (c *OrderController) Store(cx *ctx.Context) {
	var in requests.Order
	if !cx.BindJSON(&in) {
		return
	}
	order, err := c.svc.Place(cx.Context(), in, cx.Header(IdempotencyHeader))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Order placed successfully", order)
}

func (c *OrderController) Index(cx *ctx.Context) {
	rows, err := c.svc.All(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Orders retrieved successfully", rows)
}

func (c *OrderController) ByUser(cx *ctx.Context) {
	rows, err := c.svc.ByEmail(cx.Context(), cx.Param("email"))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Orders retrieved successfully", rows)
}

func (c *OrderController) Show(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	rows, err := c.svc.ByID(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Order retrieved successfully", rows)
}

func (c *OrderController) Update(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.OrderPatch
	if !cx.BindJSON(&in) {
		return
	}
	rows, err := c.svc.Update(cx.Context(), id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Order updated successfully", rows)
}

func (c *OrderController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.svc.Delete(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Order deleted successfully", nil)
}
