package controllers

import (
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

type PaymentController struct {
	repo *repositories.PaymentRepository
}

func NewPaymentController(repo *repositories.PaymentRepository) *PaymentController {
	return &PaymentController{repo: repo}
}

func (c *PaymentController) Methods(cx *ctx.Context) {
	methods, err := c.repo.Methods(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Payment methods retrieved successfully", methods)
}

func (c *PaymentController) ShowMethod(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	method, err := c.repo.Method(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Payment method retrieved successfully", method)
}

func (c *PaymentController) StoreMethod(cx *ctx.Context) {
	var in requests.PaymentMethod
	if !cx.BindJSON(&in) {
		return
	}
	method, err := c.repo.CreateMethod(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Payment method saved successfully", method)
}

func (c *PaymentController) UpdateMethod(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.PaymentMethod
	if !cx.BindJSON(&in) {
		return
	}
	method, err := c.repo.UpdateMethod(cx.Context(), id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Payment method updated successfully", method)
}

func (c *PaymentController) DestroyMethod(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.repo.DeleteMethod(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Payment method deleted successfully", nil)
}

func (c *PaymentController) Store(cx *ctx.Context) {
	var in requests.Payment
	if !cx.BindJSON(&in) {
		return
	}
	payment, err := c.repo.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created("Payment recorded successfully", payment)
}

func (c *PaymentController) ByOrder(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	payments, err := c.repo.ForOrder(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Payments retrieved successfully", payments)
}

func (c *PaymentController) Update(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	var in requests.PaymentPatch
	if !cx.BindJSON(&in) {
		return
	}
	payment, err := c.repo.Update(cx.Context(), id, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Payment updated successfully", payment)
}
