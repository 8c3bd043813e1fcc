package routes

import (
	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// Controllers groups the handlers mounted by RegisterAPI.
type Controllers struct {
	Brand     *controllers.BrandController
	Category  *controllers.CategoryController
	Product   *controllers.ProductController
	Inventory *controllers.InventoryController
	Payment   *controllers.PaymentController
	Order     *controllers.OrderController
	Cart      *controllers.CartController
	User      *controllers.UserController
}

// RegisterAPI mounts every resource. Deletions and password changes require
// a session.
func RegisterAPI(r *router.Router, c Controllers) {
	auth := middleware.AuthMiddleware

	product := r.Group("/product")
	product.Post("/", "product.store", ctx.Wrap(c.Product.Store))
	product.Get("/", "product.index", ctx.Wrap(c.Product.Index))
	product.Get("/search", "product.search", ctx.Wrap(c.Product.Search))
	product.Get("/category/{id}", "product.by_category", ctx.Wrap(c.Product.ByCategory))
	product.Get("/brand/{id}", "product.by_brand", ctx.Wrap(c.Product.ByBrand))
	product.Get("/{id}", "product.show", ctx.Wrap(c.Product.Show))
	product.Put("/{id}", "product.update", ctx.Wrap(c.Product.Update))
	product.Put("/{id}/image", "product.image", ctx.Wrap(c.Product.UpdateImage))
	product.Delete("/{id}", "product.destroy", ctx.Wrap(c.Product.Destroy), auth)

	category := r.Group("/category")
	category.Get("/", "category.index", ctx.Wrap(c.Category.Index))
	category.Post("/", "category.store", ctx.Wrap(c.Category.Store))
	category.Get("/{id}", "category.show", ctx.Wrap(c.Category.Show))
	category.Put("/{id}", "category.update", ctx.Wrap(c.Category.Update))
	category.Delete("/{id}", "category.destroy", ctx.Wrap(c.Category.Destroy), auth)

	brand := r.Group("/brand")
	brand.Get("/", "brand.index", ctx.Wrap(c.Brand.Index))
	brand.Post("/", "brand.store", ctx.Wrap(c.Brand.Store))
	brand.Get("/{id}", "brand.show", ctx.Wrap(c.Brand.Show))
	brand.Put("/{id}", "brand.update", ctx.Wrap(c.Brand.Update))
	brand.Delete("/{id}", "brand.destroy", ctx.Wrap(c.Brand.Destroy), auth)

	inventory := r.Group("/inventory")
	inventory.Post("/", "inventory.store", ctx.Wrap(c.Inventory.Store))
	inventory.Get("/", "inventory.index", ctx.Wrap(c.Inventory.Index))
	inventory.Get("/sizes", "inventory.sizes", ctx.Wrap(c.Inventory.Sizes))
	inventory.Get("/{id}", "inventory.show", ctx.Wrap(c.Inventory.Show))
	inventory.Put("/{id}", "inventory.update", ctx.Wrap(c.Inventory.Update))
	inventory.Delete("/{id}", "inventory.destroy", ctx.Wrap(c.Inventory.Destroy), auth)

	payment := r.Group("/payment")
	payment.Get("/method", "payment.method.index", ctx.Wrap(c.Payment.Methods))
	payment.Post("/method", "payment.method.store", ctx.Wrap(c.Payment.StoreMethod))
	payment.Get("/method/{id}", "payment.method.show", ctx.Wrap(c.Payment.ShowMethod))
	payment.Put("/method/{id}", "payment.method.update", ctx.Wrap(c.Payment.UpdateMethod))
	payment.Delete("/method/{id}", "payment.method.destroy", ctx.Wrap(c.Payment.DestroyMethod), auth)
	payment.Post("/", "payment.store", ctx.Wrap(c.Payment.Store))
	payment.Get("/order/{id}", "payment.by_order", ctx.Wrap(c.Payment.ByOrder))
	payment.Put("/{id}", "payment.update", ctx.Wrap(c.Payment.Update))

	order := r.Group("/order")
	order.Post("/", "order.store", ctx.Wrap(c.Order.Store))
	order.Get("/", "order.index", ctx.Wrap(c.Order.Index))
	order.Get("/user/{email}", "order.by_user", ctx.Wrap(c.Order.ByUser))
	order.Get("/{id}", "order.show", ctx.Wrap(c.Order.Show))
	order.Put("/{id}", "order.update", ctx.Wrap(c.Order.Update))
	order.Delete("/{id}", "order.destroy", ctx.Wrap(c.Order.Destroy), auth)

	cart := r.Group("/cart")
	cart.Post("/", "cart.store", ctx.Wrap(c.Cart.Store))
	cart.Post("/user", "cart.show", ctx.Wrap(c.Cart.Show))
	cart.Put("/", "cart.update", ctx.Wrap(c.Cart.Update))
	cart.Delete("/", "cart.destroy", ctx.Wrap(c.Cart.Destroy))
	cart.Post("/clear", "cart.clear", ctx.Wrap(c.Cart.Clear))

	user := r.Group("/user")
	user.Post("/", "user.register", ctx.Wrap(c.User.Register))
	user.Get("/", "user.index", ctx.Wrap(c.User.Index))
	user.Post("/login", "user.login", ctx.Wrap(c.User.Login))
	user.Get("/auth", "user.auth", ctx.Wrap(c.User.Auth), auth)
	user.Get("/logout", "user.logout", ctx.Wrap(c.User.Logout))
	user.Put("/change-password", "user.change_password", ctx.Wrap(c.User.ChangePassword), auth)
	user.Get("/{id}", "user.show", ctx.Wrap(c.User.Show))
	user.Delete("/{id}", "user.destroy", ctx.Wrap(c.User.Destroy), auth)
}
