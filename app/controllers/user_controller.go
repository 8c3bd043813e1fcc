package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

type UserController struct {
	svc   *services.UserService
	users *repositories.UserRepository
}

func NewUserController(svc *services.UserService, users *repositories.UserRepository) *UserController {
	return &UserController{svc: svc, users: users}
}

func (c *UserController) Register(cx *ctx.Context) {
	var in requests.Register
	if !cx.BindJSON(&in) {
		return
	}
	session, err := c.svc.Register(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	startSession(cx, session.Token)
	cx.Created("User registered successfully", session.User)
}

func (c *UserController) Login(cx *ctx.Context) {
	var in requests.Login
	if !cx.BindJSON(&in) {
		return
	}
	session, err := c.svc.Login(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	startSession(cx, session.Token)
	cx.Success("Logged in successfully", session.User)
}

// Auth echoes the verified session claims.
func (c *UserController) Auth(cx *ctx.Context) {
	claims, ok := cx.Claims()
	if !ok {
		cx.Error(http.StatusUnauthorized, "Access denied.")
		return
	}
	cx.Success("Authenticated", claims)
}

func (c *UserController) Logout(cx *ctx.Context) {
	cx.ClearCookie(config.SessionCookieName())
	cx.Success("Logged out successfully", nil)
}

func (c *UserController) ChangePassword(cx *ctx.Context) {
	claims, ok := cx.Claims()
	if !ok {
		cx.Error(http.StatusUnauthorized, "Access denied.")
		return
	}
	var in requests.ChangePassword
	if !cx.BindJSON(&in) {
		return
	}
	if err := c.svc.ChangePassword(cx.Context(), claims.UserID, in); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Password changed successfully", nil)
}

func (c *UserController) Index(cx *ctx.Context) {
	users, err := c.users.All(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("Users retrieved successfully", users)
}

func (c *UserController) Show(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	user, err := c.users.FindByID(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("User retrieved successfully", user)
}

func (c *UserController) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamID("id")
	if !ok {
		return
	}
	if err := c.users.Delete(cx.Context(), id); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success("User deleted successfully", nil)
}

func startSession(cx *ctx.Context, token string) {
	cx.SetCookie(config.SessionCookieName(), token, int(config.SessionTTL().Seconds()), config.IsProduction())
}
