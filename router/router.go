package router

import (
	"github.com/labstack/echo/v4"

	"farmhub/pkg/auth/controller"
)

// crudController is the shape every owned-resource controller shares.
type crudController interface {
	List(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func New(
	e *echo.Echo,
	guard echo.MiddlewareFunc,
	authCtrl controller.AuthController,
	cropCtrl crudController,
	fieldCtrl crudController,
	taskCtrl crudController,
	invCtrl crudController,
	equipCtrl crudController,
	finCtrl interface {
		crudController
		Summary(echo.Context) error
		Export(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	auth := e.Group("/auth")
	auth.POST("/register", authCtrl.Register)
	auth.POST("/login", authCtrl.Login)

	me := auth.Group("", guard)
	me.GET("/me", authCtrl.Me)
	me.PUT("/me", authCtrl.UpdateProfile)
	me.DELETE("/me", authCtrl.DeleteAccount)
	me.POST("/logout", authCtrl.Logout)

	api := e.Group("", guard)
	mount(api, "/crops", cropCtrl)
	mount(api, "/fields", fieldCtrl)
	mount(api, "/tasks", taskCtrl)
	mount(api, "/inventory", invCtrl)
	mount(api, "/equipment", equipCtrl)
	mount(api, "/finance/transactions", finCtrl)
	api.GET("/finance/summary", finCtrl.Summary)
	api.GET("/finance/export", finCtrl.Export)

	return e
}

func mount(g *echo.Group, prefix string, ctrl crudController) {
	g.GET(prefix, ctrl.List)
	g.POST(prefix, ctrl.Create)
	g.PUT(prefix+"/:id", ctrl.Update)
	g.DELETE(prefix+"/:id", ctrl.Delete)
}
