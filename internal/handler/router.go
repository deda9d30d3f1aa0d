package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth   *api.AuthHandler
	Car    *api.CarHandler
	Rental *api.RentalHandler
}

func NewHandlers(auth *api.AuthHandler, car *api.CarHandler, rental *api.RentalHandler) Handlers {
	return Handlers{Auth: auth, Car: car, Rental: rental}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/", api.Welcome)
	engine.GET("/health", api.HealthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	asUser := authMiddleware.RequireRole(user.RoleUser)
	asMerchant := authMiddleware.RequireRole(user.RoleMerchant)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// /mine is registered before /:id; gin prefers the static segment.
		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Car.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Car.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Car.Create, Mw: []gin.HandlerFunc{requireAuth, asMerchant}},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Car.ListMine, Mw: []gin.HandlerFunc{requireAuth, asMerchant}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Car.Update, Mw: []gin.HandlerFunc{requireAuth, asMerchant}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Car.Delete, Mw: []gin.HandlerFunc{requireAuth, asMerchant}},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(requireAuth, asUser)
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Rental.Rent},
				{Method: http.MethodPost, Path: "/return", Handler: h.Rental.Return},
				{Method: http.MethodGet, Path: "/active", Handler: h.Rental.Active},
				{Method: http.MethodGet, Path: "", Handler: h.Rental.History},
			})
		}

		merchant := apiGroup.Group("/merchant")
		merchant.Use(requireAuth, asMerchant)
		{
			addRoutes(merchant, []route{
				{Method: http.MethodGet, Path: "/rentals", Handler: h.Rental.MerchantRentals},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
