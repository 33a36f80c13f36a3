package components

import (
	"renthub/internal/handler"
	"renthub/internal/handler/api"
	"renthub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewItemHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
