package components

import (
	"equiprent/internal/handler"
	"equiprent/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentalHandler,
		api.NewItemHandler,
		api.NewCustomerHandler,
		api.NewDashboardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
