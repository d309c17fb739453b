package bootstrap

import (
	"nautto-be/internal/config"
	"nautto-be/internal/controller"
	"nautto-be/internal/pkg/logger"
	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	MetaController   controller.IMetaController
	UserController   controller.IUserController
	WidgetController controller.IWidgetController
	LayoutController controller.ILayoutController
	SetController    controller.ISetController
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.ILogger) (*Container, error) {
	policy, err := contract.ParseDeletePolicy(cfg.Database.DeletePolicy)
	if err != nil {
		return nil, err
	}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db, policy)

	// 2. Services
	userService := service.NewUserService(uowFactory)
	widgetService := service.NewWidgetService(uowFactory)
	layoutService := service.NewLayoutService(uowFactory)
	setService := service.NewSetService(uowFactory)

	// 3. Controllers
	return &Container{
		Logger:           log,
		MetaController:   controller.NewMetaController(),
		UserController:   controller.NewUserController(userService),
		WidgetController: controller.NewWidgetController(widgetService),
		LayoutController: controller.NewLayoutController(layoutService),
		SetController:    controller.NewSetController(setService),
	}, nil
}
