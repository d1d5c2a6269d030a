package main

import (
	"fmt"
	"log/slog"
	"os"

	"restaurant/cmd"
	apihttp "restaurant/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		KitchenTickCron: goDotEnvVariable("KITCHEN_TICK_CRON"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := apihttp.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateRemoveCustomerCommandHandler(),
		app.CreateAddMenuItemCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateProcessNextOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSetPaymentMethodCommandHandler(),
		app.CreateSearchCustomersQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateListOpenOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
