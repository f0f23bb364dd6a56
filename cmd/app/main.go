package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gelsin/cmd"
	httpadapter "gelsin/internal/adapters/in/http"
	"gelsin/internal/adapters/out/postgres/accountrepo"
	"gelsin/internal/adapters/out/postgres/orderrepo"
	"gelsin/internal/adapters/out/postgres/restaurantrepo"
	"gelsin/internal/generated/servers"
	"gelsin/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(gormDB, slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		JWTExpiry:  parseExpiry(goDotEnvVariable("JWT_EXPIRY")),
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

func parseExpiry(value string) time.Duration {
	expiry, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid JWT_EXPIRY %q: %v", value, err)
	}
	return expiry
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	err := cmd.CreateDbIfNotExists(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&accountrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	auth := httpadapter.NewAuth(configs.JWTSecret, configs.JWTExpiry)

	server := httpadapter.NewServer(
		auth,
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateRestaurantCommandHandler(),
		app.CreateAddMenuItemCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateAuthenticateUserQueryHandler(),
		app.CreateListRestaurantsQueryHandler(),
		app.CreateListMenuQueryHandler(),
		app.CreateMyOrdersQueryHandler(),
	)

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(auth.Middleware())

	servers.RegisterHandlers(e, server)

	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to load OpenAPI document",
			})
		}
		return c.JSON(http.StatusOK, swagger)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
