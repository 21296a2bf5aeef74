package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cifpfbmoll/catalog-manager/internal/category"
	"github.com/cifpfbmoll/catalog-manager/internal/config"
	"github.com/cifpfbmoll/catalog-manager/internal/product"
)

func main() {
	root := &cobra.Command{
		Use:   "catalog-server",
		Short: "Serve the catalog HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token accepted by the write endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mintToken(cmd)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func mintToken(cmd *cobra.Command) error {
	_ = godotenv.Load()
	cfg := config.Load()

	claims := jwt.MapClaims{
		"sub": "console",
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var (
		categoryRepo category.Repository
		productRepo  product.Repository
		db           *sql.DB
	)
	if cfg.DatabaseURL != "" {
		db, err = openDB(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		catRepo := category.NewPostgresRepository(db)
		if err := catRepo.EnsureSchema(); err != nil {
			return fmt.Errorf("ensuring categories schema: %w", err)
		}
		prodRepo := product.NewPostgresRepository(db)
		if err := prodRepo.EnsureSchema(); err != nil {
			return fmt.Errorf("ensuring products schema: %w", err)
		}
		categoryRepo, productRepo = catRepo, prodRepo
		logger.Info("using postgres storage")
	} else {
		categoryRepo = category.NewInMemoryRepository(nil)
		productRepo = product.NewInMemoryRepository(nil)
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	categoryService := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categoryService)
	productHandler := product.NewHandler(product.NewService(productRepo), categoryService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Partial-Only",
	}))
	app.Use(requestLogger(logger))

	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	// page reads are public; every mutation goes through the token check
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet
		},
	}))

	categoryHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	return app.Listen(cfg.Addr)
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
		)
		return err
	}
}

func openDB(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
