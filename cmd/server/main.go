package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kydtrai11/dambody-storefront/internal/auth"
	"github.com/kydtrai11/dambody-storefront/internal/cart"
	"github.com/kydtrai11/dambody-storefront/internal/catalogcache"
	"github.com/kydtrai11/dambody-storefront/internal/category"
	"github.com/kydtrai11/dambody-storefront/internal/config"
	"github.com/kydtrai11/dambody-storefront/internal/order"
	"github.com/kydtrai11/dambody-storefront/internal/page"
	"github.com/kydtrai11/dambody-storefront/internal/product"
	"github.com/kydtrai11/dambody-storefront/internal/upload"
	"github.com/kydtrai11/dambody-storefront/internal/upstream"
)

const catalogTTL = 5 * time.Minute

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app, cfg.AllowOrigins)
	app.Use(requestLog)

	client := upstream.New(cfg.UpstreamURL)

	// catalog reads go through Redis when configured, straight upstream
	// otherwise
	var source catalogcache.Catalog = client
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		source = catalogcache.New(client, rdb, catalogTTL)
	}

	var cartRepo cart.Repository = cart.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		pg := cart.NewPostgresRepository(db)
		if err := pg.EnsureSchema(); err != nil {
			panic(err)
		}
		cartRepo = pg
	} else {
		log.Println("DATABASE_URL not set, carts are in-memory only")
	}

	cartService := cart.NewService(cartRepo)
	productService := product.NewService(source, client)
	secret := []byte(cfg.JWTSecret)

	cart.NewHandler(cartService).RegisterPublicRoutes(app)
	order.NewHandler(order.NewService(client, cartService)).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService(source)).RegisterPublicRoutes(app)
	auth.NewHandler(client, secret).RegisterPublicRoutes(app)
	page.NewHandler().RegisterPublicRoutes(app)
	productHandler := product.NewHandler(productService)
	productHandler.RegisterPublicRoutes(app)

	// admin pages redirect to login; admin API answers 401
	app.Use("/admin", auth.RequireSession(secret))
	adminAPI := app.Group("/api/admin", auth.AdminAPI(secret))
	productHandler.RegisterAdminRoutes(adminAPI)

	if uploader, err := upload.NewCloudinary(cfg.CloudinaryURL); err != nil {
		log.Printf("description upload disabled: %v", err)
	} else {
		upload.NewHandler(uploader).RegisterAdminRoutes(adminAPI)
	}

	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: origins != "*",
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Status = %d, Took = %v\n",
		c.OriginalURL(), c.Method(), c.Response().StatusCode(), time.Since(start))
	return err
}
