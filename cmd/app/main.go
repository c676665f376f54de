package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cityroots/storefront-backend/internal/admin"
	"github.com/cityroots/storefront-backend/internal/cart"
	"github.com/cityroots/storefront-backend/internal/checkout"
	"github.com/cityroots/storefront-backend/internal/config"
	"github.com/cityroots/storefront-backend/internal/mail"
	"github.com/cityroots/storefront-backend/internal/order"
	"github.com/cityroots/storefront-backend/internal/payment"
	"github.com/cityroots/storefront-backend/internal/product"
	"github.com/cityroots/storefront-backend/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app, cfg.CORSOrigins)
	app.Use(requestLogger)
	app.Use(session.Middleware())

	// storage: postgres when DATABASE_URL is set, in-memory seed otherwise
	var (
		productRepo product.Repository
		cartStore   cart.Store
		orderRepo   order.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		ensureSchema(db)
		productRepo = product.NewPostgresRepository(db)
		cartStore = cart.NewPostgresStore(db)
		orderRepo = order.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		productRepo = product.NewInMemoryRepository(product.SeedCatalog())
		cartStore = cart.NewInMemoryStore()
		orderRepo = order.NewInMemoryRepository()
	}

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartService := cart.NewService(cartStore, productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderService)

	paymentService := payment.NewService(
		payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		cfg.RazorpayKeySecret,
	)
	paymentHandler := payment.NewHandler(paymentService)

	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		})
	}

	checkoutService := checkout.NewService(checkout.NewManager(), cartService, orderService, paymentService, mailer)
	checkoutHandler := checkout.NewHandler(checkoutService)

	adminHandler := admin.NewHandler(cfg.AdminUser, cfg.AdminPass, cfg.JWTSecret)

	adminHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	// JWT guards only the admin catalog mutations; the storefront itself is
	// anonymous-session scoped
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			if !strings.HasPrefix(c.Path(), "/api/products") {
				return true
			}
			return c.Method() == fiber.MethodGet
		},
	}))
	productHandler.RegisterProtectedRoutes(app)

	log.Printf("starting City Roots server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("%s %s -> %d (%v)\n", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
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

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS product (
			product_id SERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			product_price NUMERIC NOT NULL DEFAULT 0,
			product_image TEXT,
			category TEXT,
			in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			session_id TEXT PRIMARY KEY,
			lines JSONB NOT NULL DEFAULT '[]',
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			order_number TEXT UNIQUE NOT NULL,
			session_id TEXT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			subtotal NUMERIC NOT NULL DEFAULT 0,
			tax NUMERIC NOT NULL DEFAULT 0,
			shipping NUMERIC NOT NULL DEFAULT 0,
			grand_total NUMERIC NOT NULL DEFAULT 0,
			status TEXT,
			customer_name TEXT,
			customer_email TEXT,
			customer_phone TEXT,
			shipping_address TEXT,
			razorpay_order_id TEXT,
			payment_id TEXT,
			payment_method TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS orders_session_idx ON orders (session_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
