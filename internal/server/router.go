package server

import (
	"log"
	"strings"

	"banka-backend/internal/audit"
	"banka-backend/internal/customer"
	"banka-backend/internal/dashboard"
	"banka-backend/internal/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// New: tüm route'ları bağlı Fiber uygulamasını kurar. Testler de aynı
// uygulamayı kullanır.
func New(corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den temizle
	origins := strings.Split(corsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Müşteriler
	api.Get("/musteriler", customer.ListCustomersHandler())
	api.Post("/musteriler", customer.CreateCustomerHandler())
	api.Get("/musteriler/export", customer.ExportCustomersHandler())
	api.Get("/musteriler/sube/:subeAdi", customer.ListCustomersByBranchHandler())
	api.Get("/musteriler/:id", customer.GetCustomerHandler())
	api.Put("/musteriler/:id", customer.UpdateCustomerHandler())
	api.Delete("/musteriler/:id", customer.DeleteCustomerHandler())

	// Ödemeler
	api.Get("/odemeler", payment.ListPaymentsHandler())
	api.Post("/odemeler", payment.CreatePaymentHandler())
	api.Get("/odemeler/:id", payment.GetPaymentHandler())
	api.Put("/odemeler/:id", payment.UpdatePaymentHandler())
	api.Delete("/odemeler/:id", payment.DeletePaymentHandler())

	// Dashboard
	api.Get("/dashboard/summary", dashboard.SummaryHandler())

	// Audit log
	api.Get("/audit-logs", audit.ListLogsHandler())

	return app
}
