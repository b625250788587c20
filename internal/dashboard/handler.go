package dashboard

import (
	"banka-backend/internal/database"
	"banka-backend/internal/models"
	"banka-backend/internal/payment"

	"github.com/gofiber/fiber/v2"
)

type SummaryResponse struct {
	ToplamMusteri  int64                     `json:"toplamMusteri"`
	ToplamOdeme    int64                     `json:"toplamOdeme"`
	ToplamOdenmis  float64                   `json:"toplamOdenmis"`
	ToplamBorc     float64                   `json:"toplamBorc"`
	ToplamGecikmis float64                   `json:"toplamGecikmis"`
	SonOdemeler    []payment.PaymentResponse `json:"sonOdemeler"`
}

// GET /api/dashboard/summary
// Ana sayfa kartları: müşteri/ödeme sayıları, tutar toplamları ve son 5 ödeme.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var res SummaryResponse

		if err := database.DB.Model(&models.Musteri{}).Count(&res.ToplamMusteri).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		if err := database.DB.Model(&models.Odeme{}).Count(&res.ToplamOdeme).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		// toplamlar tek sorguda
		var toplamlar struct {
			Odenmis  float64 `gorm:"column:odenmis"`
			Borc     float64 `gorm:"column:borc"`
			Gecikmis float64 `gorm:"column:gecikmis"`
		}
		err := database.DB.Model(&models.Odeme{}).
			Select("COALESCE(SUM(odenmis_borc_tutari), 0) AS odenmis, COALESCE(SUM(guncel_borc_tutari), 0) AS borc, COALESCE(SUM(gecikmis_borc_tutari), 0) AS gecikmis").
			Scan(&toplamlar).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}
		res.ToplamOdenmis = toplamlar.Odenmis
		res.ToplamBorc = toplamlar.Borc
		res.ToplamGecikmis = toplamlar.Gecikmis

		// son ödeme tarihine göre en yeni 5 kayıt, tarihi olmayanlar sona
		var sonOdemeler []models.Odeme
		err = database.DB.Preload("Musteri").
			Order("son_odeme_tarihi DESC NULLS LAST").
			Order("odeme_id DESC").
			Limit(5).
			Find(&sonOdemeler).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Son ödemeler listelenemedi")
		}

		res.SonOdemeler = make([]payment.PaymentResponse, 0, len(sonOdemeler))
		for _, o := range sonOdemeler {
			res.SonOdemeler = append(res.SonOdemeler, payment.NewPaymentResponse(o))
		}

		return c.JSON(res)
	}
}
