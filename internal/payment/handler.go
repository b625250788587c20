package payment

import (
	"time"

	"banka-backend/internal/audit"
	"banka-backend/internal/database"
	"banka-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreatePaymentRequest struct {
	MusteriNo          uint    `json:"musteriNo"`
	GuncelOdemeTutari  float64 `json:"guncelOdemeTutari"`
	GuncelBorcTutari   float64 `json:"guncelBorcTutari"`
	GecikmisBorcTutari float64 `json:"gecikmisBorcTutari"`
	OdenmisBorcTutari  float64 `json:"odenmisBorcTutari"`
	SonOdemeTarihi     *string `json:"sonOdemeTarihi"` // "2006-01-02", boşsa NULL
}

type UpdatePaymentRequest struct {
	MusteriNo          *uint    `json:"musteriNo"`
	GuncelOdemeTutari  *float64 `json:"guncelOdemeTutari"`
	GuncelBorcTutari   *float64 `json:"guncelBorcTutari"`
	GecikmisBorcTutari *float64 `json:"gecikmisBorcTutari"`
	OdenmisBorcTutari  *float64 `json:"odenmisBorcTutari"`
	SonOdemeTarihi     *string  `json:"sonOdemeTarihi"`
}

// Ödeme yanıtı müşteriyi gömülü taşır; istemci ikinci bir sorgu yapmadan
// müşteri adını gösterebilir.
type PaymentCustomer struct {
	MusteriNo   uint    `json:"musteriNo"`
	Ad          string  `json:"ad"`
	Soyad       string  `json:"soyad"`
	Telefon     string  `json:"telefon"`
	Sube        string  `json:"sube"`
	Cinsiyet    string  `json:"cinsiyet"`
	DogumTarihi string  `json:"dogumTarihi"`
	KayitTarihi string  `json:"kayitTarihi"`
	KrediNotu   int     `json:"krediNotu"`
	KrediTutari float64 `json:"krediTutari"`
}

type PaymentResponse struct {
	OdemeID            uint             `json:"odemeId"`
	MusteriNo          uint             `json:"musteriNo"`
	GuncelOdemeTutari  float64          `json:"guncelOdemeTutari"`
	GuncelBorcTutari   float64          `json:"guncelBorcTutari"`
	GecikmisBorcTutari float64          `json:"gecikmisBorcTutari"`
	OdenmisBorcTutari  float64          `json:"odenmisBorcTutari"`
	SonOdemeTarihi     *string          `json:"sonOdemeTarihi"`
	Musteri            *PaymentCustomer `json:"musteri,omitempty"`
}

func NewPaymentResponse(o models.Odeme) PaymentResponse {
	res := PaymentResponse{
		OdemeID:            o.OdemeID,
		MusteriNo:          o.MusteriNo,
		GuncelOdemeTutari:  o.GuncelOdemeTutari,
		GuncelBorcTutari:   o.GuncelBorcTutari,
		GecikmisBorcTutari: o.GecikmisBorcTutari,
		OdenmisBorcTutari:  o.OdenmisBorcTutari,
	}
	if o.SonOdemeTarihi != nil {
		s := o.SonOdemeTarihi.Format("2006-01-02")
		res.SonOdemeTarihi = &s
	}
	if o.Musteri != nil {
		res.Musteri = &PaymentCustomer{
			MusteriNo:   o.Musteri.MusteriNo,
			Ad:          o.Musteri.Ad,
			Soyad:       o.Musteri.Soyad,
			Telefon:     o.Musteri.Telefon,
			Sube:        o.Musteri.Sube,
			Cinsiyet:    o.Musteri.Cinsiyet,
			DogumTarihi: o.Musteri.DogumTarihi.Format("2006-01-02"),
			KayitTarihi: o.Musteri.KayitTarihi.Format("2006-01-02 15:04:05"),
			KrediNotu:   o.Musteri.KrediNotu,
			KrediTutari: o.Musteri.KrediTutari,
		}
	}
	return res
}

func validateTutar(alan string, tutar float64) error {
	if tutar < 0 {
		return fiber.NewError(fiber.StatusBadRequest, alan+" 0 veya daha büyük olmalıdır")
	}
	return nil
}

func parseSonOdemeTarihi(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tarih formatı geçersiz, 'YYYY-MM-DD' olmalı")
	}
	return &d, nil
}

func musteriVarMi(musteriNo uint) error {
	if musteriNo == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Müşteri seçiniz")
	}
	var count int64
	if err := database.DB.Model(&models.Musteri{}).Where("musteri_no = ?", musteriNo).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Müşteri kontrol edilemedi")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
	}
	return nil
}

// -------------------------------------------------
// GET /api/odemeler
// -------------------------------------------------
func ListPaymentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var odemeler []models.Odeme
		if err := database.DB.Preload("Musteri").Order("odeme_id").Find(&odemeler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ödemeler listelenemedi")
		}

		res := make([]PaymentResponse, 0, len(odemeler))
		for _, o := range odemeler {
			res = append(res, NewPaymentResponse(o))
		}

		return c.JSON(res)
	}
}

// -------------------------------------------------
// GET /api/odemeler/:id
// -------------------------------------------------
func GetPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var odeme models.Odeme
		if err := database.DB.Preload("Musteri").First(&odeme, "odeme_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ödeme bulunamadı")
		}

		return c.JSON(NewPaymentResponse(odeme))
	}
}

// -------------------------------------------------
// POST /api/odemeler
// -------------------------------------------------
func CreatePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if err := musteriVarMi(body.MusteriNo); err != nil {
			return err
		}
		if err := validateTutar("Güncel ödeme tutarı", body.GuncelOdemeTutari); err != nil {
			return err
		}
		if err := validateTutar("Güncel borç tutarı", body.GuncelBorcTutari); err != nil {
			return err
		}
		if err := validateTutar("Gecikmiş borç tutarı", body.GecikmisBorcTutari); err != nil {
			return err
		}
		if err := validateTutar("Ödenmiş borç tutarı", body.OdenmisBorcTutari); err != nil {
			return err
		}

		sonOdeme, err := parseSonOdemeTarihi(body.SonOdemeTarihi)
		if err != nil {
			return err
		}

		odeme := models.Odeme{
			MusteriNo:          body.MusteriNo,
			GuncelOdemeTutari:  body.GuncelOdemeTutari,
			GuncelBorcTutari:   body.GuncelBorcTutari,
			GecikmisBorcTutari: body.GecikmisBorcTutari,
			OdenmisBorcTutari:  body.OdenmisBorcTutari,
			SonOdemeTarihi:     sonOdeme,
		}

		if err := database.DB.Create(&odeme).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ödeme oluşturulamadı")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "odeme",
			EntityID:    odeme.OdemeID,
			Action:      models.AuditActionCreate,
			Description: "Ödeme kaydı oluşturuldu",
			After:       odeme,
		})

		// Yanıtta müşteri gömülü dönsün
		database.DB.Preload("Musteri").First(&odeme, "odeme_id = ?", odeme.OdemeID)

		return c.Status(fiber.StatusCreated).JSON(NewPaymentResponse(odeme))
	}
}

// -------------------------------------------------
// PUT /api/odemeler/:id
// -------------------------------------------------
func UpdatePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var odeme models.Odeme
		if err := database.DB.First(&odeme, "odeme_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ödeme bulunamadı")
		}
		onceki := odeme

		var body UpdatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.MusteriNo != nil {
			if err := musteriVarMi(*body.MusteriNo); err != nil {
				return err
			}
			odeme.MusteriNo = *body.MusteriNo
		}
		if body.GuncelOdemeTutari != nil {
			if err := validateTutar("Güncel ödeme tutarı", *body.GuncelOdemeTutari); err != nil {
				return err
			}
			odeme.GuncelOdemeTutari = *body.GuncelOdemeTutari
		}
		if body.GuncelBorcTutari != nil {
			if err := validateTutar("Güncel borç tutarı", *body.GuncelBorcTutari); err != nil {
				return err
			}
			odeme.GuncelBorcTutari = *body.GuncelBorcTutari
		}
		if body.GecikmisBorcTutari != nil {
			if err := validateTutar("Gecikmiş borç tutarı", *body.GecikmisBorcTutari); err != nil {
				return err
			}
			odeme.GecikmisBorcTutari = *body.GecikmisBorcTutari
		}
		if body.OdenmisBorcTutari != nil {
			if err := validateTutar("Ödenmiş borç tutarı", *body.OdenmisBorcTutari); err != nil {
				return err
			}
			odeme.OdenmisBorcTutari = *body.OdenmisBorcTutari
		}
		if body.SonOdemeTarihi != nil {
			sonOdeme, err := parseSonOdemeTarihi(body.SonOdemeTarihi)
			if err != nil {
				return err
			}
			odeme.SonOdemeTarihi = sonOdeme
		}

		if err := database.DB.Save(&odeme).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ödeme güncellenemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "odeme",
			EntityID:    odeme.OdemeID,
			Action:      models.AuditActionUpdate,
			Description: "Ödeme kaydı güncellendi",
			Before:      onceki,
			After:       odeme,
		})

		database.DB.Preload("Musteri").First(&odeme, "odeme_id = ?", odeme.OdemeID)

		return c.JSON(NewPaymentResponse(odeme))
	}
}

// -------------------------------------------------
// DELETE /api/odemeler/:id
// -------------------------------------------------
func DeletePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var odeme models.Odeme
		if err := database.DB.First(&odeme, "odeme_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ödeme bulunamadı")
		}

		if err := database.DB.Delete(&odeme).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ödeme silinemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "odeme",
			EntityID:    odeme.OdemeID,
			Action:      models.AuditActionDelete,
			Description: "Ödeme kaydı silindi",
			Before:      odeme,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
