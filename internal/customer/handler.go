package customer

import (
	"net/url"
	"time"

	"banka-backend/internal/audit"
	"banka-backend/internal/database"
	"banka-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	Ad          string  `json:"ad"`
	Soyad       string  `json:"soyad"`
	Telefon     string  `json:"telefon"`
	Sube        string  `json:"sube"`
	Cinsiyet    string  `json:"cinsiyet"`
	DogumTarihi string  `json:"dogumTarihi"` // "2006-01-02"
	KrediNotu   int     `json:"krediNotu"`
	KrediTutari float64 `json:"krediTutari"`
}

type UpdateCustomerRequest struct {
	Ad          *string  `json:"ad"`
	Soyad       *string  `json:"soyad"`
	Telefon     *string  `json:"telefon"`
	Sube        *string  `json:"sube"`
	Cinsiyet    *string  `json:"cinsiyet"`
	DogumTarihi *string  `json:"dogumTarihi"`
	KrediNotu   *int     `json:"krediNotu"`
	KrediTutari *float64 `json:"krediTutari"`
}

type CustomerResponse struct {
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

func NewCustomerResponse(m models.Musteri) CustomerResponse {
	return CustomerResponse{
		MusteriNo:   m.MusteriNo,
		Ad:          m.Ad,
		Soyad:       m.Soyad,
		Telefon:     m.Telefon,
		Sube:        m.Sube,
		Cinsiyet:    m.Cinsiyet,
		DogumTarihi: m.DogumTarihi.Format("2006-01-02"),
		KayitTarihi: m.KayitTarihi.Format("2006-01-02 15:04:05"),
		KrediNotu:   m.KrediNotu,
		KrediTutari: m.KrediTutari,
	}
}

// Form kuralları (ad/soyad >= 2, telefon >= 10, sabit şube/cinsiyet kümesi,
// doğum tarihi gelecekte olamaz, kredi notu 0-1000, kredi tutarı >= 0).

func validateAd(ad string) error {
	if len([]rune(ad)) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "Ad en az 2 karakter olmalıdır")
	}
	return nil
}

func validateSoyad(soyad string) error {
	if len([]rune(soyad)) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "Soyad en az 2 karakter olmalıdır")
	}
	return nil
}

func validateTelefon(telefon string) error {
	if len([]rune(telefon)) < 10 {
		return fiber.NewError(fiber.StatusBadRequest, "Telefon numarası en az 10 karakter olmalıdır")
	}
	return nil
}

func validateSube(sube string) error {
	if !models.GecerliSube(sube) {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz şube seçimi")
	}
	return nil
}

func validateCinsiyet(cinsiyet string) error {
	if !models.GecerliCinsiyet(cinsiyet) {
		return fiber.NewError(fiber.StatusBadRequest, "Geçersiz cinsiyet seçimi")
	}
	return nil
}

func validateKrediNotu(not int) error {
	if not < 0 || not > 1000 {
		return fiber.NewError(fiber.StatusBadRequest, "Kredi notu 0-1000 arasında olmalıdır")
	}
	return nil
}

func validateKrediTutari(tutar float64) error {
	if tutar < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Kredi tutarı 0 veya daha büyük olmalıdır")
	}
	return nil
}

func parseDogumTarihi(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Doğum tarihi gereklidir")
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Doğum tarihi formatı geçersiz, 'YYYY-MM-DD' olmalı")
	}
	if d.After(time.Now()) {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Doğum tarihi gelecekte olamaz")
	}
	return d, nil
}

// -------------------------------------------------
// GET /api/musteriler
// -------------------------------------------------
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var musteriler []models.Musteri
		if err := database.DB.Order("musteri_no").Find(&musteriler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		res := make([]CustomerResponse, 0, len(musteriler))
		for _, m := range musteriler {
			res = append(res, NewCustomerResponse(m))
		}

		return c.JSON(res)
	}
}

// -------------------------------------------------
// GET /api/musteriler/sube/:subeAdi
// -------------------------------------------------
func ListCustomersByBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Şube adları URL'de encode edilmiş gelebilir (İstanbul vb.)
		sube, err := url.PathUnescape(c.Params("subeAdi"))
		if err != nil || sube == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Şube adı geçersiz")
		}

		var musteriler []models.Musteri
		if err := database.DB.Where("sube = ?", sube).Order("musteri_no").Find(&musteriler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		res := make([]CustomerResponse, 0, len(musteriler))
		for _, m := range musteriler {
			res = append(res, NewCustomerResponse(m))
		}

		return c.JSON(res)
	}
}

// -------------------------------------------------
// GET /api/musteriler/:id
// -------------------------------------------------
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var musteri models.Musteri
		if err := database.DB.First(&musteri, "musteri_no = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		return c.JSON(NewCustomerResponse(musteri))
	}
}

// -------------------------------------------------
// POST /api/musteriler
// -------------------------------------------------
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if err := validateAd(body.Ad); err != nil {
			return err
		}
		if err := validateSoyad(body.Soyad); err != nil {
			return err
		}
		if err := validateTelefon(body.Telefon); err != nil {
			return err
		}
		if err := validateSube(body.Sube); err != nil {
			return err
		}
		if err := validateCinsiyet(body.Cinsiyet); err != nil {
			return err
		}
		if err := validateKrediNotu(body.KrediNotu); err != nil {
			return err
		}
		if err := validateKrediTutari(body.KrediTutari); err != nil {
			return err
		}

		dogum, err := parseDogumTarihi(body.DogumTarihi)
		if err != nil {
			return err
		}

		musteri := models.Musteri{
			Ad:          body.Ad,
			Soyad:       body.Soyad,
			Telefon:     body.Telefon,
			Sube:        body.Sube,
			Cinsiyet:    body.Cinsiyet,
			DogumTarihi: dogum,
			KayitTarihi: time.Now(), // kayıt tarihi istemciden alınmaz
			KrediNotu:   body.KrediNotu,
			KrediTutari: body.KrediTutari,
		}

		if err := database.DB.Create(&musteri).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri oluşturulamadı")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "musteri",
			EntityID:    musteri.MusteriNo,
			Action:      models.AuditActionCreate,
			Description: "Müşteri oluşturuldu: " + musteri.TamAd(),
			After:       musteri,
		})

		return c.Status(fiber.StatusCreated).JSON(NewCustomerResponse(musteri))
	}
}

// -------------------------------------------------
// PUT /api/musteriler/:id
// -------------------------------------------------
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var musteri models.Musteri
		if err := database.DB.First(&musteri, "musteri_no = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}
		onceki := musteri

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Ad != nil {
			if err := validateAd(*body.Ad); err != nil {
				return err
			}
			musteri.Ad = *body.Ad
		}
		if body.Soyad != nil {
			if err := validateSoyad(*body.Soyad); err != nil {
				return err
			}
			musteri.Soyad = *body.Soyad
		}
		if body.Telefon != nil {
			if err := validateTelefon(*body.Telefon); err != nil {
				return err
			}
			musteri.Telefon = *body.Telefon
		}
		if body.Sube != nil {
			if err := validateSube(*body.Sube); err != nil {
				return err
			}
			musteri.Sube = *body.Sube
		}
		if body.Cinsiyet != nil {
			if err := validateCinsiyet(*body.Cinsiyet); err != nil {
				return err
			}
			musteri.Cinsiyet = *body.Cinsiyet
		}
		if body.DogumTarihi != nil {
			dogum, err := parseDogumTarihi(*body.DogumTarihi)
			if err != nil {
				return err
			}
			musteri.DogumTarihi = dogum
		}
		if body.KrediNotu != nil {
			if err := validateKrediNotu(*body.KrediNotu); err != nil {
				return err
			}
			musteri.KrediNotu = *body.KrediNotu
		}
		if body.KrediTutari != nil {
			if err := validateKrediTutari(*body.KrediTutari); err != nil {
				return err
			}
			musteri.KrediTutari = *body.KrediTutari
		}

		if err := database.DB.Save(&musteri).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri güncellenemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "musteri",
			EntityID:    musteri.MusteriNo,
			Action:      models.AuditActionUpdate,
			Description: "Müşteri güncellendi: " + musteri.TamAd(),
			Before:      onceki,
			After:       musteri,
		})

		return c.JSON(NewCustomerResponse(musteri))
	}
}

// -------------------------------------------------
// DELETE /api/musteriler/:id
// -------------------------------------------------
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var musteri models.Musteri
		if err := database.DB.First(&musteri, "musteri_no = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		// Ödeme kaydı olan müşteri silinemez (RESTRICT). Cascade yok,
		// kayıtlar olduğu gibi kalır.
		var odemeSayisi int64
		if err := database.DB.Model(&models.Odeme{}).Where("musteri_no = ?", musteri.MusteriNo).Count(&odemeSayisi).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ödeme kayıtları kontrol edilemedi")
		}
		if odemeSayisi > 0 {
			return fiber.NewError(fiber.StatusConflict, "Müşteriye ait ödeme kayıtları var, önce ödemeleri silin")
		}

		if err := database.DB.Delete(&musteri).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteri silinemedi")
		}

		_ = audit.WriteLog(audit.LogOptions{
			EntityType:  "musteri",
			EntityID:    musteri.MusteriNo,
			Action:      models.AuditActionDelete,
			Description: "Müşteri silindi: " + musteri.TamAd(),
			Before:      musteri,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
