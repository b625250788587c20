package customer

import (
	"fmt"

	"banka-backend/internal/database"
	"banka-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/musteriler/export
// Müşteri listesini xlsx olarak indirir.
func ExportCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var musteriler []models.Musteri
		if err := database.DB.Order("musteri_no").Find(&musteriler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Müşteriler"
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		headers := []string{"Müşteri No", "Ad", "Soyad", "Telefon", "Şube", "Cinsiyet", "Doğum Tarihi", "Kayıt Tarihi", "Kredi Notu", "Kredi Tutarı"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
			}
		}

		for row, m := range musteriler {
			values := []any{
				m.MusteriNo,
				m.Ad,
				m.Soyad,
				m.Telefon,
				m.Sube,
				m.Cinsiyet,
				m.DogumTarihi.Format("2006-01-02"),
				m.KayitTarihi.Format("2006-01-02 15:04:05"),
				m.KrediNotu,
				m.KrediTutari,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
				}
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "musteriler.xlsx"))
		return c.Send(buf.Bytes())
	}
}
