package audit

import (
	"fmt"

	"banka-backend/internal/database"
	"banka-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogResponse struct {
	ID          uint   `json:"id"`
	CreatedAt   string `json:"created_at"`
	EntityType  string `json:"entity_type"`
	EntityID    uint   `json:"entity_id"`
	Action      string `json:"action"`
	Description string `json:"description"`
	BeforeData  string `json:"before_data"`
	AfterData   string `json:"after_data"`
}

// GET /api/audit-logs?limit=50
func ListLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if limitStr := c.Query("limit"); limitStr != "" {
			if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit geçersiz")
			}
		}

		var logs []models.AuditLog
		if err := database.DB.Order("created_at DESC, id DESC").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Loglar listelenemedi")
		}

		res := make([]LogResponse, 0, len(logs))
		for _, l := range logs {
			res = append(res, LogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      string(l.Action),
				Description: l.Description,
				BeforeData:  l.BeforeData,
				AfterData:   l.AfterData,
			})
		}

		return c.JSON(res)
	}
}
