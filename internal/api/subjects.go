package api

import (
	"context"
	"net/http"

	"github.com/GrinOnFace/Educat/internal/models"
)

// Subjects возвращает справочник предметов
func (c *Client) Subjects(ctx context.Context, token string) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := c.do(ctx, http.MethodGet, "/Dictionary/subjects", token, nil, nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}
