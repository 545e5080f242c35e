package api

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type generateStrategyRequest struct {
	UserID         uuid.UUID `json:"userID"`
	OrganizationID uuid.UUID `json:"organizationID"`
	CompanyName    string    `json:"companyName"`
	Objective      string    `json:"objective"`
	TargetSegment  string    `json:"targetSegment"`
}

func (m ApiHandler) generateStrategy(c *gin.Context) {
	var requestBody generateStrategyRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if requestBody.Objective == "" {
		returnErrorJsonCode(fmt.Errorf("objective is required"), c, 400)
		return
	}
	if m.SupabaseDecodeToken != "" && m.userIDFromRequest(c) == nil {
		returnErrorJsonCode(fmt.Errorf("not authorized"), c, 403)
		return
	}

	content, err := m.GptRepository.GenerateMarketingStrategy(
		context.Background(),
		requestBody.CompanyName,
		requestBody.Objective,
		requestBody.TargetSegment,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	gptModel := "gpt-3.5-turbo"
	saved, err := m.SavedStrategyRepository.Add(model.SavedStrategy{
		OrganizationID: requestBody.OrganizationID,
		Title:          fmt.Sprintf("Marketing strategy: %s", requestBody.Objective),
		Objective:      requestBody.Objective,
		Content:        content,
		Model:          &gptModel,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, saved)
}
