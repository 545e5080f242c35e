package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type insightsRequest struct {
	UserID         uuid.UUID  `json:"userID"`
	OrganizationID *uuid.UUID `json:"organizationID"`
}

func (m ApiHandler) insights(c *gin.Context) {
	var requestBody insightsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	strategies, err := m.DashboardHandler.GetInsights(
		context.Background(),
		requestBody.OrganizationID,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"strategies": strategies,
	})
}
