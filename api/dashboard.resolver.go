package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type dashboardRequest struct {
	UserID         uuid.UUID  `json:"userID"`
	OrganizationID *uuid.UUID `json:"organizationID"`
	Period         string     `json:"period"`
}

func (m ApiHandler) dashboard(c *gin.Context) {
	var requestBody dashboardRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.DashboardHandler.GetDashboard(
		context.Background(),
		requestBody.OrganizationID,
		requestBody.Period,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
