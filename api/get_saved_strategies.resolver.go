package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type getSavedStrategiesRequest struct {
	UserID         uuid.UUID `json:"userID"`
	OrganizationID uuid.UUID `json:"organizationID"`
}

func (m ApiHandler) getSavedStrategies(c *gin.Context) {
	var requestBody getSavedStrategiesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	strategies, err := m.SavedStrategyRepository.List(requestBody.OrganizationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"savedStrategies": strategies,
	})
}
