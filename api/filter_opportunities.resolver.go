package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type filterOpportunitiesRequest struct {
	UserID         uuid.UUID `json:"userID"`
	OrganizationID uuid.UUID `json:"organizationID"`
	Expression     string    `json:"expression"`
}

func (m ApiHandler) filterOpportunities(c *gin.Context) {
	var requestBody filterOpportunitiesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if requestBody.Expression == "" {
		returnErrorJsonCode(fmt.Errorf("expression is required"), c, 400)
		return
	}

	opportunities, err := m.OpportunityRepository.List(requestBody.OrganizationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	clients, err := m.ClientRepository.List(requestBody.OrganizationID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	matched, err := m.FilterExpressionService.FilterOpportunities(requestBody.Expression, opportunities, clients, time.Now().UTC())
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{
		"opportunities": matched,
	})
}
