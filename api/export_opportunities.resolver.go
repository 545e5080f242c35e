package api

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type exportOpportunitiesRequest struct {
	UserID         uuid.UUID `json:"userID"`
	OrganizationID uuid.UUID `json:"organizationID"`
}

func (m ApiHandler) exportOpportunities(c *gin.Context) {
	var requestBody exportOpportunitiesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	var buf bytes.Buffer
	err := m.ExportService.ExportOpportunitiesCSV(requestBody.OrganizationID, &buf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="opportunities.csv"`)
	c.Data(200, "text/csv", buf.Bytes())
}
