package service

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"agencyhub/internal/repository"
	"bytes"
	"fmt"
	"html/template"
)

// EmailService renders and sends the insight digest email. It does NOT
// compute insights - those are passed in as domain objects.
type EmailService interface {
	SendInsightDigestEmail(organization *model.Organization, strategies []domain.Strategy) error

	// GenerateInsightDigestEmail returns the subject and HTML body without
	// sending, for previews and tests.
	GenerateInsightDigestEmail(organization *model.Organization, strategies []domain.Strategy) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
}

func NewEmailService(emailRepository repository.EmailRepository) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
	}
}

var digestTemplate = template.Must(template.New("insightDigest").Parse(`
<html>
<body style="font-family: sans-serif;">
<h2>Recommended actions for {{.OrganizationName}}</h2>
{{range .Strategies}}
<div style="margin-bottom: 16px;">
	<h3>{{.Title}} <small>({{.Priority}} priority)</small></h3>
	<p>{{.Description}}</p>
	<ul>
	{{range .ActionItems}}<li>{{.}}</li>{{end}}
	</ul>
</div>
{{end}}
<p>These recommendations were generated from your current pipeline, client and task data.</p>
</body>
</html>
`))

type digestTemplateData struct {
	OrganizationName string
	Strategies       []domain.Strategy
}

func (h *emailServiceHandler) SendInsightDigestEmail(organization *model.Organization, strategies []domain.Strategy) error {
	if organization.OwnerEmail == nil {
		return fmt.Errorf("organization %s has no owner email", organization.OrganizationID)
	}

	subject, body, err := h.GenerateInsightDigestEmail(organization, strategies)
	if err != nil {
		return err
	}

	err = h.EmailRepository.SendEmail(*organization.OwnerEmail, subject, body)
	if err != nil {
		return fmt.Errorf("failed to send insight digest to %s: %w", organization.OrganizationID, err)
	}

	return nil
}

func (h *emailServiceHandler) GenerateInsightDigestEmail(organization *model.Organization, strategies []domain.Strategy) (string, string, error) {
	subject := fmt.Sprintf("%s: %d recommended actions for your agency", organization.Name, len(strategies))

	var body bytes.Buffer
	err := digestTemplate.Execute(&body, digestTemplateData{
		OrganizationName: organization.Name,
		Strategies:       strategies,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render insight digest: %w", err)
	}

	return subject, body.String(), nil
}
