package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

// FilterExpressionService evaluates the advanced-filter panel's boolean
// expressions against opportunities, e.g.
//
//	value > 1000 && stage == "proposal" && daysInStage(7)
//
// Each opportunity is evaluated independently with its own variable set;
// an expression that does not yield a boolean is an error.
type FilterExpressionService interface {
	FilterOpportunities(expression string, opportunities []model.Opportunity, clients []model.Client, now time.Time) ([]model.Opportunity, error)
}

type filterExpressionServiceHandler struct{}

func NewFilterExpressionService() FilterExpressionService {
	return filterExpressionServiceHandler{}
}

func (h filterExpressionServiceHandler) FilterOpportunities(
	expression string,
	opportunities []model.Opportunity,
	clients []model.Client,
	now time.Time,
) ([]model.Opportunity, error) {
	clientStatusByID := map[uuid.UUID]model.ClientStatus{}
	for _, client := range clients {
		clientStatusByID[client.ClientID] = EffectiveClientStatus(client)
	}

	eval := goval.NewEvaluator()
	matched := []model.Opportunity{}

	for _, opp := range opportunities {
		variables := opportunityVariables(opp, clientStatusByID)
		functions := constructFunctionMap(opp, now)

		result, err := eval.Evaluate(expression, variables, functions)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter expression: %w", err)
		}

		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
		}
		if keep {
			matched = append(matched, opp)
		}
	}

	return matched, nil
}

func opportunityVariables(opp model.Opportunity, clientStatusByID map[uuid.UUID]model.ClientStatus) map[string]interface{} {
	value := 0.0
	if opp.Value != nil {
		value = opp.Value.InexactFloat64()
	}
	probability := 0
	if opp.Probability != nil {
		probability = int(*opp.Probability)
	}
	clientStatus := ""
	if opp.ClientID != nil {
		clientStatus = clientStatusByID[*opp.ClientID].String()
	}

	return map[string]interface{}{
		"title":        opp.Title,
		"value":        value,
		"stage":        opp.Stage.String(),
		"probability":  probability,
		"clientStatus": clientStatus,
		"isOpen":       opp.Stage != model.OpportunityStage_ClosedWon && opp.Stage != model.OpportunityStage_ClosedLost,
	}
}

func constructFunctionMap(opp model.Opportunity, now time.Time) map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		// daysInStage(n) - true when the opportunity's stage has been
		// unchanged for more than n days
		"daysInStage": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return false, fmt.Errorf("daysInStage needs 1 arg, got %d", len(args))
			}
			n, ok := args[0].(int)
			if !ok {
				return false, fmt.Errorf("daysInStage arg must be an int, got %T", args[0])
			}
			return now.Sub(opportunityUpdatedAt(opp)).Hours() > float64(24*n), nil
		},

		// titleContains(substr) - case-insensitive substring match
		"titleContains": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return false, fmt.Errorf("titleContains needs 1 arg, got %d", len(args))
			}
			substr, ok := args[0].(string)
			if !ok {
				return false, fmt.Errorf("titleContains arg must be a string, got %T", args[0])
			}
			return strings.Contains(strings.ToLower(opp.Title), strings.ToLower(substr)), nil
		},

		// closesWithin(n) - expected close date falls within the next n days
		"closesWithin": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return false, fmt.Errorf("closesWithin needs 1 arg, got %d", len(args))
			}
			n, ok := args[0].(int)
			if !ok {
				return false, fmt.Errorf("closesWithin arg must be an int, got %T", args[0])
			}
			if opp.ExpectedCloseDate == nil {
				return false, nil
			}
			deadline := now.AddDate(0, 0, n)
			return !opp.ExpectedCloseDate.Before(now) && !opp.ExpectedCloseDate.After(deadline), nil
		},
	}
}
