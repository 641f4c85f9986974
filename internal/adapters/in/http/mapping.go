package http

import (
	"fmt"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/workflow"
	"fulfillment/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// categoryFromRequest maps the API category vocabulary to the domain enum.
func categoryFromRequest(category servers.NewStageCategory) (workflow.StageCategory, error) {
	switch category {
	case servers.NewStageCategoryPending:
		return workflow.CategoryPending, nil
	case servers.NewStageCategoryProcessing:
		return workflow.CategoryProcessing, nil
	case servers.NewStageCategoryShipped:
		return workflow.CategoryShipped, nil
	case servers.NewStageCategoryDelivered:
		return workflow.CategoryDelivered, nil
	case servers.NewStageCategoryOther:
		return workflow.CategoryOther, nil
	default:
		return workflow.UnknownCategory, fmt.Errorf("%q is not a recognized category", string(category))
	}
}

// stagesFromRequest constructs domain stages from an API stage list.
// Stages omitted fields default the way the API documents: visible to
// customers, not terminal, no triggers.
func stagesFromRequest(raw []servers.NewStage) ([]workflow.Stage, error) {
	stages := make([]workflow.Stage, 0, len(raw))
	for _, item := range raw {
		category, err := categoryFromRequest(item.Category)
		if err != nil {
			return nil, err
		}

		var triggers []workflow.ExternalStatusCode
		if item.ExternalStatusTriggers != nil {
			triggers = make([]workflow.ExternalStatusCode, 0, len(*item.ExternalStatusTriggers))
			for _, code := range *item.ExternalStatusTriggers {
				trigger, codeErr := workflow.ExternalStatusCodeFromString(code)
				if codeErr != nil {
					return nil, codeErr
				}
				triggers = append(triggers, trigger)
			}
		}

		customerVisible := true
		if item.CustomerVisible != nil {
			customerVisible = *item.CustomerVisible
		}

		stage, err := workflow.NewStage(
			item.Id,
			item.Index,
			item.Label,
			category,
			boolValue(item.IsTerminal),
			customerVisible,
			triggers,
		)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return stages, nil
}

// stageFromDomain projects a domain stage onto the API schema.
func stageFromDomain(stage workflow.Stage) servers.Stage {
	triggers := stage.ExternalStatusTriggers()
	rawTriggers := make([]string, 0, len(triggers))
	for _, trigger := range triggers {
		rawTriggers = append(rawTriggers, string(trigger))
	}

	return servers.Stage{
		Id:                     stage.ID(),
		Index:                  stage.Index(),
		Label:                  stage.Label(),
		Category:               stage.Category().String(),
		IsTerminal:             stage.IsTerminal(),
		CustomerVisible:        stage.CustomerVisible(),
		ExternalStatusTriggers: rawTriggers,
	}
}

// workflowFromDomain projects a definition aggregate onto the API schema.
func workflowFromDomain(definition *workflow.Definition) servers.Workflow {
	stages := definition.Stages()
	views := make([]servers.Stage, 0, len(stages))
	for _, stage := range stages {
		views = append(views, stageFromDomain(stage))
	}

	return servers.Workflow{
		Id:        definition.ID().Bytes(),
		Name:      definition.Name(),
		IsDefault: definition.IsDefault(),
		Stages:    views,
	}
}

// workflowFromQuery projects the workflow query response onto the API schema.
func workflowFromQuery(response queries.GetWorkflowQueryResponse) servers.Workflow {
	stages := make([]servers.Stage, 0, len(response.Stages))
	for _, stage := range response.Stages {
		stages = append(stages, servers.Stage{
			Id:                     stage.ID,
			Index:                  stage.Index,
			Label:                  stage.Label,
			Category:               stage.Category,
			IsTerminal:             stage.IsTerminal,
			CustomerVisible:        stage.CustomerVisible,
			ExternalStatusTriggers: stage.ExternalStatusTriggers,
		})
	}

	return servers.Workflow{
		Id:        response.ID.Bytes(),
		Name:      response.Name,
		IsDefault: response.IsDefault,
		Stages:    stages,
	}
}

// progressFromQuery projects the progress query response onto the API schema.
func progressFromQuery(response queries.GetProgressQueryResponse) servers.Progress {
	history := make([]servers.Transition, 0, len(response.History))
	for _, entry := range response.History {
		view := servers.Transition{
			FromStageId: entry.FromStageID,
			ToStageId:   entry.ToStageID,
			Source:      entry.Source,
			IsOverride:  entry.IsOverride,
			OccurredAt:  entry.OccurredAt,
		}
		if entry.Reason != "" {
			reason := entry.Reason
			view.Reason = &reason
		}
		if entry.Notes != "" {
			notes := entry.Notes
			view.Notes = &notes
		}
		if entry.ActorID != nil {
			actorID := openapi_types.UUID(entry.ActorID.Bytes())
			view.ActorId = &actorID
		}
		history = append(history, view)
	}

	return servers.Progress{
		OrderId:      response.OrderID.Bytes(),
		WorkflowId:   response.WorkflowID.Bytes(),
		WorkflowName: response.WorkflowName,
		CurrentStage: servers.Stage{
			Id:                     response.CurrentStage.ID,
			Index:                  response.CurrentStage.Index,
			Label:                  response.CurrentStage.Label,
			Category:               response.CurrentStage.Category,
			IsTerminal:             response.CurrentStage.IsTerminal,
			CustomerVisible:        response.CurrentStage.CustomerVisible,
			ExternalStatusTriggers: make([]string, 0),
		},
		CoarseStatus:    response.CoarseStatus,
		AutoSyncEnabled: response.AutoSyncEnabled,
		Version:         response.Version,
		History:         history,
	}
}
