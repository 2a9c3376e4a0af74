package work

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Iteration time frames.
const (
	TimeFramePast    = "past"
	TimeFrameCurrent = "current"
	TimeFrameFuture  = "future"
)

// TeamSetting holds the settings of a team.
type TeamSetting struct {
	BacklogIteration      *TeamSettingsIteration `json:"backlogIteration,omitempty"`
	DefaultIteration      *TeamSettingsIteration `json:"defaultIteration,omitempty"`
	BacklogVisibilities   map[string]bool        `json:"backlogVisibilities,omitempty"`
	BugsBehavior          string                 `json:"bugsBehavior,omitempty"`
	WorkingDays           []string               `json:"workingDays,omitempty"`
	DefaultIterationMacro string                 `json:"defaultIterationMacro,omitempty"`
	URL                   string                 `json:"url,omitempty"`
}

// TeamSettingsIteration is an iteration selected by a team.
type TeamSettingsIteration struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	Path       string               `json:"path"`
	Attributes *IterationAttributes `json:"attributes,omitempty"`
	URL        string               `json:"url,omitempty"`
}

// IterationAttributes holds the dates of an iteration.
type IterationAttributes struct {
	StartDate  *webapi.Time `json:"startDate,omitempty"`
	FinishDate *webapi.Time `json:"finishDate,omitempty"`
	TimeFrame  string       `json:"timeFrame,omitempty"`
}

// TeamFieldValues are the area paths owned by a team.
type TeamFieldValues struct {
	DefaultValue string           `json:"defaultValue"`
	Field        FieldReference   `json:"field"`
	Values       []TeamFieldValue `json:"values"`
	URL          string           `json:"url,omitempty"`
}

// FieldReference references a work item field.
type FieldReference struct {
	ReferenceName string `json:"referenceName"`
	URL           string `json:"url,omitempty"`
}

// TeamFieldValue is a single area path of a team.
type TeamFieldValue struct {
	Value           string `json:"value"`
	IncludeChildren bool   `json:"includeChildren"`
}

// BacklogLevel is a backlog of a team, e.g "Epics" or "Stories".
type BacklogLevel struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Rank                int                     `json:"rank"`
	Type                string                  `json:"type"`
	IsHidden            bool                    `json:"isHidden"`
	WorkItemTypes       []WorkItemTypeReference `json:"workItemTypes,omitempty"`
	DefaultWorkItemType *WorkItemTypeReference  `json:"defaultWorkItemType,omitempty"`
	Color               string                  `json:"color,omitempty"`
}

// WorkItemTypeReference references a work item type by name.
type WorkItemTypeReference struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}
