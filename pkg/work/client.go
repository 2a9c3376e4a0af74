// Package work implements the work area of the Azure DevOps REST API, which
// manages the iterations, area paths and backlogs of teams.
package work

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the work area of the Azure DevOps API. An empty
// team name means the default team of the connection's project.
type Client interface {
	GetTeamSettings(ctx context.Context, team string) (TeamSetting, error)
	// GetTeamIterations gets the iterations of a team. The time frame is
	// optional, see TimeFrameCurrent.
	GetTeamIterations(ctx context.Context, team, timeFrame string) ([]TeamSettingsIteration, error)
	GetTeamIteration(ctx context.Context, team string, iterationID uuid.UUID) (TeamSettingsIteration, error)
	// AddTeamIteration selects an existing iteration for a team.
	AddTeamIteration(ctx context.Context, team string, iterationID uuid.UUID) (TeamSettingsIteration, error)
	DeleteTeamIteration(ctx context.Context, team string, iterationID uuid.UUID) error
	GetTeamFieldValues(ctx context.Context, team string) (TeamFieldValues, error)
	GetBacklogs(ctx context.Context, team string) ([]BacklogLevel, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new work Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(team string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	if team == "" {
		return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
	}
	return c.conn.TeamURL(connection.ServiceDefault, team, apiVersion, queries, format, values...)
}

func (c *client) GetTeamSettings(ctx context.Context, team string) (TeamSetting, error) {
	u, err := c.url(team, nil, "work/teamsettings")
	if err != nil {
		return TeamSetting{}, err
	}
	var settings TeamSetting
	if err := c.conn.GetUnmarshalJSON(ctx, &settings, u); err != nil {
		return TeamSetting{}, fmt.Errorf("get settings of team %q: %w", team, err)
	}
	return settings, nil
}

func (c *client) GetTeamIterations(ctx context.Context, team, timeFrame string) ([]TeamSettingsIteration, error) {
	q := url.Values{}
	if timeFrame != "" {
		q.Set("$timeframe", timeFrame)
	}
	u, err := c.url(team, q, "work/teamsettings/iterations")
	if err != nil {
		return nil, err
	}
	var iterations webapi.List[TeamSettingsIteration]
	if err := c.conn.GetUnmarshalJSON(ctx, &iterations, u); err != nil {
		return nil, fmt.Errorf("get iterations of team %q: %w", team, err)
	}
	return iterations.Value, nil
}

func (c *client) GetTeamIteration(ctx context.Context, team string, iterationID uuid.UUID) (TeamSettingsIteration, error) {
	u, err := c.url(team, nil, "work/teamsettings/iterations/%s", iterationID)
	if err != nil {
		return TeamSettingsIteration{}, err
	}
	var iteration TeamSettingsIteration
	if err := c.conn.GetUnmarshalJSON(ctx, &iteration, u); err != nil {
		return TeamSettingsIteration{}, fmt.Errorf("get iteration %s of team %q: %w", iterationID, team, err)
	}
	return iteration, nil
}

func (c *client) AddTeamIteration(ctx context.Context, team string, iterationID uuid.UUID) (TeamSettingsIteration, error) {
	u, err := c.url(team, nil, "work/teamsettings/iterations")
	if err != nil {
		return TeamSettingsIteration{}, err
	}
	var iteration TeamSettingsIteration
	body := map[string]string{"id": iterationID.String()}
	if err := c.conn.PostJSON(ctx, &iteration, u, body); err != nil {
		return TeamSettingsIteration{}, fmt.Errorf("add iteration %s to team %q: %w", iterationID, team, err)
	}
	return iteration, nil
}

func (c *client) DeleteTeamIteration(ctx context.Context, team string, iterationID uuid.UUID) error {
	u, err := c.url(team, nil, "work/teamsettings/iterations/%s", iterationID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("remove iteration %s from team %q: %w", iterationID, team, err)
	}
	return nil
}

func (c *client) GetTeamFieldValues(ctx context.Context, team string) (TeamFieldValues, error) {
	u, err := c.url(team, nil, "work/teamsettings/teamfieldvalues")
	if err != nil {
		return TeamFieldValues{}, err
	}
	var values TeamFieldValues
	if err := c.conn.GetUnmarshalJSON(ctx, &values, u); err != nil {
		return TeamFieldValues{}, fmt.Errorf("get field values of team %q: %w", team, err)
	}
	return values, nil
}

func (c *client) GetBacklogs(ctx context.Context, team string) ([]BacklogLevel, error) {
	u, err := c.url(team, nil, "work/backlogs")
	if err != nil {
		return nil, err
	}
	var backlogs webapi.List[BacklogLevel]
	if err := c.conn.GetUnmarshalJSON(ctx, &backlogs, u); err != nil {
		return nil, fmt.Errorf("get backlogs of team %q: %w", team, err)
	}
	return backlogs.Value, nil
}
