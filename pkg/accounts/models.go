package accounts

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Account is an Azure DevOps organization the member has access to.
type Account struct {
	AccountID   uuid.UUID   `json:"accountId"`
	AccountURI  string      `json:"accountUri"`
	AccountName string      `json:"accountName"`
	Properties  interface{} `json:"properties,omitempty"`
}

// Profile is the profile of a user.
type Profile struct {
	ID           uuid.UUID   `json:"id"`
	DisplayName  string      `json:"displayName"`
	PublicAlias  string      `json:"publicAlias"`
	EmailAddress string      `json:"emailAddress"`
	CoreRevision int         `json:"coreRevision"`
	TimeStamp    webapi.Time `json:"timeStamp"`
	Revision     int         `json:"revision"`
}
