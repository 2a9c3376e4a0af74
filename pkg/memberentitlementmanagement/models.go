package memberentitlementmanagement

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Account license types.
const (
	LicenseExpress      = "express"
	LicenseStakeholder  = "stakeholder"
	LicenseAdvanced     = "advanced"
	LicenseEarlyAdopter = "earlyAdopter"
	LicenseProfessional = "professional"
)

// AccessLevel is the license of a user or group.
type AccessLevel struct {
	AccountLicenseType string `json:"accountLicenseType,omitempty"`
	LicensingSource    string `json:"licensingSource,omitempty"`
	LicenseDisplayName string `json:"licenseDisplayName,omitempty"`
	Status             string `json:"status,omitempty"`
	StatusMessage      string `json:"statusMessage,omitempty"`
}

// GraphMember is the graph subject an entitlement is for.
type GraphMember struct {
	Descriptor    string `json:"descriptor,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	MailAddress   string `json:"mailAddress,omitempty"`
	PrincipalName string `json:"principalName,omitempty"`
	Origin        string `json:"origin,omitempty"`
	OriginID      string `json:"originId,omitempty"`
	SubjectKind   string `json:"subjectKind,omitempty"`
}

// UserEntitlement is the license and extensions of a user.
type UserEntitlement struct {
	ID                  uuid.UUID            `json:"id"`
	User                GraphMember          `json:"user"`
	AccessLevel         AccessLevel          `json:"accessLevel"`
	LastAccessedDate    webapi.Time          `json:"lastAccessedDate"`
	DateCreated         webapi.Time          `json:"dateCreated"`
	ProjectEntitlements []ProjectEntitlement `json:"projectEntitlements,omitempty"`
}

// ProjectEntitlement is the membership of a user or group in a project.
type ProjectEntitlement struct {
	Group      ProjectGroup `json:"group"`
	ProjectRef ProjectRef   `json:"projectRef"`
}

// ProjectGroup is the project group a user or group is a member of.
type ProjectGroup struct {
	GroupType   string `json:"groupType"`
	DisplayName string `json:"displayName,omitempty"`
}

// ProjectRef references a project.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// UserEntitlementList is a page of user entitlements.
type UserEntitlementList struct {
	Members           []UserEntitlement `json:"members"`
	ContinuationToken string            `json:"continuationToken,omitempty"`
	TotalCount        int               `json:"totalCount,omitempty"`
}

// UserEntitlementsPatchResponse is the result of updating a user
// entitlement.
type UserEntitlementsPatchResponse struct {
	IsSuccess        bool              `json:"isSuccess"`
	UserEntitlement  *UserEntitlement  `json:"userEntitlement,omitempty"`
	OperationResults []OperationResult `json:"operationResults,omitempty"`
}

// OperationResult is the result of a single entitlement operation.
type OperationResult struct {
	IsSuccess bool       `json:"isSuccess"`
	Errors    []KeyValue `json:"errors,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	GroupID   string     `json:"groupId,omitempty"`
}

// KeyValue is an error code and message pair.
type KeyValue struct {
	Key   interface{} `json:"key"`
	Value string      `json:"value"`
}

// GroupEntitlement is the license rule of a group.
type GroupEntitlement struct {
	ID                  string               `json:"id,omitempty"`
	Group               GraphMember          `json:"group"`
	LicenseRule         AccessLevel          `json:"licenseRule"`
	ProjectEntitlements []ProjectEntitlement `json:"projectEntitlements,omitempty"`
	Status              string               `json:"status,omitempty"`
}

// GroupEntitlementOperationReference references a queued group entitlement
// operation.
type GroupEntitlementOperationReference struct {
	ID                   uuid.UUID `json:"id"`
	Status               string    `json:"status"`
	URL                  string    `json:"url,omitempty"`
	Completed            bool      `json:"completed,omitempty"`
	HaveResultsSucceeded bool      `json:"haveResultsSucceeded,omitempty"`
}

// GetUserEntitlementsOptions filters and pages GetUserEntitlements.
type GetUserEntitlementsOptions struct {
	// Filter is an OData style filter, e.g
	// "licenseId eq 'Account-Stakeholder'".
	Filter            string `url:"$filter,omitempty"`
	OrderBy           string `url:"$orderBy,omitempty"`
	ContinuationToken string `url:"continuationToken,omitempty"`
	Select            string `url:"select,omitempty"`
}
