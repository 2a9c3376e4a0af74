package git

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Pull request statuses.
const (
	PullRequestStatusActive    = "active"
	PullRequestStatusAbandoned = "abandoned"
	PullRequestStatusCompleted = "completed"
	PullRequestStatusAll       = "all"
)

// Repository represents repository data retrieved from Azure DevOps.
type Repository struct {
	ID               uuid.UUID                   `json:"id"`
	Name             string                      `json:"name"`
	URL              string                      `json:"url,omitempty"`
	Project          webapi.TeamProjectReference `json:"project"`
	DefaultBranchRef string                      `json:"defaultBranch,omitempty"`
	Size             int64                       `json:"size,omitempty"`
	RemoteURL        string                      `json:"remoteUrl,omitempty"`
	SSHURL           string                      `json:"sshUrl,omitempty"`
	WebURL           string                      `json:"webUrl,omitempty"`
	IsDisabled       bool                        `json:"isDisabled,omitempty"`
	IsFork           bool                        `json:"isFork,omitempty"`
}

// NewRepository holds the data needed to create a repository.
type NewRepository struct {
	Name    string           `json:"name"`
	Project ProjectReference `json:"project"`
}

// ProjectReference references a project by ID.
type ProjectReference struct {
	ID string `json:"id"`
}

// RepositoryUpdate holds the fields of a repository that can be updated.
type RepositoryUpdate struct {
	Name             string `json:"name,omitempty"`
	DefaultBranchRef string `json:"defaultBranch,omitempty"`
}

// Ref is a Git reference, such as a branch or tag.
type Ref struct {
	Name           string              `json:"name"`
	ObjectID       string              `json:"objectId"`
	PeeledObjectID string              `json:"peeledObjectId,omitempty"`
	Creator        *webapi.IdentityRef `json:"creator,omitempty"`
	URL            string              `json:"url,omitempty"`
	IsLocked       bool                `json:"isLocked,omitempty"`
}

// Branch represents a branch of a repository.
type Branch struct {
	Name          string
	Ref           string
	ObjectID      string
	DefaultBranch bool
}

// Item is a file or folder in a repository.
type Item struct {
	ObjectID      string `json:"objectId"`
	GitObjectType string `json:"gitObjectType"`
	CommitID      string `json:"commitId"`
	Path          string `json:"path"`
	IsFolder      bool   `json:"isFolder,omitempty"`
	URL           string `json:"url,omitempty"`
	Content       string `json:"content,omitempty"`
}

// GitUserDate is the author or committer of a commit.
type GitUserDate struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Date  webapi.Time `json:"date"`
}

// Commit is a reference to a commit.
type Commit struct {
	CommitID     string         `json:"commitId"`
	Comment      string         `json:"comment,omitempty"`
	Author       *GitUserDate   `json:"author,omitempty"`
	Committer    *GitUserDate   `json:"committer,omitempty"`
	Parents      []string       `json:"parents,omitempty"`
	URL          string         `json:"url,omitempty"`
	RemoteURL    string         `json:"remoteUrl,omitempty"`
	ChangeCounts map[string]int `json:"changeCounts,omitempty"`
}

// Push is a push to a repository.
type Push struct {
	PushID     int                 `json:"pushId"`
	Date       webapi.Time         `json:"date"`
	PushedBy   *webapi.IdentityRef `json:"pushedBy,omitempty"`
	RefUpdates []RefUpdate         `json:"refUpdates,omitempty"`
	Commits    []Commit            `json:"commits,omitempty"`
	Repository *Repository         `json:"repository,omitempty"`
	URL        string              `json:"url,omitempty"`
}

// RefUpdate is a change of a single ref in a push.
type RefUpdate struct {
	Name        string `json:"name"`
	OldObjectID string `json:"oldObjectId"`
	NewObjectID string `json:"newObjectId"`
}

// PullRequest is a pull request of a repository.
type PullRequest struct {
	PullRequestID         int                   `json:"pullRequestId"`
	CodeReviewID          int                   `json:"codeReviewId,omitempty"`
	Status                string                `json:"status,omitempty"`
	CreatedBy             *webapi.IdentityRef   `json:"createdBy,omitempty"`
	CreationDate          webapi.Time           `json:"creationDate"`
	ClosedDate            webapi.Time           `json:"closedDate"`
	Title                 string                `json:"title,omitempty"`
	Description           string                `json:"description,omitempty"`
	SourceRefName         string                `json:"sourceRefName,omitempty"`
	TargetRefName         string                `json:"targetRefName,omitempty"`
	MergeStatus           string                `json:"mergeStatus,omitempty"`
	IsDraft               bool                  `json:"isDraft,omitempty"`
	MergeID               string                `json:"mergeId,omitempty"`
	LastMergeSourceCommit *Commit               `json:"lastMergeSourceCommit,omitempty"`
	LastMergeTargetCommit *Commit               `json:"lastMergeTargetCommit,omitempty"`
	Reviewers             []IdentityRefWithVote `json:"reviewers,omitempty"`
	Repository            *Repository           `json:"repository,omitempty"`
	URL                   string                `json:"url,omitempty"`
}

// IdentityRefWithVote is a reviewer of a pull request. A vote of 10 means
// approved, 5 approved with suggestions, 0 no vote, -5 waiting for author and
// -10 rejected.
type IdentityRefWithVote struct {
	webapi.IdentityRef
	Vote        int  `json:"vote"`
	IsRequired  bool `json:"isRequired,omitempty"`
	HasDeclined bool `json:"hasDeclined,omitempty"`
}

// NewPullRequest holds the data needed to create a pull request.
type NewPullRequest struct {
	SourceRefName string              `json:"sourceRefName"`
	TargetRefName string              `json:"targetRefName"`
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	IsDraft       bool                `json:"isDraft,omitempty"`
	Reviewers     []ReviewerReference `json:"reviewers,omitempty"`
}

// ReviewerReference references a reviewer by identity ID.
type ReviewerReference struct {
	ID string `json:"id"`
}

// PullRequestUpdate holds the fields of a pull request that can be updated.
// Completing a pull request requires LastMergeSourceCommit to be set.
type PullRequestUpdate struct {
	Status                string             `json:"status,omitempty"`
	Title                 string             `json:"title,omitempty"`
	Description           string             `json:"description,omitempty"`
	LastMergeSourceCommit *CommitReference   `json:"lastMergeSourceCommit,omitempty"`
	CompletionOptions     *CompletionOptions `json:"completionOptions,omitempty"`
}

// CommitReference references a commit by ID.
type CommitReference struct {
	CommitID string `json:"commitId"`
}

// CompletionOptions configures how a pull request is completed.
type CompletionOptions struct {
	DeleteSourceBranch bool   `json:"deleteSourceBranch,omitempty"`
	MergeCommitMessage string `json:"mergeCommitMessage,omitempty"`
	MergeStrategy      string `json:"mergeStrategy,omitempty"`
	BypassPolicy       bool   `json:"bypassPolicy,omitempty"`
}

// GetCommitsOptions filters the result of GetCommits.
type GetCommitsOptions struct {
	ItemVersion string `url:"searchCriteria.itemVersion.version,omitempty"`
	Author      string `url:"searchCriteria.author,omitempty"`
	FromDate    string `url:"searchCriteria.fromDate,omitempty"`
	ToDate      string `url:"searchCriteria.toDate,omitempty"`
	ItemPath    string `url:"searchCriteria.itemPath,omitempty"`
	Top         int    `url:"searchCriteria.$top,omitempty"`
	Skip        int    `url:"searchCriteria.$skip,omitempty"`
}

// GetPushesOptions filters the result of GetPushes.
type GetPushesOptions struct {
	RefName  string `url:"searchCriteria.refName,omitempty"`
	PusherID string `url:"searchCriteria.pusherId,omitempty"`
	Top      int    `url:"$top,omitempty"`
	Skip     int    `url:"$skip,omitempty"`
}

// GetPullRequestsOptions filters the result of GetPullRequests.
type GetPullRequestsOptions struct {
	Status        string `url:"searchCriteria.status,omitempty"`
	SourceRefName string `url:"searchCriteria.sourceRefName,omitempty"`
	TargetRefName string `url:"searchCriteria.targetRefName,omitempty"`
	CreatorID     string `url:"searchCriteria.creatorId,omitempty"`
	ReviewerID    string `url:"searchCriteria.reviewerId,omitempty"`
	Top           int    `url:"$top,omitempty"`
	Skip          int    `url:"$skip,omitempty"`
}
