package parseutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStringOnceRune(t *testing.T) {
	var testCases = []struct {
		name  string
		input string
		wantA string
		wantB string
	}{
		{
			name:  "empty string",
			input: "",
			wantA: "",
			wantB: "",
		},
		{
			name:  "no delimiter",
			input: "foo",
			wantA: "foo",
			wantB: "",
		},
		{
			name:  "no latter",
			input: "foo/",
			wantA: "foo",
			wantB: "",
		},
		{
			name:  "no former",
			input: "/foo",
			wantA: "",
			wantB: "foo",
		},
		{
			name:  "only split on first delim",
			input: "foo/bar/moo",
			wantA: "foo",
			wantB: "bar/moo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotA, gotB := SplitStringOnceRune(tc.input, '/')
			assert.Equal(t, tc.wantA, gotA)
			assert.Equal(t, tc.wantB, gotB)
		})
	}
}

func TestParseRepoRef(t *testing.T) {
	var testCases = []struct {
		name        string
		ref         string
		wantOrg     string
		wantProject string
		wantRepo    string
	}{
		{
			name:        "org only",
			ref:         "Org",
			wantOrg:     "Org",
			wantProject: "",
			wantRepo:    "",
		},
		{
			name:        "org and project",
			ref:         "Org/Proj",
			wantOrg:     "Org",
			wantProject: "Proj",
			wantRepo:    "",
		},
		{
			name:        "full ref",
			ref:         "Org/Proj/Repo",
			wantOrg:     "Org",
			wantProject: "Proj",
			wantRepo:    "Repo",
		},
		{
			name:        "surrounding slashes",
			ref:         "/Org/Proj/Repo/",
			wantOrg:     "Org",
			wantProject: "Proj",
			wantRepo:    "Repo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotOrg, gotProject, gotRepo := ParseRepoRef(tc.ref)
			assert.Equal(t, tc.wantOrg, gotOrg)
			assert.Equal(t, tc.wantProject, gotProject)
			assert.Equal(t, tc.wantRepo, gotRepo)
		})
	}
}

func TestTrimRefPrefix(t *testing.T) {
	assert.Equal(t, "main", TrimRefPrefix("refs/heads/main"))
	assert.Equal(t, "feature/foo", TrimRefPrefix("refs/heads/feature/foo"))
	assert.Equal(t, "v1.0.0", TrimRefPrefix("refs/tags/v1.0.0"))
	assert.Equal(t, "refs/pull/1/merge", TrimRefPrefix("refs/pull/1/merge"))
}

func TestIsTagRef(t *testing.T) {
	assert.True(t, IsTagRef("refs/tags/v1.0.0"))
	assert.False(t, IsTagRef("refs/heads/v1.0.0"))
	assert.False(t, IsTagRef("v1.0.0"))
}

func TestBranchRef(t *testing.T) {
	assert.Equal(t, "refs/heads/main", BranchRef("main"))
	assert.Equal(t, "refs/heads/main", BranchRef("refs/heads/main"))
}
