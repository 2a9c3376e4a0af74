package parseutil

import "strings"

const (
	headsPrefix = "refs/heads/"
	tagsPrefix  = "refs/tags/"
)

// ParseRepoRef parses a slash separated repository reference into
// organization, project, and repository names.
//
// Example 1:
//    Input:
//           ref="iver-wharf/wharf/provider-azuredevops"
//   Output:
//           orgName="iver-wharf"
//       projectName="wharf"
//          repoName="provider-azuredevops"
//
// Example 2:
//    Input:
//           ref="iver-wharf/wharf"
//   Output:
//           orgName="iver-wharf"
//       projectName="wharf"
//          repoName=""
func ParseRepoRef(ref string) (orgName, projectName, repoName string) {
	orgName, rest := SplitStringOnceRune(strings.Trim(ref, "/"), '/')
	projectName, repoName = SplitStringOnceRune(rest, '/')
	return
}

// SplitStringOnceRune splits a string on the first occurrence of the
// delimiter. If the delimiter is not found then b is empty.
func SplitStringOnceRune(value string, delimiter rune) (a, b string) {
	const notFoundIndex = -1
	delimiterIndex := strings.IndexRune(value, delimiter)
	if delimiterIndex == notFoundIndex {
		a = value
		b = ""
		return
	}
	a = value[:delimiterIndex]
	b = value[delimiterIndex+1:] // +1 to skip the delimiter
	return
}

// TrimRefPrefix returns the short name of a Git ref, e.g "main" for
// "refs/heads/main" and "v1.0.0" for "refs/tags/v1.0.0". Other refs are
// returned as-is.
func TrimRefPrefix(ref string) string {
	if strings.HasPrefix(ref, headsPrefix) {
		return strings.TrimPrefix(ref, headsPrefix)
	}
	return strings.TrimPrefix(ref, tagsPrefix)
}

// IsTagRef reports whether the ref is a full tag ref, e.g "refs/tags/v1.0.0".
func IsTagRef(ref string) bool {
	return strings.HasPrefix(ref, tagsPrefix)
}

// BranchRef returns the full ref name of a branch. Names that already are
// full refs are returned as-is.
func BranchRef(branch string) string {
	if strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return headsPrefix + branch
}
