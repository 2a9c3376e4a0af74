package requests

import (
	"net/url"
)

const redacted = "*REDACTED*"

var redactedQueryParams = []string{"token", "Token", "client_assertion", "assertion"}

func redactTokenInURL(urlStr string) string {
	if urlStr == "" {
		return ""
	}

	uri, err := url.Parse(urlStr)
	if err != nil {
		log.Warn().WithError(err).Message("Unable to redact token from URL: parse URL.")
		return ""
	}

	params, err := url.ParseQuery(uri.RawQuery)
	if err != nil {
		log.Warn().WithError(err).Message("Unable to redact token from URL: parse query.")
		return ""
	}

	changed := false
	for _, key := range redactedQueryParams {
		if params.Get(key) != "" {
			params.Set(key, redacted)
			changed = true
		}
	}
	if uri.User != nil {
		uri.User = url.User(uri.User.Username())
	}
	if changed {
		uri.RawQuery = params.Encode()
	}

	return uri.String()
}
