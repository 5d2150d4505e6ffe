package zeptomail

import (
	"net/url"
	"strings"
)

// ResolveEndpoint builds the send-mail URL.
//
// A non-empty customEndpoint always wins: its trailing slash is stripped and
// "/{apiVersion}/email" appended. Otherwise region (default "us") is looked up in
// regions and the URL becomes "https://api.zeptomail.{domain}/{apiVersion}/email".
// An unknown region or a malformed custom endpoint returns ErrInvalidConfig.
func ResolveEndpoint(region, customEndpoint, apiVersion string, regions map[string]string) (string, error) {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	if customEndpoint != "" {
		u, err := url.Parse(customEndpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", wrapConfigError("invalid custom endpoint %q", customEndpoint)
		}
		return strings.TrimRight(customEndpoint, "/") + "/" + apiVersion + "/email", nil
	}

	if region == "" {
		region = DefaultRegion
	}

	domain, ok := regions[region]
	if !ok {
		return "", wrapConfigError("invalid region %q", region)
	}

	return "https://api.zeptomail." + domain + "/" + apiVersion + "/email", nil
}
