// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package url

import (
	"fmt"
	"net/url"
)

// Build joins path segments onto a base URL, validating that the base
// actually names a host.
func Build(baseURL string, pathSegments ...string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("base URL %q is missing a scheme or host", baseURL)
	}

	for _, segment := range pathSegments {
		parsed = parsed.JoinPath(segment)
	}
	return parsed.String(), nil
}
