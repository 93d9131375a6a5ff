// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// AzureLineHighlight makes the Azure DevOps viewer highlight whole lines in
// plain style on the contents tab.
const AzureLineHighlight = "&lineStartColumn=1&lineEndColumn=1&lineStyle=plain&_a=contents"

var azureProjectRe = regexp.MustCompile(`https://dev\.azure\.com/([^/]+)/([^/]+)`)

// AzureProject identifies an Azure DevOps project.
type AzureProject struct {
	Org     string
	Project string
}

// ParseAzureURL extracts the organization and project from a
// https://dev.azure.com/<org>/<project> URL. Extra path segments are ignored.
func ParseAzureURL(remoteURL string) (AzureProject, bool) {
	m := azureProjectRe.FindStringSubmatch(remoteURL)
	if m == nil {
		return AzureProject{}, false
	}
	return AzureProject{Org: m[1], Project: m[2]}, true
}

// BuildAzureSourceURL addresses a file on a branch of the project's default
// repository. lineFragment is appended verbatim.
func BuildAzureSourceURL(remoteURL, branch, path, lineFragment string) (string, bool) {
	p, ok := ParseAzureURL(remoteURL)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("https://dev.azure.com/%s/%s/_git/%s?path=%s&version=GB%s%s",
		p.Org, p.Project, p.Project, encodeURIComponent(path), branch, lineFragment), true
}

// uriComponentUnescaper restores the characters encodeURIComponent leaves
// alone but url.QueryEscape escapes.
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s like the ECMAScript function of the
// same name: "/" becomes %2F and spaces become %20.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
