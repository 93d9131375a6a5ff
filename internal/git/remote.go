// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

const originRemote = "origin"

var (
	originLineRe = regexp.MustCompile(`^origin\s+(\S+)`)

	scpRemoteRe = regexp.MustCompile(`^git@([^:]+):(.+)$`)
	sshRemoteRe = regexp.MustCompile(`^ssh://(?:[^@/]+@)?([^:/]+)(?::\d+)?/(.+)$`)

	azureSSHRe    = regexp.MustCompile(`^git@ssh\.dev\.azure\.com:v3/([^/]+)/([^/]+)/[^/]+$`)
	azureLegacyRe = regexp.MustCompile(`^https://([^./]+)\.visualstudio\.com/([^/]+)`)
)

// ResolveRemote reads the origin fetch URL of the repository containing
// workspacePath and classifies it by hosting provider. Any failure yields
// types.UnknownRemote().
func ResolveRemote(ctx context.Context, runner Runner, workspacePath string) types.RemoteInfo {
	log := zerolog.Ctx(ctx)

	out, err := runner.Run(ctx, workspacePath, "remote", "-v")
	if err != nil {
		log.Debug().Err(err).Str("dir", workspacePath).Msg("git remote lookup failed")
		return types.UnknownRemote()
	}
	if strings.TrimSpace(out) == "" {
		log.Debug().Str("dir", workspacePath).Msg("repository has no remotes")
		return types.UnknownRemote()
	}

	rawURL, ok := originFetchURL(out)
	if !ok {
		log.Debug().Str("dir", workspacePath).Msg("no origin fetch remote")
		return types.UnknownRemote()
	}
	if !isValidRemoteURL(rawURL) {
		log.Debug().Str("url", rawURL).Msg("origin remote is not a valid URL")
		return types.UnknownRemote()
	}

	return NormalizeRemote(rawURL)
}

// originFetchURL extracts the URL of the origin remote's fetch line from
// `git remote -v` output.
func originFetchURL(out string) (string, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, originRemote) || !strings.Contains(line, "(fetch)") {
			continue
		}
		if m := originLineRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// isValidRemoteURL accepts scp-style SSH remotes unconditionally and requires
// everything else to parse as an absolute URL.
func isValidRemoteURL(raw string) bool {
	if strings.HasPrefix(raw, "git@") {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != ""
}

// NormalizeRemote classifies a remote URL and rewrites it to the provider's
// canonical HTTPS browsing form. Credentials embedded in the URL are dropped
// for every provider, generic remotes included; otherwise generic URLs pass
// through unchanged.
// Normalizing an already normalized URL returns it unchanged.
func NormalizeRemote(raw string) types.RemoteInfo {
	raw = stripUserinfo(raw)

	switch {
	case strings.Contains(raw, "github.com"):
		return types.RemoteInfo{Provider: types.ProviderGitHub, URL: normalizeHosted(raw, "github.com")}
	case strings.Contains(raw, "gitlab.com"):
		return types.RemoteInfo{Provider: types.ProviderGitLab, URL: normalizeHosted(raw, "gitlab.com")}
	case strings.Contains(raw, "bitbucket.org"):
		return types.RemoteInfo{Provider: types.ProviderBitbucket, URL: normalizeHosted(raw, "bitbucket.org")}
	case strings.Contains(raw, "dev.azure.com"), strings.Contains(raw, "visualstudio.com"):
		return types.RemoteInfo{Provider: types.ProviderAzure, URL: normalizeAzure(raw)}
	default:
		return types.RemoteInfo{Provider: types.ProviderGeneric, URL: raw}
	}
}

// normalizeHosted converts git@host:path and ssh://host/path to
// https://host/path and strips a trailing .git from HTTPS URLs of host.
func normalizeHosted(raw, host string) string {
	if m := scpRemoteRe.FindStringSubmatch(raw); m != nil && m[1] == host {
		return "https://" + host + "/" + strings.TrimSuffix(m[2], ".git")
	}
	if m := sshRemoteRe.FindStringSubmatch(raw); m != nil && m[1] == host {
		return "https://" + host + "/" + strings.TrimSuffix(m[2], ".git")
	}
	if strings.HasPrefix(raw, "https://"+host+"/") {
		return strings.TrimSuffix(raw, ".git")
	}
	return raw
}

// normalizeAzure rewrites the SSH and legacy visualstudio.com forms to
// https://dev.azure.com/<org>/<project>. URLs that already address a
// repository through _git/ are kept as they are.
func normalizeAzure(raw string) string {
	if strings.Contains(raw, "/_git/") {
		return raw
	}
	if m := azureSSHRe.FindStringSubmatch(raw); m != nil {
		return "https://dev.azure.com/" + m[1] + "/" + m[2]
	}
	if m := azureLegacyRe.FindStringSubmatch(raw); m != nil {
		return "https://dev.azure.com/" + m[1] + "/" + strings.TrimSuffix(m[2], ".git")
	}
	if strings.HasPrefix(raw, "https://dev.azure.com/") {
		return strings.TrimSuffix(raw, ".git")
	}
	return raw
}

// stripUserinfo removes user[:password]@ from the authority of a
// scheme://authority/path URL.
func stripUserinfo(raw string) string {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || scheme == "ssh" {
		return raw
	}
	authority, path, _ := strings.Cut(rest, "/")
	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return raw
	}
	out := scheme + "://" + authority[at+1:]
	if len(rest) > len(authority) {
		out += "/" + path
	}
	return out
}
