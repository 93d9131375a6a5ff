// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"github.com/petar-djukic/go-coderef/pkg/types"
)

// LinkBuilder renders Markdown links to a file on its hosting provider.
type LinkBuilder struct {
	AzureLineHighlight bool // Append AzureLineHighlight to Azure DevOps links
}

// ToSourceLink renders a link with default options.
func ToSourceLink(remote types.RemoteInfo, branch string, ref types.Reference) (string, bool) {
	return LinkBuilder{}.Link(remote, branch, ref)
}

// Link renders a Markdown link to the referenced file and lines on branch.
// ok is false when the remote is unknown or its URL does not have the shape
// the provider needs.
func (b LinkBuilder) Link(remote types.RemoteInfo, branch string, ref types.Reference) (string, bool) {
	path := ref.LinkPath()

	switch remote.Provider {
	case types.ProviderGitHub:
		frag := ProviderLineFragment(remote, ref)
		return fmt.Sprintf("[GitHub](%s/blob/%s/%s%s)", remote.URL, branch, path, frag), true
	case types.ProviderGitLab:
		frag := ProviderLineFragment(remote, ref)
		return fmt.Sprintf("[GitLab](%s/-/blob/%s/%s%s)", remote.URL, branch, path, frag), true
	case types.ProviderBitbucket:
		frag := ProviderLineFragment(remote, ref)
		return fmt.Sprintf("[Bitbucket](%s/src/%s/%s%s)", remote.URL, branch, path, frag), true
	case types.ProviderAzure:
		frag := ProviderLineFragment(remote, ref)
		if b.AzureLineHighlight {
			frag += AzureLineHighlight
		}
		u, ok := BuildAzureSourceURL(remote.URL, branch, path, frag)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("[Azure DevOps](%s)", u), true
	case types.ProviderGeneric:
		return fmt.Sprintf("[source](%s)", remote.URL), true
	case types.ProviderUnknown, "":
		return "", false
	default:
		panic(fmt.Sprintf("reference: unknown git provider %q", remote.Provider))
	}
}
