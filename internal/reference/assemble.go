// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/go-coderef/internal/config"
	"github.com/petar-djukic/go-coderef/internal/git"
	"github.com/petar-djukic/go-coderef/pkg/types"
)

// Assembler builds a Reference from the editor state.
type Assembler struct {
	Runner  git.Runner // Used for the git root lookup when UseGitRoot is set
	Chooser Chooser    // Asks for the reference type when settings leave it open; may be nil
}

// Assemble resolves the reference for ed. ok is false when the user cancels
// the reference type prompt; that is not an error.
func (a *Assembler) Assemble(ctx context.Context, s config.Settings, ed types.EditorContext) (types.Reference, bool, error) {
	rng := FromSelection(ed.Selection)

	var configured string
	switch rng.Kind {
	case types.CursorRange:
		configured = s.CursorRefType
	case types.SelectionRange:
		configured = s.SelectionRefType
	default:
		panic(fmt.Sprintf("reference: unknown range kind %v", rng.Kind))
	}

	refType, ok, err := ResolveType(ctx, a.Chooser, configured)
	if err != nil || !ok {
		return types.Reference{}, false, err
	}

	ref := types.Reference{
		Type:  refType,
		Range: rng,
	}

	if ed.WorkspaceFolder != "" {
		ref.WorkspacePath = ed.WorkspaceFolder
		ref.RelativePath = workspaceRelative(ed.WorkspaceFolder, ed.FilePath)
	} else {
		// Outside any workspace: keep the absolute path and run git next to the file.
		ref.WorkspacePath = filepath.Dir(ed.FilePath)
		ref.RelativePath = filepath.ToSlash(ed.FilePath)
	}
	ref.FileName = path.Base(ref.RelativePath)

	if s.UseGitRoot && a.Runner != nil {
		gc := git.ResolveGitContext(ctx, a.Runner, ref.WorkspacePath)
		if gc.GitRoot != "" {
			ref.GitRoot = gc.GitRoot
			ref.PathFromGitRoot = git.PathFromRoot(gc.GitRoot, ed.FilePath)
		}
	}

	return ref, true, nil
}

// workspaceRelative returns file relative to workspace in slash form, or the
// absolute file path when file lies outside workspace.
func workspaceRelative(workspace, file string) string {
	rel, err := filepath.Rel(workspace, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(file)
	}
	return filepath.ToSlash(rel)
}
