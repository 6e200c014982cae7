package domain

import (
	"regexp"
)

// Selector picks files out of a mirror listing, either by an explicit name
// list or by a regular expression applied to each relative path.
// Exactly one of Names/Pattern should be set.
type Selector struct {
	Names   []string
	Pattern string
}

// Matches reports whether a relative file path is selected.
// An invalid pattern matches nothing; Compile surfaces the error earlier.
func (s Selector) Matches(relPath string) bool {
	if len(s.Names) > 0 {
		for _, n := range s.Names {
			if n == relPath {
				return true
			}
		}
		return false
	}
	if s.Pattern == "" {
		return false
	}
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return false
	}
	return re.MatchString(relPath)
}

// Compile validates the pattern form of the selector.
func (s Selector) Compile() error {
	if s.Pattern == "" {
		return nil
	}
	_, err := regexp.Compile(s.Pattern)
	return err
}

// SyncGroup is one logical code group copied from the repository mirror
// into the stage. Groups run in declared order; later groups win on
// overlapping destinations.
type SyncGroup struct {
	Name              string
	SourceRef         string // sub-path within the mirror worktree
	DestinationPrefix string // sub-path within the stage
	Selector          Selector
}

// CopyResult reports what one sync group staged.
type CopyResult struct {
	Group  string   `json:"group"`
	Copied []string `json:"copied"`
}
