package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/flowtask/internal/render"
	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// emit writes v as JSON in --json mode and text otherwise.
func (e *env) emit(w io.Writer, v any, text string) error {
	if e.flags.jsonMode {
		return writeJSON(w, v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func (s *session) palette() render.Palette {
	return render.NewPalette(s.app.Theme, s.app.Colors)
}

// resolveRef turns a command-line reference into an item id. An exact id
// match wins; otherwise the value is a 1-based position in ids.
func resolveRef(ref string, ids []int64) (int64, error) {
	n, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, usagef("invalid reference %q: want an id or a position", ref)
	}
	for _, id := range ids {
		if id == n {
			return id, nil
		}
	}
	if n >= 1 && n <= int64(len(ids)) {
		return ids[n-1], nil
	}
	return 0, fmt.Errorf("%w: %s", types.ErrNotFound, ref)
}

// resolvePosition turns a 1-based position into a 0-based index below n.
func resolvePosition(ref string, n int) (int, error) {
	p, err := strconv.Atoi(ref)
	if err != nil {
		return 0, usagef("invalid position %q", ref)
	}
	if p < 1 || p > n {
		return 0, fmt.Errorf("%w: position %d of %d", types.ErrInvalidIndex, p, n)
	}
	return p - 1, nil
}

func taskIDs(ts []types.Task) []int64 {
	ids := make([]int64, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}

func timelineIDs(es []types.TimelineEntry) []int64 {
	ids := make([]int64, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}
	return ids
}

func noteIDs(ns []types.Note) []int64 {
	ids := make([]int64, len(ns))
	for i, n := range ns {
		ids[i] = n.ID
	}
	return ids
}

func vaultIDs(vs []types.VaultItem) []int64 {
	ids := make([]int64, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}

// nonNil makes empty lists print as [] in JSON mode.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
