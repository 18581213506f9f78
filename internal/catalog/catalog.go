// Package catalog is the ordered registry of runnable topics and the runner
// that executes them.
//
// The order lives in topics.yaml and is compiled into zz_index.go by
// cmd/indexgen; edit the YAML and run go generate rather than editing the
// generated file.
package catalog

//go:generate go run ../../cmd/indexgen -in topics.yaml -out zz_index.go

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrUnknownTopic is returned for a topic or group name not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

// RunFunc writes a topic's demo output to w.
type RunFunc func(ctx context.Context, w io.Writer) error

// Topic describes one runnable demonstration.
type Topic struct {
	Name    string
	Group   string
	Title   string
	Summary string
	// Notes is the topic's tutorial text in markdown, empty when the topic
	// has none.
	Notes string
	Run   RunFunc
	// Solo topics measure time and run alone after all others.
	Solo bool
}

//go:embed notes/*.md
var notesFS embed.FS

func note(name string) string {
	data, err := notesFS.ReadFile("notes/" + name + ".md")
	if err != nil {
		return ""
	}
	return string(data)
}

// All returns every topic in catalog order.
func All() []Topic {
	return slices.Clone(index)
}

// Groups returns the group names in order of first appearance.
func Groups() []string {
	var groups []string
	for _, t := range index {
		if !slices.Contains(groups, t.Group) {
			groups = append(groups, t.Group)
		}
	}
	return groups
}

// ByGroup returns the topics of group in catalog order. An empty group
// selects every topic.
func ByGroup(group string) ([]Topic, error) {
	if group == "" {
		return All(), nil
	}
	var out []Topic
	for _, t := range index {
		if t.Group == group {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: group %q (have %s)", ErrUnknownTopic, group, strings.Join(Groups(), ", "))
	}
	return out, nil
}

// Lookup returns the topic called name.
func Lookup(name string) (Topic, error) {
	i := slices.IndexFunc(index, func(t Topic) bool { return t.Name == name })
	if i < 0 {
		return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, name)
	}
	return index[i], nil
}

// Resolve looks up every name, keeping the order given. Unknown names are
// all reported in one error.
func Resolve(names []string) ([]Topic, error) {
	var (
		out  []Topic
		errs []error
	)
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, t)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
