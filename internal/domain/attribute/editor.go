package attribute

import (
	"sort"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/domain/catalog"
)

// Editor mutates one product's attribute group working set. It is a plain
// in-memory structure owned by the caller; nothing here touches storage
// and no operation triggers variant regeneration.
type Editor struct {
	groups []*Group
}

// NewEditor creates an editor over an existing working set (may be empty).
func NewEditor(groups ...*Group) *Editor {
	return &Editor{groups: groups}
}

// Groups returns the current working set in insertion order.
func (e *Editor) Groups() []*Group {
	return e.groups
}

// AddGroup appends a new custom group with an empty name and no options.
func (e *Editor) AddGroup() *Group {
	g := &Group{
		ID:           id.New(),
		Kind:         KindCustom,
		DisplayOrder: len(e.groups),
	}
	e.groups = append(e.groups, g)
	return g
}

// SetGroupKind changes a group's kind. Options are cleared because
// catalog-backed options are keyed by kind, so a kind change invalidates
// any previous selection. The name snaps to the canonical label for
// Color/Size and clears for Custom.
func (e *Editor) SetGroupKind(groupID id.ID, kind Kind) error {
	if !kind.Valid() {
		return apperror.NewValidation("unknown group kind").
			WithDetail("kind", string(kind))
	}
	g, err := e.find(groupID)
	if err != nil {
		return err
	}
	g.Kind = kind
	g.Options = nil
	g.Name = kind.CanonicalName()
	return nil
}

// ToggleColor adds the catalog color to the group if absent, removes it if
// present. Selecting an already-selected color removes it, never
// duplicates. Relative order of the remaining options is preserved.
func (e *Editor) ToggleColor(groupID id.ID, color catalog.Color) error {
	g, err := e.find(groupID)
	if err != nil {
		return err
	}
	if g.Kind != KindColor {
		return apperror.NewValidation("group does not take color options").
			WithDetail("kind", string(g.Kind))
	}
	for i, opt := range g.Options {
		if co, ok := opt.(ColorOption); ok && co.Ref == color.ID {
			g.Options = append(g.Options[:i], g.Options[i+1:]...)
			return nil
		}
	}
	g.Options = append(g.Options, ColorOption{Ref: color.ID, Name: color.Name, Hex: color.Hex})
	return nil
}

// ToggleSize is the size counterpart of ToggleColor. The option inherits
// the catalog sort order as a display tie-break.
func (e *Editor) ToggleSize(groupID id.ID, size catalog.Size) error {
	g, err := e.find(groupID)
	if err != nil {
		return err
	}
	if g.Kind != KindSize {
		return apperror.NewValidation("group does not take size options").
			WithDetail("kind", string(g.Kind))
	}
	for i, opt := range g.Options {
		if so, ok := opt.(SizeOption); ok && so.Ref == size.ID {
			g.Options = append(g.Options[:i], g.Options[i+1:]...)
			return nil
		}
	}
	g.Options = append(g.Options, SizeOption{Ref: size.ID, Name: size.Name, SortOrder: size.SortOrder})
	return nil
}

// AddCustomOption appends a free-form value to a custom group.
func (e *Editor) AddCustomOption(groupID id.ID, value string) error {
	g, err := e.find(groupID)
	if err != nil {
		return err
	}
	if g.Kind != KindCustom {
		return apperror.NewValidation("group does not take custom options").
			WithDetail("kind", string(g.Kind))
	}
	g.Options = append(g.Options, CustomOption{Text: value})
	return nil
}

// RemoveCustomOption removes the option at index from a custom group.
func (e *Editor) RemoveCustomOption(groupID id.ID, index int) error {
	g, err := e.find(groupID)
	if err != nil {
		return err
	}
	if g.Kind != KindCustom {
		return apperror.NewValidation("group does not take custom options").
			WithDetail("kind", string(g.Kind))
	}
	if index < 0 || index >= len(g.Options) {
		return apperror.NewIndexOutOfRange(index, len(g.Options))
	}
	g.Options = append(g.Options[:index], g.Options[index+1:]...)
	return nil
}

// RemoveGroup deletes the group. It does not regenerate variants; the
// caller decides when to recompute the combination set.
func (e *Editor) RemoveGroup(groupID id.ID) error {
	for i, g := range e.groups {
		if g.ID == groupID {
			e.groups = append(e.groups[:i], e.groups[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("attribute group", groupID.String())
}

// ValidGroups returns the groups eligible for generation, ordered by
// DisplayOrder (insertion order breaks ties). Invalid groups are silently
// excluded, never an error.
func (e *Editor) ValidGroups() []*Group {
	valid := make([]*Group, 0, len(e.groups))
	for _, g := range e.groups {
		if g.IsValid() {
			valid = append(valid, g)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].DisplayOrder < valid[j].DisplayOrder
	})
	return valid
}

func (e *Editor) find(groupID id.ID) (*Group, error) {
	for _, g := range e.groups {
		if g.ID == groupID {
			return g, nil
		}
	}
	return nil, apperror.NewNotFound("attribute group", groupID.String())
}
