package dto

import (
	"skuforge/internal/domain/catalog"
)

// ColorResponse represents one color pool entry.
type ColorResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// FromColor creates response from domain color.
func FromColor(c *catalog.Color) ColorResponse {
	return ColorResponse{
		ID:   c.ID.String(),
		Code: c.Code,
		Name: c.Name,
		Hex:  c.Hex,
	}
}

// FromColors maps a color list.
func FromColors(colors []catalog.Color) []ColorResponse {
	out := make([]ColorResponse, 0, len(colors))
	for i := range colors {
		out = append(out, FromColor(&colors[i]))
	}
	return out
}

// CreateColorRequest for adding a color to the pool.
type CreateColorRequest struct {
	Code string `json:"code"`
	Name string `json:"name" binding:"required"`
	Hex  string `json:"hex" binding:"required"`
}

// SizeResponse represents one size pool entry.
type SizeResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// FromSize creates response from domain size.
func FromSize(s *catalog.Size) SizeResponse {
	return SizeResponse{
		ID:        s.ID.String(),
		Code:      s.Code,
		Name:      s.Name,
		SortOrder: s.SortOrder,
	}
}

// FromSizes maps a size list.
func FromSizes(sizes []catalog.Size) []SizeResponse {
	out := make([]SizeResponse, 0, len(sizes))
	for i := range sizes {
		out = append(out, FromSize(&sizes[i]))
	}
	return out
}

// CreateSizeRequest for adding a size to the pool.
type CreateSizeRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

// SnapshotResponse is a point-in-time copy of both pools.
type SnapshotResponse struct {
	Colors []ColorResponse `json:"colors"`
	Sizes  []SizeResponse  `json:"sizes"`
}

// FromSnapshot creates response from a domain snapshot.
func FromSnapshot(s *catalog.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Colors: FromColors(s.Colors),
		Sizes:  FromSizes(s.Sizes),
	}
}
