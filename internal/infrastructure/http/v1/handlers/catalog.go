package handlers

import (
	"github.com/gin-gonic/gin"

	"skuforge/internal/domain/catalog"
	"skuforge/internal/infrastructure/http/v1/dto"
)

// CatalogHandler handles the color and size pool endpoints.
type CatalogHandler struct {
	*BaseHandler
	service *catalog.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(base *BaseHandler, service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// ListColors returns the color pool.
// GET /api/v1/catalog/colors
func (h *CatalogHandler) ListColors(c *gin.Context) {
	colors, err := h.service.ListColors(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromColors(colors))
}

// CreateColor adds a color to the pool and returns the fresh snapshot
// of both pools. Clients replace their copy instead of patching it.
// POST /api/v1/catalog/colors
func (h *CatalogHandler) CreateColor(c *gin.Context) {
	var req dto.CreateColorRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	color := catalog.NewColor(req.Code, req.Name, req.Hex)
	if err := h.service.CreateColor(ctx, color); err != nil {
		h.Error(c, err)
		return
	}

	snapshot, err := h.service.Snapshot(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromSnapshot(snapshot))
}

// ListSizes returns the size pool.
// GET /api/v1/catalog/sizes
func (h *CatalogHandler) ListSizes(c *gin.Context) {
	sizes, err := h.service.ListSizes(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSizes(sizes))
}

// CreateSize adds a size to the pool and returns the fresh snapshot.
// POST /api/v1/catalog/sizes
func (h *CatalogHandler) CreateSize(c *gin.Context) {
	var req dto.CreateSizeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	size := catalog.NewSize(req.Code, req.Name, req.SortOrder)
	if err := h.service.CreateSize(ctx, size); err != nil {
		h.Error(c, err)
		return
	}

	snapshot, err := h.service.Snapshot(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromSnapshot(snapshot))
}
