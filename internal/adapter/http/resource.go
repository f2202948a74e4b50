package http

import (
	"net/http"
	"strconv"

	"expman-backend/internal/usecase/record"
	"expman-backend/pkg/pagination"

	"github.com/labstack/echo/v4"
)

// Resource serves the five REST verbs for one record type. The entity
// specifics live entirely in the usecase's codec; this layer only binds,
// dispatches and maps statuses.
type Resource[T, C, P, D any] struct {
	uc *record.Usecase[T, C, P, D]
}

func NewResource[T, C, P, D any](uc *record.Usecase[T, C, P, D]) *Resource[T, C, P, D] {
	return &Resource[T, C, P, D]{uc: uc}
}

// Register mounts the resource under g at /<name>/, trailing slashes
// included.
func (h *Resource[T, C, P, D]) Register(g *echo.Group, name string) {
	g.GET("/"+name+"/", h.List)
	g.POST("/"+name+"/", h.Create)
	g.GET("/"+name+"/:id/", h.Get)
	g.PUT("/"+name+"/:id/", h.Update)
	g.DELETE("/"+name+"/:id/", h.Delete)
}

func (h *Resource[T, C, P, D]) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	// a page param switches to the envelope shape
	if rawPage := c.QueryParam("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		size := pagination.DefaultPageSize
		if rawSize := c.QueryParam("page_size"); rawSize != "" {
			size, err = strconv.Atoi(rawSize)
			if err != nil || size < 1 {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page_size"})
			}
		}
		return c.JSON(http.StatusOK, pagination.Paginate(dtos, page, size))
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *Resource[T, C, P, D]) Create(c echo.Context) error {
	var in C
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Resource[T, C, P, D]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Resource[T, C, P, D]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in P
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Resource[T, C, P, D]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID reads the :id segment. A malformed id is a server fault, same as
// the store rejecting a broken key, not a not-found.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
