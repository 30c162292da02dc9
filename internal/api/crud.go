package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arkline/marketdesk/internal/store"
	"github.com/arkline/marketdesk/internal/validate"
)

// repository is the store contract every flat entity family satisfies
type repository[T any] interface {
	Get(id uint) (*T, error)
	List(page, limit int) (*store.Page[T], error)
	Create(row *T) error
	CreateBatch(rows []T) (int64, error)
	Update(id uint, row *T) error
	Delete(id uint) error
}

// crud serves the shared route set of a flat entity family:
//
//	GET    /all?page=&limit=
//	GET    /:id
//	POST   /        {data: T | [T, ...]}
//	PUT    /:id
//	DELETE /:id  or  DELETE /  {id}
type crud[T any] struct {
	resource string
	repo     repository[T]
}

func newCrud[T any](resource string, repo repository[T]) crud[T] {
	return crud[T]{resource: resource, repo: repo}
}

// mount registers the route set on a group. Mutation middleware (the
// superadmin gate) is applied by the caller on the group itself.
func (h crud[T]) mount(rg *gin.RouterGroup) {
	rg.GET("/all", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.remove)
	rg.DELETE("", h.removeByBody)
}

func (h crud[T]) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.repo.List(page, limit)
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	respondPage(c, result)
}

func (h crud[T]) get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	row, err := h.repo.Get(id)
	if err != nil {
		respondError(c, h.resource, err)
		return
	}
	respondData(c, http.StatusOK, row)
}

// createRequest wraps the POST body. data holds either a single object
// or an array; the raw bytes are inspected to tell the two apart.
type createRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

func (h crud[T]) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if isJSONArray(req.Data) {
		var rows []T
		if err := json.Unmarshal(req.Data, &rows); err != nil {
			respondBadRequest(c, err)
			return
		}
		for i := range rows {
			if err := validate.Struct(&rows[i]); err != nil {
				respondBadRequest(c, err)
				return
			}
		}
		count, err := h.repo.CreateBatch(rows)
		if err != nil {
			respondError(c, h.resource, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": fmt.Sprintf("%d records created", count),
			"data":    rows,
		})
		return
	}

	var row T
	if err := json.Unmarshal(req.Data, &row); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := validate.Struct(&row); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.repo.Create(&row); err != nil {
		respondError(c, h.resource, err)
		return
	}
	respondData(c, http.StatusCreated, row)
}

func (h crud[T]) update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		respondBadRequest(c, err)
		return
	}
	if err := h.repo.Update(id, &row); err != nil {
		respondError(c, h.resource, err)
		return
	}
	respondMessage(c, http.StatusOK, h.resource+" updated")
}

func (h crud[T]) remove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.deleteByID(c, id)
}

// removeByBody supports the body-carried variant the admin forms submit
func (h crud[T]) removeByBody(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	h.deleteByID(c, req.ID)
}

func (h crud[T]) deleteByID(c *gin.Context, id uint) {
	if err := h.repo.Delete(id); err != nil {
		respondError(c, h.resource, err)
		return
	}
	respondMessage(c, http.StatusOK, h.resource+" deleted")
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
