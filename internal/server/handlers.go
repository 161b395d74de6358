package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/tagfold/tagfold/internal/display"
	"github.com/tagfold/tagfold/internal/tree"
	"github.com/tagfold/tagfold/internal/vfs"
)

// nodeResponse pairs a tree entry with its renderable item.
type nodeResponse struct {
	Type     string       `json:"type"`
	Tag      string       `json:"tag,omitempty"`
	Location string       `json:"location"`
	Kind     vfs.Kind     `json:"kind"`
	Item     display.Item `json:"item"`
}

func toNodeResponses(nodes []tree.Node) []nodeResponse {
	out := make([]nodeResponse, len(nodes))
	for i, node := range nodes {
		resp := nodeResponse{
			Location: node.Location(),
			Kind:     node.Kind(),
			Item:     display.Adapt(node),
		}
		switch n := node.(type) {
		case tree.TagGroup:
			resp.Type = "tag_group"
			resp.Tag = n.Tag
		case tree.FileNode:
			resp.Type = "file"
		}
		out[i] = resp
	}
	return out
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"root":   s.builder.Root().Path,
	})
}

// treeTopLevel answers the no-selector query: the deduplicated tag set.
func (s *Server) treeTopLevel(c *gin.Context) {
	start := time.Now()
	nodes, err := s.builder.Children(c.Request.Context(), nil)
	if err != nil {
		s.metrics.RecordQuery("top", "error", time.Since(start))
		s.renderError(c, err)
		return
	}
	s.metrics.RecordQuery("top", "ok", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"nodes": toNodeResponses(nodes)})
}

// treeChildren answers the child query for one tag group.
func (s *Server) treeChildren(c *gin.Context) {
	start := time.Now()
	group := tree.TagGroup{Tag: c.Param("tag"), Root: s.builder.Root().Path}
	nodes, err := s.builder.Children(c.Request.Context(), group)
	if err != nil {
		s.metrics.RecordQuery("child", "error", time.Since(start))
		s.renderError(c, err)
		return
	}
	s.metrics.RecordQuery("child", "ok", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"nodes": toNodeResponses(nodes)})
}

type openRequest struct {
	Path string `json:"path" binding:"required"`
}

// openDocument dispatches the leaf open-action: it reads the document
// and hands the host its content with a detected MIME type.
func (s *Server) openDocument(c *gin.Context) {
	var req openRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path required"})
		return
	}

	data, err := s.fs.ReadFile(c.Request.Context(), req.Path)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path":    req.Path,
		"mime":    mimetype.Detect(data).String(),
		"size":    len(data),
		"content": string(data),
	})
}

// search runs a recursive glob under the root.
func (s *Server) search(c *gin.Context) {
	pattern := c.Query("pattern")
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern required"})
		return
	}

	paths, err := s.fs.Glob(c.Request.Context(), s.builder.Root().Path, pattern)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pattern": pattern, "paths": paths})
}

// renderError maps classified filesystem errors onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var fsErr *vfs.Error
	if errors.As(err, &fsErr) {
		switch fsErr.Kind {
		case vfs.KindNotFound:
			status = http.StatusNotFound
		case vfs.KindNoPermission:
			status = http.StatusForbidden
		case vfs.KindIsADirectory, vfs.KindAlreadyExists:
			status = http.StatusBadRequest
		case vfs.KindCancelled:
			status = 499 // client closed request
		}
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
