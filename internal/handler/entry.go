// Package handler provides HTTP handlers for the exa REST API.
package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/statiolake/exa/internal/config"
	efs "github.com/statiolake/exa/internal/fs"
)

// Timestamp is a wire timestamp: seconds and nanoseconds since the Unix
// epoch, exactly as the core reports them.
type Timestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// EntryDetail is the full descriptor for a single entry, including the
// fields too heavy to put on every tree node.
type EntryDetail struct {
	EntryNode

	Inode             uint64  `json:"inode"`
	Links             uint64  `json:"links"`
	MultipleLinks     bool    `json:"multipleLinks,omitempty"`
	Blocks            *uint64 `json:"blocks,omitempty"`
	User              uint32  `json:"user"`
	Group             uint32  `json:"group"`
	PointsToDirectory bool    `json:"pointsToDirectory"`

	Modified Timestamp `json:"modified"`
	Created  Timestamp `json:"created"`
	Accessed Timestamp `json:"accessed"`
}

// EntryHandler handles single-entry descriptor requests
type EntryHandler struct {
	cfg *config.Config
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(cfg *config.Config) *EntryHandler {
	return &EntryHandler{cfg: cfg}
}

// resolvePath resolves a request path to a folder and a path on disk.
// Path format: {alias}/{relativePath} e.g., "projects/src/main.go"
func (h *EntryHandler) resolvePath(reqPath string) (string, error) {
	reqPath = strings.TrimPrefix(reqPath, "/")

	if reqPath == "" {
		return "", os.ErrNotExist
	}

	var relativePath string
	parts := strings.SplitN(reqPath, "/", 2)
	prefix := parts[0]
	if len(parts) > 1 {
		relativePath = parts[1]
	}

	// Match by folder alias
	for _, f := range h.cfg.Folders {
		if f.Alias == prefix {
			if relativePath == "" {
				return f.Path, nil
			}
			return filepath.Join(f.Path, filepath.FromSlash(relativePath)), nil
		}
	}

	return "", os.ErrNotExist
}

// GetEntry returns the full metadata descriptor for one entry
func (h *EntryHandler) GetEntry(c *gin.Context) {
	reqPath := c.Param("path")
	if reqPath == "" {
		reqPath = c.Query("path")
	}

	// Security: prevent path traversal
	if strings.Contains(reqPath, "..") {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "invalid path",
		})
		return
	}

	path, err := h.resolvePath(reqPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "entry not found",
		})
		return
	}

	// One non-following stat; everything after this reads the snapshot.
	f, err := efs.NewFile(path, nil, "")
	if err != nil {
		status := http.StatusInternalServerError
		msg := err.Error()
		if os.IsNotExist(err) {
			status = http.StatusNotFound
			msg = "entry not found"
		} else if os.IsPermission(err) {
			status = http.StatusForbidden
			msg = "access denied"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, h.describe(f, strings.TrimPrefix(reqPath, "/")))
}

// describe projects every derived query of a File into the wire descriptor.
func (h *EntryHandler) describe(f *efs.File, nodePath string) EntryDetail {
	isExec := execPolicy(h.cfg)

	detail := EntryDetail{
		EntryNode:         *renderNode(f, nodePath, isExec),
		Inode:             f.Inode(),
		User:              f.User(),
		Group:             f.Group(),
		PointsToDirectory: f.PointsToDirectory(),
	}

	links := f.Links()
	detail.Links = links.Count
	detail.MultipleLinks = links.Multiple

	if blocks := f.Blocks(); blocks.Valid {
		count := blocks.Count
		detail.Blocks = &count
	}

	detail.Modified = timestamp(f.ModifiedTime())
	detail.Created = timestamp(f.CreatedTime())
	detail.Accessed = timestamp(f.AccessedTime())

	return detail
}

func timestamp(t efs.Time) Timestamp {
	return Timestamp{Seconds: t.Seconds, Nanoseconds: t.Nanoseconds}
}
