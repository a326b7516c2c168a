package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/statiolake/exa/internal/config"
	efs "github.com/statiolake/exa/internal/fs"
)

// EntryNode represents one file or directory in the listing tree. Every
// field is a projection of the File's cached metadata; nothing here goes
// back to the filesystem.
type EntryNode struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	TypeChar    string       `json:"typeChar"`
	Path        string       `json:"path,omitempty"`
	Alias       string       `json:"alias,omitempty"`
	FolderID    int          `json:"folderId,omitempty"`
	Children    []*EntryNode `json:"children,omitempty"`
	Size        *uint64      `json:"size,omitempty"`
	Device      *DeviceNode  `json:"device,omitempty"`
	Permissions string       `json:"permissions,omitempty"`
	ModTime     *time.Time   `json:"modTime,omitempty"`
	Executable  bool         `json:"executable,omitempty"`
	Link        *LinkNode    `json:"link,omitempty"`
}

// DeviceNode carries the (major, minor) pair a char/block device reports
// instead of a byte size.
type DeviceNode struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
}

// LinkNode describes where a symlink points. Target is the raw destination
// as recorded on disk, so a broken relative link still shows its literal
// text.
type LinkNode struct {
	Target string `json:"target,omitempty"`
	Broken bool   `json:"broken"`
	Error  string `json:"error,omitempty"`
}

// TreeHandler handles directory tree API requests
type TreeHandler struct {
	cfg *config.Config
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(cfg *config.Config) *TreeHandler {
	return &TreeHandler{cfg: cfg}
}

// execPolicy returns the executable rule for a configuration: the
// configured extension list when one is set, else the platform default.
func execPolicy(cfg *config.Config) func(*efs.File) bool {
	if len(cfg.ExecutableExts) > 0 {
		return efs.ExtensionExecPolicy(cfg.ExecutableExts)
	}
	return (*efs.File).IsExecutableFile
}

// GetTree returns the directory tree structure for all configured folders
func (h *TreeHandler) GetTree(c *gin.Context) {
	var roots []*EntryNode

	isExec := execPolicy(h.cfg)
	for i, folder := range h.cfg.Folders {
		root, err := efs.NewFile(folder.Path, nil, "")
		if err != nil {
			continue
		}
		tree := h.buildTree(root, "", i, folder.Alias, folder.Exclude, isExec)
		tree.Name = folder.Alias
		tree.Alias = folder.Alias
		tree.FolderID = i
		roots = append(roots, tree)
	}

	if len(roots) == 1 {
		c.JSON(http.StatusOK, roots[0])
	} else {
		c.JSON(http.StatusOK, gin.H{
			"type":     "root",
			"children": roots,
		})
	}
}

// folderResponse extends a Folder with computed effective excludes for the frontend.
type folderResponse struct {
	config.Folder
	EffectiveExcludes []string `json:"effective_excludes"`
}

// GetFolders returns the list of configured folders and global excludes
func (h *TreeHandler) GetFolders(c *gin.Context) {
	resp := make([]folderResponse, len(h.cfg.Folders))
	for i, f := range h.cfg.Folders {
		merged := append([]string{}, h.cfg.Exclude...)
		merged = append(merged, f.Exclude...)
		resp[i] = folderResponse{Folder: f, EffectiveExcludes: merged}
	}
	c.JSON(http.StatusOK, gin.H{
		"folders":       resp,
		"globalExclude": h.cfg.Exclude,
	})
}

// AddFolderRequest represents a request to add a folder
type AddFolderRequest struct {
	Path    string   `json:"path" binding:"required"`
	Alias   string   `json:"alias"`
	Exclude []string `json:"exclude"`
}

// AddFolder adds a new folder to the configuration
func (h *TreeHandler) AddFolder(c *gin.Context) {
	var req AddFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path is required",
		})
		return
	}

	// Validate path exists and is a directory
	info, err := os.Stat(req.Path)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path does not exist: " + req.Path,
		})
		return
	}
	if !info.IsDir() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "path is not a directory",
		})
		return
	}

	// Add folder
	if err := h.cfg.AddFolder(req.Path, req.Alias, req.Exclude); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Save configuration
	if err := h.cfg.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to save config: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "folder added",
		"folders": h.cfg.Folders,
	})
}

// UpdateFolderRequest represents a request to update a folder (identified by index)
type UpdateFolderRequest struct {
	Index   int      `json:"index"`
	Alias   string   `json:"alias" binding:"required"`
	Exclude []string `json:"exclude"`
}

// UpdateFolder updates a folder's settings by index
func (h *TreeHandler) UpdateFolder(c *gin.Context) {
	var req UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "alias is required",
		})
		return
	}

	if req.Index < 0 || req.Index >= len(h.cfg.Folders) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid folder index",
		})
		return
	}

	h.cfg.UpdateFolderByIndex(req.Index, req.Alias, req.Exclude)

	// Save configuration
	if err := h.cfg.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to save config: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "folder updated",
		"folders": h.cfg.Folders,
	})
}

// RemoveFolderRequest represents a request to remove a folder (by index)
type RemoveFolderRequest struct {
	Index int `json:"index"`
}

// RemoveFolder removes a folder from the configuration by index
func (h *TreeHandler) RemoveFolder(c *gin.Context) {
	var req RemoveFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "index is required",
		})
		return
	}

	if req.Index < 0 || req.Index >= len(h.cfg.Folders) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid folder index",
		})
		return
	}

	h.cfg.RemoveFolderByIndex(req.Index)

	// Save configuration
	if err := h.cfg.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to save config: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "folder removed",
		"folders": h.cfg.Folders,
	})
}

// UpdateGlobalExcludeRequest represents a request to update global excludes
type UpdateGlobalExcludeRequest struct {
	Exclude []string `json:"exclude"`
}

// UpdateGlobalExclude updates the global exclude patterns
func (h *TreeHandler) UpdateGlobalExclude(c *gin.Context) {
	var req UpdateGlobalExcludeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request",
		})
		return
	}

	h.cfg.SetGlobalExclude(req.Exclude)

	if err := h.cfg.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to save config: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "global excludes updated",
		"globalExclude": h.cfg.Exclude,
	})
}

func (h *TreeHandler) buildTree(
	f *efs.File, relativePath string, folderID int, folderAlias string,
	folderExcludes []string, isExec func(*efs.File) bool,
) *EntryNode {
	// Build path with folder alias prefix for stable, human-readable URLs
	nodePath := relativePath
	if relativePath != "" {
		nodePath = folderAlias + "/" + relativePath
	}

	node := renderNode(f, nodePath, isExec)
	node.FolderID = folderID

	if !f.IsDirectory() {
		return node
	}

	dir, err := f.ToDir()
	if err != nil {
		// Readable entry, unreadable contents; return the node bare.
		return node
	}

	for _, child := range dir.Files() {
		childPath := relativePath
		if childPath == "" {
			childPath = child.Name
		} else {
			childPath = childPath + "/" + child.Name
		}

		// Skip globally excluded paths
		if h.cfg.IsExcluded(child.Name) {
			continue
		}

		// Skip folder-level excluded paths
		if h.cfg.IsFolderExcluded(childPath, folderExcludes) {
			continue
		}

		// Skip dotfiles unless configured in
		if !h.cfg.ShowHidden && h.cfg.IsHidden(child.Name) {
			continue
		}

		node.Children = append(node.Children, h.buildTree(child, childPath, folderID, folderAlias, folderExcludes, isExec))
	}

	return node
}

// renderNode projects a File's derived queries into a JSON descriptor.
func renderNode(f *efs.File, nodePath string, isExec func(*efs.File) bool) *EntryNode {
	t := f.Type()
	node := &EntryNode{
		Name:        f.Name,
		Path:        nodePath,
		Type:        t.String(),
		TypeChar:    string(t.Char()),
		Permissions: f.Permissions().String(),
	}

	switch size := f.Size(); size.Kind {
	case efs.SizeBytes:
		bytes := size.Bytes
		node.Size = &bytes
	case efs.SizeDevice:
		node.Device = &DeviceNode{Major: size.Device.Major, Minor: size.Device.Minor}
	}

	mod := f.ModifiedTime()
	modTime := time.Unix(mod.Seconds, mod.Nanoseconds)
	node.ModTime = &modTime

	node.Executable = isExec(f)

	if f.IsLink() {
		node.Link = renderLink(f)
	}

	return node
}

// renderLink resolves a symlink into its display form. Resolution failures
// surface here as data on the node, never as a request failure.
func renderLink(f *efs.File) *LinkNode {
	target := f.LinkTarget()
	link := &LinkNode{Broken: target.IsBroken()}
	switch {
	case target.File != nil:
		link.Target = target.File.Path
	case target.Err != nil:
		link.Error = target.Err.Error()
	default:
		link.Target = target.Broken
	}
	return link
}
