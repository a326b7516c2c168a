// Package main is the entry point for the exa server.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/statiolake/exa/internal/config"
	"github.com/statiolake/exa/internal/handler"
	"github.com/statiolake/exa/internal/watcher"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("exa - File Metadata Server")
	log.Printf("Config file: %s", cfg.GetConfigFilePath())
	log.Printf("Listing %d folder(s):", len(cfg.Folders))
	for i, f := range cfg.Folders {
		log.Printf("  [%d] %s -> %s", i, f.Alias, f.Path)
	}
	log.Printf("Server starting at: http://localhost:%d", cfg.Port)

	// Create handlers
	treeHandler := handler.NewTreeHandler(cfg)
	entryHandler := handler.NewEntryHandler(cfg)
	wsHandler := handler.NewWSHandler()

	// Setup file watcher if enabled
	if cfg.Watch {
		w, err := watcher.New(cfg)
		if err != nil {
			log.Printf("Warning: failed to create file watcher: %v", err)
		} else {
			w.OnChange(wsHandler.OnChange)
			if err := w.Start(); err != nil {
				log.Printf("Warning: failed to start file watcher: %v", err)
			}
			defer func() { _ = w.Stop() }()
			log.Printf("File watcher enabled")
		}
	}
	defer wsHandler.Close()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// API routes
	api := r.Group("/api")
	{
		// Listing and descriptor APIs
		api.GET("/tree", treeHandler.GetTree)
		api.GET("/entry/*path", entryHandler.GetEntry)
		api.GET("/ws", wsHandler.HandleWS)

		// Folder management APIs
		api.GET("/folders", treeHandler.GetFolders)
		api.POST("/folders", treeHandler.AddFolder)
		api.PUT("/folders", treeHandler.UpdateFolder)
		api.DELETE("/folders", treeHandler.RemoveFolder)
		api.PUT("/exclude", treeHandler.UpdateGlobalExclude)
	}

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
