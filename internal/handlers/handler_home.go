package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type routeInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// getHome godoc
// @Summary Show the status of server and its routes.
// @Description get the status of server and the routes it serves.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(r *gin.Engine) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		routes := make([]routeInfo, 0, len(r.Routes()))
		for _, ri := range r.Routes() {
			routes = append(routes, routeInfo{Method: ri.Method, Path: ri.Path})
		}
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path == routes[j].Path {
				return routes[i].Method < routes[j].Method
			}
			return routes[i].Path < routes[j].Path
		})
		ctx.JSON(http.StatusOK, gin.H{"message": "Ledger display API v1", "routes": routes})
	}
}
