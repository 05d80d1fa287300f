package v1

import (
	"strings"

	"riseup-backend/internal/contract"

	"github.com/gin-gonic/gin"
)

// handle registers a contract endpoint on a router group. Routes come from
// the contract registry so the served paths cannot drift from the ones
// clients build URLs for. The group is mounted at /api, so the shared
// prefix is stripped from the template.
func handle(g *gin.RouterGroup, ep contract.Endpoint, handlers ...gin.HandlerFunc) {
	g.Handle(ep.Method, strings.TrimPrefix(ep.Path, "/api"), handlers...)
}
