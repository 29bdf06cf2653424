package http

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"storefront/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	healthStatusOK        = "ok"
	healthStatusUnhealthy = "unhealthy"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ReadinessChecker reports whether the catalog API can be reached.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"price": catalog.FormatPrice,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func RegisterRoutes(router *gin.Engine, handler *Handler, checker ReadinessChecker) {
	router.SetHTMLTemplate(Templates())

	pages := router.Group("/", SessionMiddleware())
	pages.GET("/", handler.CatalogPage)
	pages.GET("/search", handler.Search)
	pages.POST("/products", handler.CreateProduct)
	pages.GET("/products/:id", handler.ProductPage)
	pages.POST("/products/:id", handler.UpdateProduct)
	pages.POST("/products/:id/delete", handler.DeleteProduct)

	router.StaticFS("/static", staticFiles())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": healthStatusOK})
	})
	router.GET("/readyz", func(c *gin.Context) {
		if err := checker.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": healthStatusUnhealthy})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": healthStatusOK})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
