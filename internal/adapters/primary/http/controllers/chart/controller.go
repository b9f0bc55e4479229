package chartController

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/admin/astro-web/natal-chart/internal/domain"
	chartUsecase "github.com/admin/astro-web/natal-chart/internal/usecases/chart"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Controller struct {
	ChartService *chartUsecase.Service
	Log          *slog.Logger
}

func New(chartService *chartUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		ChartService: chartService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", c.indexPage)
	router.GET("/charts/:name", c.chartSVG)
	router.GET("/api/v1/cities", c.listCities)
	router.GET("/api/v1/timezones", c.listTimezones)
	router.POST("/api/v1/charts", c.generateChart)
}

// indexPage отдаёт форму ввода данных рождения
func (c *Controller) indexPage(ctx *gin.Context) {
	cities, err := c.ChartService.Cities(ctx.Request.Context())
	if err != nil {
		c.Log.Error("failed to load cities for form", "error", err)
		// Форма работает и без справочника: координаты можно ввести вручную
		cities = nil
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Cities":    cities,
		"Timezones": c.ChartService.Timezones(),
	})
}

// generateChart принимает форму или JSON и возвращает готовую карту
func (c *Controller) generateChart(ctx *gin.Context) {
	var req GenerateChartRequest

	if err := ctx.ShouldBind(&req); err != nil {
		c.Log.Warn("failed to bind chart request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := c.ChartService.Generate(ctx.Request.Context(), chartUsecase.GenerateRequest{
		Name:      req.Name,
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Hour:      req.Hour,
		Minute:    req.Minute,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
	})
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, GenerateChartResponse{
		RequestID:        result.RequestID.String(),
		Summary:          result.Summary,
		Chart:            result.ChartJSON,
		ChartSVGURL:      "/charts/" + result.SVGName,
		HousesUnreliable: result.Chart.HousesUnreliable,
	})
}

// chartSVG отдаёт сохранённый SVG-артефакт
func (c *Controller) chartSVG(ctx *gin.Context) {
	name := ctx.Param("name")

	data, err := c.ChartService.ChartSVG(ctx.Request.Context(), name)
	if err != nil {
		c.Log.Warn("chart artifact not found",
			"error", err,
			"name", name,
		)
		ctx.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
		return
	}

	ctx.Data(http.StatusOK, "image/svg+xml", data)
}

// listCities отдаёт статический справочник городов
func (c *Controller) listCities(ctx *gin.Context) {
	cities, err := c.ChartService.Cities(ctx.Request.Context())
	if err != nil {
		c.Log.Error("failed to load cities", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "cities unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cities": cities})
}

// listTimezones отдаёт список распространённых таймзон
func (c *Controller) listTimezones(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"timezones": c.ChartService.Timezones()})
}

// renderError маппит доменные ошибки на HTTP-ответы.
// Детали ошибок провайдера и дрейфа схемы пользователю не показываются:
// они уже в логе и алертах, наружу уходит общий текст.
func (c *Controller) renderError(ctx *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid input",
			"field":   vErr.Field,
			"message": vErr.Reason,
		})
		return
	}

	if domain.IsProviderError(err) {
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error": "chart calculation failed, please check your birth data",
		})
		return
	}

	if domain.IsShapingError(err) {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "calculation unavailable",
		})
		return
	}

	c.Log.Error("unexpected error during chart generation", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
