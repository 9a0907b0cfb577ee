package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
)

// ContentHandlers serves locale trees and the component queries built on
// them.
type ContentHandlers struct {
	articleService *services.ArticleService
	logger         *logging.ChanneledLogger
}

// NewContentHandlers creates content handlers with injected dependencies
func NewContentHandlers(articleService *services.ArticleService, logger *logging.ChanneledLogger) *ContentHandlers {
	return &ContentHandlers{
		articleService: articleService,
		logger:         logger,
	}
}

func (h *ContentHandlers) localeTree(c *gin.Context) (*content.LocaleContent, bool) {
	lc, err := h.articleService.Store().Get(c.Param("locale"))
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}
	c.Header("Content-Language", lc.Tag)
	c.Header("X-Snapshot-ID", h.articleService.Store().SnapshotID())
	return lc, true
}

// GetLocales lists the published locales and their tags.
func (h *ContentHandlers) GetLocales(c *gin.Context) {
	store := h.articleService.Store()
	out := make([]gin.H, 0, len(store.Locales()))
	for _, l := range store.Locales() {
		out = append(out, gin.H{"locale": l, "tag": l.Tag()})
	}
	c.JSON(http.StatusOK, gin.H{
		"locales":    out,
		"snapshotId": store.SnapshotID(),
		"builtAt":    store.BuiltAt(),
	})
}

// GetContent returns the whole tree for a locale.
func (h *ContentHandlers) GetContent(c *gin.Context) {
	start := time.Now()
	lc, ok := h.localeTree(c)
	if !ok {
		return
	}
	h.logger.Content().Debug("Serving locale tree", "locale", lc.Locale, "duration", time.Since(start))
	c.JSON(http.StatusOK, lc)
}

// GetArticle returns only the ordered article blocks plus the content map.
func (h *ContentHandlers) GetArticle(c *gin.Context) {
	lc, ok := h.localeTree(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"locale":         lc.Locale,
		"tag":            lc.Tag,
		"articleContent": lc.Article,
		"contentMap":     lc.ContentMap(),
	})
}

// GetComponent returns one auxiliary bag by component name.
func (h *ContentHandlers) GetComponent(c *gin.Context) {
	lc, ok := h.localeTree(c)
	if !ok {
		return
	}
	bag, err := h.articleService.Component(lc.Locale, c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"component": c.Param("name"), "locale": lc.Locale, "data": bag})
}

// GetOfficers pages the officer table. Query: status, offset, limit.
func (h *ContentHandlers) GetOfficers(c *gin.Context) {
	lc, ok := h.localeTree(c)
	if !ok {
		return
	}

	var status content.OfficerStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := content.ParseOfficerStatus(raw)
		if !ok {
			abortWithError(c, fmt.Errorf("%w: unknown status %q", services.ErrInvalidPage, raw))
			return
		}
		status = parsed
	}

	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		abortWithError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", services.DefaultOfficerPageSize)
	if err != nil {
		abortWithError(c, err)
		return
	}

	page, err := h.articleService.OfficerPage(lc.Locale, status, offset, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetAbsconded returns the sorted desertion timeline.
func (h *ContentHandlers) GetAbsconded(c *gin.Context) {
	lc, ok := h.localeTree(c)
	if !ok {
		return
	}
	tl, err := h.articleService.AbscondedTimeline(lc.Locale)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, tl)
}

// GetFormat converts the digits of value to the requested locale's numerals.
func (h *ContentHandlers) GetFormat(c *gin.Context) {
	l, err := locale.Parse(c.DefaultQuery("locale", string(locale.English)))
	if err != nil {
		abortWithError(c, err)
		return
	}
	value := c.Query("value")
	c.JSON(http.StatusOK, gin.H{
		"locale":    l,
		"value":     value,
		"formatted": h.articleService.FormatNumber(value, l),
	})
}

// GetIntegrity returns the report produced when the store was built.
func (h *ContentHandlers) GetIntegrity(c *gin.Context) {
	report := h.articleService.Store().Report()
	c.JSON(http.StatusOK, gin.H{
		"report":    report,
		"hasErrors": report.HasErrors(),
		"errors":    len(report.Errors()),
		"warnings":  len(report.Warnings()),
	})
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", services.ErrInvalidPage, key)
	}
	return n, nil
}
