package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/caching"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/performance"
	"github.com/dailystar-data/police-story-go/internal/presentation/templates"
)

// ArticleHandlers serves the server-rendered article pages.
type ArticleHandlers struct {
	store         *services.ContentStore
	renderer      *templates.ArticleRenderer
	cache         *caching.FragmentsStore
	basePath      string
	defaultLocale locale.Locale
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewArticleHandlers creates article handlers with injected dependencies
func NewArticleHandlers(store *services.ContentStore, renderer *templates.ArticleRenderer, cache *caching.FragmentsStore, basePath string, defaultLocale locale.Locale, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ArticleHandlers {
	return &ArticleHandlers{
		store:         store,
		renderer:      renderer,
		cache:         cache,
		basePath:      strings.TrimRight(basePath, "/"),
		defaultLocale: defaultLocale,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// GetArticlePage renders the full HTML article for a locale.
func (h *ArticleHandlers) GetArticlePage(c *gin.Context) {
	lc, err := h.store.Get(c.Param("locale"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Language", lc.Tag)
	snapshotID := h.store.SnapshotID()

	if chunk, ok := h.cache.GetHTMLChunk(snapshotID, string(lc.Locale), "article"); ok {
		c.Header("X-Cache", "HIT")
		c.Data(http.StatusOK, "text/html; charset=utf-8", chunk.HTML)
		return
	}

	marker := h.perfTracker.StartOperation("render:article", string(lc.Locale))
	defer marker.Complete()

	var buf bytes.Buffer
	if err := h.renderer.RenderArticle(&buf, lc); err != nil {
		marker.SetError(err)
		h.logger.Render().Error("Article render failed", "locale", lc.Locale, "error", err.Error())
		abortWithError(c, err)
		return
	}
	marker.SetSuccess(true)
	h.cache.SetHTMLChunk(snapshotID, string(lc.Locale), "article", buf.Bytes())

	c.Header("X-Cache", "MISS")
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	h.logger.Perf().Debug("Performance for GetArticlePage request", "duration", time.Since(marker.StartTime), "locale", lc.Locale)
}

// RedirectToPreferred sends the reader to the article in the locale that best
// matches Accept-Language.
func (h *ArticleHandlers) RedirectToPreferred(c *gin.Context) {
	l := locale.Negotiate(c.GetHeader("Accept-Language"), h.defaultLocale)
	c.Header("Vary", "Accept-Language")
	c.Redirect(http.StatusFound, h.basePath+"/article/"+string(l))
}
