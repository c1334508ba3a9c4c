package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgapp "github.com/haierkeys/lead-intention-service/pkg/app"
	"github.com/haierkeys/lead-intention-service/pkg/code"
	"github.com/haierkeys/lead-intention-service/pkg/limiter"
	"github.com/haierkeys/lead-intention-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddlewareWithConfig(true, ""))
	var fromCtx, fromGin string
	r.GET("/", func(c *gin.Context) {
		fromCtx = GetTraceID(c.Request.Context())
		fromGin = GetTraceIDFromGin(c)
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", nil)
	require.NotEmpty(t, fromCtx)
	assert.Equal(t, fromCtx, fromGin)
	assert.Equal(t, fromCtx, w.Header().Get(DefaultTraceIDHeader))

	w = serve(r, http.MethodGet, "/", http.Header{DefaultTraceIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", fromCtx)
	assert.Equal(t, "abc-123", w.Header().Get(DefaultTraceIDHeader))
}

func TestTraceMiddleware_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddlewareWithConfig(false, "X-Request-ID"))
	r.GET("/", func(c *gin.Context) {
		assert.Empty(t, GetTraceIDFromGin(c))
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", nil)
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestNegotiateLang(t *testing.T) {
	tests := map[string]string{
		"":                        "en",
		"pt-BR,pt;q=0.9,en;q=0.8": "pt_br",
		"pt":                      "pt_br",
		"pt_br":                   "pt_br",
		"en-US":                   "en",
		"fr-FR, pt;q=0.5":         "pt_br",
		"de":                      "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, NegotiateLang(in), in)
	}
}

func TestNegotiateLang_GlobalDefault(t *testing.T) {
	require.NoError(t, code.SetGlobalDefaultLang("pt_br"))
	t.Cleanup(func() { _ = code.SetGlobalDefaultLang(code.FALLBACK_LNG) })

	assert.Equal(t, "pt_br", NegotiateLang(""))
	assert.Equal(t, "pt_br", NegotiateLang("de"))
	assert.Equal(t, "en", NegotiateLang("en-US"))
}

func TestLangWithTranslator(t *testing.T) {
	uni := ut.New(en.New(), en.New(), pt_BR.New())
	r := gin.New()
	r.Use(LangWithTranslator(uni))
	var lang, locale string
	r.GET("/", func(c *gin.Context) {
		lang = pkgapp.GetLang(c)
		locale = c.MustGet(TransKey).(ut.Translator).Locale()
		c.Status(http.StatusOK)
	})

	serve(r, http.MethodGet, "/", http.Header{"Accept-Language": {"pt-BR"}})
	assert.Equal(t, "pt_br", lang)
	assert.Equal(t, "pt_BR", locale)

	serve(r, http.MethodGet, "/?lang=en", http.Header{"Accept-Language": {"pt-BR"}})
	assert.Equal(t, "en", lang)
	assert.Equal(t, "en", locale)
}

func TestRecoveryWithLogger(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(RecoveryWithLogger(zap.New(core)))
	r.GET("/", func(c *gin.Context) {
		panic("secret failure")
	})

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.Len())
}

func TestRateLimiter(t *testing.T) {
	l := limiter.NewMethodLimiter().AddBuckets(limiter.BucketRule{
		Key:          "/leads",
		FillInterval: time.Hour,
		Capacity:     1,
		Quantum:      1,
	})
	r := gin.New()
	r.Use(RateLimiter(l))
	r.POST("/leads", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/leads", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/leads", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", nil).Code)
}

func TestNoFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NoFound())

	w := serve(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"API not found"}`, w.Body.String())
}

func TestContextTimeout(t *testing.T) {
	r := gin.New()
	r.Use(ContextTimeout(50 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})
	serve(r, http.MethodGet, "/", nil)
}

func TestContextTimeout_Expired(t *testing.T) {
	r := gin.New()
	r.Use(ContextTimeout(10 * time.Millisecond))
	r.GET("/", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "Request timed out")
}

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/health", nil)
	serve(r, http.MethodGet, "/nope", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/health", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestAccessLogWithLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(TraceMiddlewareWithConfig(true, ""), AccessLogWithLogger(zap.New(core)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/health?x=1", nil)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "/health", entry.Message)
	assert.Equal(t, "/health?x=1", entry.ContextMap()["url"])
	assert.NotEmpty(t, entry.ContextMap()["traceId"])
	assert.Equal(t, "192.0.2.1", entry.ContextMap()["ip"])
}
