// Package app wires the HTTP surface together
package app

import (
	"fmt"
	"strings"
	"time"

	"verihire/candidate-api/app/admin"
	"verihire/candidate-api/app/auth"
	"verihire/candidate-api/app/candidate"
	"verihire/candidate-api/app/employer"
	"verihire/candidate-api/app/root"
	"verihire/candidate-api/db"
	"verihire/candidate-api/internal"
	"verihire/candidate-api/internal/policy"
	"verihire/candidate-api/internal/service"
	"verihire/candidate-api/pkg/middleware"
	"verihire/candidate-api/pkg/security"
	"verihire/candidate-api/storage"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

// TODO: use redis once the service runs with more than one replica
var cacheStore = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	d := &internal.Deps{
		Argon: security.New(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	err = db.EnsureAdmin(database, d.Argon, viper.GetString("admin.email"), viper.GetString("admin.password"))
	if err != nil {
		return nil, fmt.Errorf("failed to seed admin account, %w", err)
	}

	blob, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage, %w", err)
	}
	d.Blob = blob
	d.Docs = service.NewDocuments(database, blob)

	router := gin.New()

	origins := strings.Split(viper.GetString("host.cors"), ",")

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	// Uploaded blobs are served straight from disk when the local
	// backend is active, the S3 backend serves from its public URL
	if local, ok := blob.(*storage.LocalStorage); ok {
		router.Static("/uploads", local.Dir)
	}

	jwt := middleware.NewJWTMiddleware(database)
	rateLimit := viper.GetInt("security.rate_limit")
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})
	maxUploadSize := viper.GetInt64("upload.max_size")

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 			-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	a := m.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/register		-> Registers a candidate account + profile
		a.POST("/register", func(c *gin.Context) { auth.Register(c, d) })

		// POST /api/auth/register/employer	-> Registers an employer account
		a.POST("/register/employer", func(c *gin.Context) { auth.RegisterEmployer(c, d) })

		// POST /api/auth/login 		-> Logs in and sets the auth cookie
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// POST /api/auth/logout		-> Clears the auth cookie
		a.POST("/logout", auth.Logout)
	}

	ca := m.Group("/candidate", jwt)
	{
		// GET /api/candidate/profile		-> Returns the caller's own profile
		ca.GET("/profile", gate(policy.ActionCandidateProfileRead), func(c *gin.Context) { candidate.ProfileFetch(c, d) })

		// PUT /api/candidate/profile		-> Overwrites the personal fields
		ca.PUT("/profile", gate(policy.ActionCandidateProfileWrite), middleware.BodySizeLimiter(1<<20), func(c *gin.Context) { candidate.ProfileUpdate(c, d) })

		// POST /api/candidate/profile/submit	-> Enters the review queue
		ca.POST("/profile/submit", gate(policy.ActionCandidateSubmit), func(c *gin.Context) { candidate.ProfileSubmit(c, d) })

		// GET /api/candidate/documents		-> Lists the caller's documents
		ca.GET("/documents", gate(policy.ActionCandidateDocumentRead), func(c *gin.Context) { candidate.DocumentList(c, d) })

		// POST /api/candidate/documents	-> Uploads a supporting document
		ca.POST("/documents", gate(policy.ActionCandidateDocumentWrite), middleware.BodySizeLimiter(maxUploadSize), func(c *gin.Context) { candidate.DocumentUpload(c, d) })
	}

	ad := m.Group("/admin", jwt)
	{
		// GET /api/admin/candidates		-> Lists every candidate profile
		ad.GET("/candidates", gate(policy.ActionAdminCandidateList), func(c *gin.Context) { admin.CandidateList(c, d) })

		// GET /api/admin/candidates/:id	-> Profile + documents for review
		ad.GET("/candidates/:id", gate(policy.ActionAdminCandidateRead), func(c *gin.Context) { admin.CandidateFetch(c, d) })

		// POST /api/admin/candidates/:id/review -> Applies a verification decision
		ad.POST("/candidates/:id/review", gate(policy.ActionAdminReview), func(c *gin.Context) { admin.Review(c, d) })
	}

	em := m.Group("/employer", jwt)
	{
		// GET /api/employer/candidates		-> Verified candidates only
		em.GET("/candidates", gate(policy.ActionEmployerCandidateList), cacheFor(30), func(c *gin.Context) { employer.CandidateList(c, d) })

		// GET /api/employer/candidates/:id	-> A single verified candidate
		em.GET("/candidates/:id", gate(policy.ActionEmployerCandidateRead), func(c *gin.Context) { employer.CandidateFetch(c, d) })
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func gate(action policy.Action) gin.HandlerFunc {
	return middleware.Authorize(action)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
