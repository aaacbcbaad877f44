package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jmcnair/voterhub/api/auth"
	"github.com/jmcnair/voterhub/api/handler"
	"github.com/jmcnair/voterhub/config"
	"github.com/jmcnair/voterhub/congress"
	"github.com/jmcnair/voterhub/database"
)

// Server is the VoterHub HTTP server.
type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        *database.DB
	congress  *congress.Client
}

// New creates a new API server.
func New(cfg *config.Config, db *database.DB, client *congress.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
		congress:  client,
	}, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("voterhub_session", store))
}

func (s *Server) setupRoutes() {
	s.setupSession()
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.ginEngine.Use(auth.LoadUser(s.db))

	h := handler.New(s.db, s.congress, s.cfg.Congress.Number)

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/signup", h.SignupForm)
	s.ginEngine.POST("/signup", h.Signup)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/logout", h.Logout)

	search := s.ginEngine.Group("/search")
	search.GET("", h.HouseRoster)
	search.GET("/congress", h.SenateRoster)
	search.GET("/member/:id", h.MemberDetail)
	search.GET("/bill", h.BillSearch)
	search.GET("/bill/:id", h.BillDetail)

	users := s.ginEngine.Group("/users")
	users.Use(auth.RequireAuth())
	users.GET("/like", h.ToggleLike)
	users.POST("/like", h.ToggleLike)
	users.GET("/like/:id/delete", h.ToggleLikeByID)
	users.POST("/like/:id/delete", h.ToggleLikeByID)
	users.POST("/delete", h.DeleteAccount)

	s.ginEngine.NoRoute(h.NotFound)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.setupRoutes()
	return s.ginEngine.Run(s.cfg.Listen)
}
