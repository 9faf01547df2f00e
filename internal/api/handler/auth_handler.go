package handler

import (
	"errors"
	log "log/slog"
	"net/http"
	"time"

	"Quill/internal/api/config"
	"Quill/internal/api/dto"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/response"
	"Quill/internal/pkg/util"
	"Quill/internal/service"
	"Quill/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authSvc service.AuthService
	store   session.Store
}

func NewAuthHandler(authSvc service.AuthService, store session.Store) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
		store:   store,
	}
}

func (s *AuthHandler) LoginPage(c *gin.Context) {
	response.HTML(c, "login.html", gin.H{})
}

func (s *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		_, msg := response.Message(err)
		response.HTML(c, "login.html", gin.H{"Error": msg, "Email": form.Email})
		return
	}
	// 本地规则不过的密码不发请求
	if msg := util.PasswordError(form.Password); msg != "" {
		response.HTML(c, "login.html", gin.H{"Error": msg, "Email": form.Email})
		return
	}

	sess, ttl, err := s.authSvc.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		msg := "Invalid email or password."
		if !errors.Is(err, backend.ErrSessionExpired) {
			_, msg = response.Message(err)
		}
		response.HTML(c, "login.html", gin.H{"Error": msg, "Email": form.Email})
		return
	}

	if ttl <= 0 {
		ttl = time.Duration(config.Cfg.Session.TTL) * time.Second
	}
	sid := uuid.NewString()
	if err := s.store.Set(c.Request.Context(), sid, sess, ttl); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(config.Cfg.Session.Cookie, sid, int(ttl.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *AuthHandler) RegisterPage(c *gin.Context) {
	response.HTML(c, "register.html", gin.H{})
}

func (s *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		_, msg := response.Message(err)
		response.HTML(c, "register.html", gin.H{"Error": msg, "Name": form.Name, "Email": form.Email})
		return
	}
	if msg := util.PasswordError(form.Password); msg != "" {
		response.HTML(c, "register.html", gin.H{"Error": msg, "Name": form.Name, "Email": form.Email})
		return
	}

	if _, err := s.authSvc.Register(c.Request.Context(), form.Name, form.Email, form.Password); err != nil {
		_, msg := response.Message(err)
		response.HTML(c, "register.html", gin.H{"Error": msg, "Name": form.Name, "Email": form.Email})
		return
	}

	response.HTML(c, "login.html", gin.H{"Notice": "Account created. Please log in."})
}

func (s *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(config.Cfg.Session.Cookie); err == nil && sid != "" {
		if err := s.store.Clear(c.Request.Context(), sid); err != nil {
			log.WarnContext(c.Request.Context(), "session clear failed", "err", err)
		}
	}
	c.SetCookie(config.Cfg.Session.Cookie, "", -1, "/", "", false, true)
	response.RedirectLogin(c)
}
