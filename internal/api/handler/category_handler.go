package handler

import (
	"errors"
	"net/http"
	"strings"

	"Quill/internal/api/dto"
	"Quill/internal/api/middleware"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/response"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	taxonomySvc service.TaxonomyService
}

func NewCategoryHandler(taxonomySvc service.TaxonomyService) *CategoryHandler {
	return &CategoryHandler{taxonomySvc: taxonomySvc}
}

func (s *CategoryHandler) Index(c *gin.Context) {
	s.render(c, "")
}

func (s *CategoryHandler) Create(c *gin.Context) {
	name, ok := s.bindName(c)
	if !ok {
		return
	}
	if _, err := s.taxonomySvc.CreateCategory(c.Request.Context(), name); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}

func (s *CategoryHandler) Update(c *gin.Context) {
	name, ok := s.bindName(c)
	if !ok {
		return
	}
	if _, err := s.taxonomySvc.RenameCategory(c.Request.Context(), c.Param("id"), name); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}

func (s *CategoryHandler) Delete(c *gin.Context) {
	if err := s.taxonomySvc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}

// bindName 空白名称在本地拒绝，不发起网络请求
func (s *CategoryHandler) bindName(c *gin.Context) (string, bool) {
	var form dto.NameForm
	_ = c.ShouldBind(&form)

	name := strings.TrimSpace(form.Name)
	if name == "" {
		s.render(c, service.ErrNameEmpty.Error())
		return "", false
	}
	return name, true
}

func (s *CategoryHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, backend.ErrSessionExpired) {
		response.RedirectLogin(c)
		return
	}
	_, msg := response.Message(err)
	s.render(c, msg)
}

func (s *CategoryHandler) render(c *gin.Context, errMsg string) {
	categories, err := s.taxonomySvc.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, "categories.html", gin.H{
		"User":       middleware.CurrentUser(c),
		"Categories": categories,
		"Error":      errMsg,
	})
}
