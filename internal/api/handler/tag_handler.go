package handler

import (
	"errors"
	"net/http"
	"strings"

	"Quill/internal/api/dto"
	"Quill/internal/api/middleware"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/response"
	"Quill/internal/pkg/util"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	taxonomySvc service.TaxonomyService
}

func NewTagHandler(taxonomySvc service.TaxonomyService) *TagHandler {
	return &TagHandler{taxonomySvc: taxonomySvc}
}

func (s *TagHandler) Index(c *gin.Context) {
	s.render(c, "")
}

func (s *TagHandler) Create(c *gin.Context) {
	name, ok := s.bindName(c)
	if !ok {
		return
	}
	if _, err := s.taxonomySvc.CreateTag(c.Request.Context(), name); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

// Bulk 逗号分隔的批量建标签
func (s *TagHandler) Bulk(c *gin.Context) {
	var form dto.BulkTagForm
	_ = c.ShouldBind(&form)

	names := util.SplitNames(form.Names)
	if len(names) == 0 {
		s.render(c, service.ErrNameEmpty.Error())
		return
	}
	if _, err := s.taxonomySvc.CreateTags(c.Request.Context(), names); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

func (s *TagHandler) Update(c *gin.Context) {
	name, ok := s.bindName(c)
	if !ok {
		return
	}
	if _, err := s.taxonomySvc.RenameTag(c.Request.Context(), c.Param("id"), name); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

func (s *TagHandler) Delete(c *gin.Context) {
	if err := s.taxonomySvc.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/tags")
}

func (s *TagHandler) bindName(c *gin.Context) (string, bool) {
	var form dto.NameForm
	_ = c.ShouldBind(&form)

	name := strings.TrimSpace(form.Name)
	if name == "" {
		s.render(c, service.ErrNameEmpty.Error())
		return "", false
	}
	return name, true
}

func (s *TagHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, backend.ErrSessionExpired) {
		response.RedirectLogin(c)
		return
	}
	_, msg := response.Message(err)
	s.render(c, msg)
}

func (s *TagHandler) render(c *gin.Context, errMsg string) {
	tags, err := s.taxonomySvc.Tags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, "tags.html", gin.H{
		"User":  middleware.CurrentUser(c),
		"Tags":  tags,
		"Error": errMsg,
	})
}
