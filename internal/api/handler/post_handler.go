package handler

import (
	"errors"
	log "log/slog"
	"net/http"

	"Quill/internal/api/dto"
	"Quill/internal/api/middleware"
	"Quill/internal/model"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/response"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc     service.PostService
	commentSvc  service.CommentService
	taxonomySvc service.TaxonomyService
}

func NewPostHandler(postSvc service.PostService, commentSvc service.CommentService, taxonomySvc service.TaxonomyService) *PostHandler {
	return &PostHandler{
		postSvc:     postSvc,
		commentSvc:  commentSvc,
		taxonomySvc: taxonomySvc,
	}
}

func (s *PostHandler) Show(c *gin.Context) {
	id := c.Param("id")
	current := middleware.CurrentUser(c)

	post, err := s.postSvc.Detail(c.Request.Context(), id, current)
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"User":         current,
		"Post":         post,
		"CommentError": c.Query("cerr"),
	}

	// 评论区失败不拖垮详情页
	comments, err := s.commentSvc.ListByPost(c.Request.Context(), id, current)
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			response.RedirectLogin(c)
			return
		}
		log.WarnContext(c.Request.Context(), "comments load failed", "post_id", id, "err", err)
		data["CommentsError"] = "Failed to load comments."
	} else {
		data["Comments"] = comments
		count, err := s.commentSvc.CountByPost(c.Request.Context(), id)
		if err != nil {
			count = len(comments)
		}
		data["CommentCount"] = count
	}

	response.HTML(c, "post.html", data)
}

func (s *PostHandler) NewPage(c *gin.Context) {
	s.renderEditor(c, nil, "")
}

func (s *PostHandler) Create(c *gin.Context) {
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		_, msg := response.Message(err)
		s.renderEditor(c, nil, msg)
		return
	}

	post, err := s.postSvc.Create(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			response.RedirectLogin(c)
			return
		}
		_, msg := response.Message(err)
		s.renderEditor(c, nil, msg)
		return
	}

	s.afterSave(c, post)
}

func (s *PostHandler) EditPage(c *gin.Context) {
	id := c.Param("id")

	post, err := s.postSvc.Raw(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 入口展示层面的归属判定，真正的权限约束在后端
	current := middleware.CurrentUser(c)
	if post.Author == nil || current == nil || current.ID != post.Author.ID {
		c.Redirect(http.StatusFound, "/posts/"+id)
		return
	}

	s.renderEditor(c, post, "")
}

func (s *PostHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		_, msg := response.Message(err)
		s.renderEditor(c, nil, msg)
		return
	}

	post, err := s.postSvc.Update(c.Request.Context(), id, form)
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			response.RedirectLogin(c)
			return
		}
		_, msg := response.Message(err)
		s.renderEditor(c, nil, msg)
		return
	}

	s.afterSave(c, post)
}

func (s *PostHandler) Delete(c *gin.Context) {
	if err := s.postSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *PostHandler) Drafts(c *gin.Context) {
	cards, err := s.postSvc.Drafts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, "drafts.html", gin.H{
		"User":  middleware.CurrentUser(c),
		"Posts": cards,
	})
}

// afterSave 发布后的帖子跳详情页，草稿回草稿箱
func (s *PostHandler) afterSave(c *gin.Context, post *model.Post) {
	if post.Status == model.PostStatusPublished {
		c.Redirect(http.StatusFound, "/posts/"+post.ID)
		return
	}
	c.Redirect(http.StatusFound, "/drafts")
}

func (s *PostHandler) renderEditor(c *gin.Context, post *model.Post, errMsg string) {
	categories, err := s.taxonomySvc.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	tags, err := s.taxonomySvc.Tags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	// 回填已勾选的标签
	selected := make(map[string]bool)
	if post != nil {
		for _, t := range post.Tags {
			selected[t.ID] = true
		}
	}

	response.HTML(c, "editor.html", gin.H{
		"User":       middleware.CurrentUser(c),
		"Post":       post,
		"Categories": categories,
		"Tags":       tags,
		"Selected":   selected,
		"Error":      errMsg,
	})
}
