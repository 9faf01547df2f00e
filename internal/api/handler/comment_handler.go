package handler

import (
	"errors"
	"net/http"
	"net/url"

	"Quill/internal/api/dto"
	"Quill/internal/pkg/backend"
	"Quill/internal/pkg/response"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论操作全部从详情页发起，完成后跳回详情页，
// 失败消息通过 cerr 查询参数带回。
type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) Create(c *gin.Context) {
	postID := c.Param("id")
	var form dto.CommentForm
	_ = c.ShouldBind(&form)

	if _, err := s.commentSvc.Create(c.Request.Context(), postID, form.Content); err != nil {
		s.backToPost(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID)
}

func (s *CommentHandler) Update(c *gin.Context) {
	var form dto.CommentForm
	_ = c.ShouldBind(&form)

	if _, err := s.commentSvc.Update(c.Request.Context(), c.Param("id"), form.Content); err != nil {
		s.backToPost(c, form.PostID, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+form.PostID)
}

func (s *CommentHandler) Delete(c *gin.Context) {
	postID := c.PostForm("post_id")

	if err := s.commentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.backToPost(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID)
}

func (s *CommentHandler) Like(c *gin.Context) {
	postID := c.PostForm("post_id")

	if _, err := s.commentSvc.Like(c.Request.Context(), c.Param("id")); err != nil {
		s.backToPost(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID)
}

func (s *CommentHandler) Unlike(c *gin.Context) {
	postID := c.PostForm("post_id")

	if _, err := s.commentSvc.Unlike(c.Request.Context(), c.Param("id")); err != nil {
		s.backToPost(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID)
}

func (s *CommentHandler) backToPost(c *gin.Context, postID string, err error) {
	if errors.Is(err, backend.ErrSessionExpired) {
		response.RedirectLogin(c)
		return
	}
	_, msg := response.Message(err)
	c.Redirect(http.StatusFound, "/posts/"+postID+"?cerr="+url.QueryEscape(msg))
}
