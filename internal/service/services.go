package service

import (
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/auth"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/comment"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/post"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/user"
)

type Collection struct {
	AuthService    *auth.AuthService
	PostService    *post.Service
	CommentService *comment.Service
	UserService    *user.Service
}
