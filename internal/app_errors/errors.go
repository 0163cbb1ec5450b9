package app_errors

import "errors"

var ErrUserExists = errors.New("username or email already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrTokenExpired = errors.New("token expired")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidRefreshToken = errors.New("invalid refresh token")
var ErrRefreshTokenRequired = errors.New("refreshToken is required")
var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrNotOwner = errors.New("not the owner of this resource")
var ErrInvalidID = errors.New("invalid id")
