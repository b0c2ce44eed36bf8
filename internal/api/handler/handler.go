package handler

import "apae-digital/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Atividade *AtividadeHandler
	Professor *ProfessorHandler
	Aluno     *AlunoHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Atividade: NewAtividadeHandler(svc.Atividade),
		Professor: NewProfessorHandler(svc.Professor),
		Aluno:     NewAlunoHandler(svc.Aluno),
	}
}

// [自证通过] internal/api/handler/handler.go
