package service

import (
	"go.uber.org/zap"

	"apae-digital/backend/config"
	"apae-digital/backend/internal/repository"
	"apae-digital/backend/pkg/jwt"
	"apae-digital/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Atividade AtividadeService
	Professor ProfessorService
	Aluno     AlunoService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Atividade: NewAtividadeService(repo, logger),
		Professor: NewProfessorService(repo, logger),
		Aluno:     NewAlunoService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
