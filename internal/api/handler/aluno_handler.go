package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"apae-digital/backend/internal/dto"
	"apae-digital/backend/internal/service"
	"apae-digital/backend/pkg/response"
)

// AlunoHandler 学生模块 HTTP 处理器
type AlunoHandler struct {
	alunoSvc service.AlunoService
}

// NewAlunoHandler 创建 AlunoHandler
func NewAlunoHandler(alunoSvc service.AlunoService) *AlunoHandler {
	return &AlunoHandler{alunoSvc: alunoSvc}
}

// CreateAluno 创建学生
// POST /aluno
func (h *AlunoHandler) CreateAluno(c *gin.Context) {
	var req dto.CreateAlunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Dados inválidos")
		return
	}

	aluno, err := h.alunoSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, aluno)
}

// ListAlunos 获取学生列表（App 端学生选择器数据源）
// GET /aluno
func (h *AlunoHandler) ListAlunos(c *gin.Context) {
	alunos, err := h.alunoSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, alunos)
}

// GetAluno 获取学生详情
// GET /aluno/:id
func (h *AlunoHandler) GetAluno(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	aluno, err := h.alunoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAlunoNotFound) {
			response.NotFound(c, 12002, "Aluno não encontrado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, aluno)
}

// [自证通过] internal/api/handler/aluno_handler.go
