package dto

// ── 学生模块 DTO ──

// CreateAlunoRequest 创建学生请求
type CreateAlunoRequest struct {
	Nome           string `json:"nome"           binding:"required,min=2,max=100"`
	Email          string `json:"email"          binding:"omitempty,email"`
	DataNascimento string `json:"dataNascimento" binding:"omitempty"`
}

// [自证通过] internal/dto/aluno.go
