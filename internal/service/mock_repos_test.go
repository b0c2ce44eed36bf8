package service

import (
	"context"

	"gorm.io/gorm"

	"apae-digital/backend/internal/model"
)

// ── Mock AtividadeRepository ──

type mockAtividadeRepo struct {
	atividades map[int]*model.Atividade
	idCounter  int
	// professores 供 GetByID 填充 Professor 关联，模拟 Preload
	professores map[int]*model.Professor
}

func newMockAtividadeRepo() *mockAtividadeRepo {
	return &mockAtividadeRepo{
		atividades:  make(map[int]*model.Atividade),
		professores: make(map[int]*model.Professor),
	}
}

func (m *mockAtividadeRepo) Create(_ context.Context, atividade *model.Atividade) error {
	if atividade.ID == 0 {
		m.idCounter++
		atividade.ID = m.idCounter
	}
	cp := *atividade
	m.atividades[cp.ID] = &cp
	return nil
}

func (m *mockAtividadeRepo) GetByID(_ context.Context, id int) (*model.Atividade, error) {
	a, ok := m.atividades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.loaded(a), nil
}

func (m *mockAtividadeRepo) ListAll(_ context.Context) ([]model.Atividade, error) {
	var result []model.Atividade
	for _, a := range m.atividades {
		result = append(result, *m.loaded(a))
	}
	return result, nil
}

func (m *mockAtividadeRepo) ListByProfessor(_ context.Context, professorID int) ([]model.Atividade, error) {
	var result []model.Atividade
	for _, a := range m.atividades {
		if a.ProfessorID == professorID {
			result = append(result, *m.loaded(a))
		}
	}
	return result, nil
}

func (m *mockAtividadeRepo) UpdateFields(_ context.Context, id int, fields map[string]interface{}) error {
	a, ok := m.atividades[id]
	if !ok {
		// GORM 的 Updates 对不存在的行不报错，只是影响 0 行
		return nil
	}
	for col, v := range fields {
		switch col {
		case "titulo":
			a.Titulo = v.(string)
		case "descricao":
			a.Descricao = v.(string)
		case "data":
			a.Data = v.(string)
		case "hora":
			a.Hora = v.(string)
		case "professor_id":
			a.ProfessorID = v.(int)
		}
	}
	return nil
}

func (m *mockAtividadeRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := m.atividades[id]; !ok {
		return 0, nil
	}
	delete(m.atividades, id)
	return 1, nil
}

func (m *mockAtividadeRepo) AddAluno(_ context.Context, atividadeID int, aluno *model.Aluno) error {
	a, ok := m.atividades[atividadeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range a.Alunos {
		if a.Alunos[i].ID == aluno.ID {
			return nil
		}
	}
	a.Alunos = append(a.Alunos, *aluno)
	return nil
}

func (m *mockAtividadeRepo) RemoveAluno(_ context.Context, atividadeID int, aluno *model.Aluno) error {
	a, ok := m.atividades[atividadeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	var remaining []model.Aluno
	for _, al := range a.Alunos {
		if al.ID != aluno.ID {
			remaining = append(remaining, al)
		}
	}
	a.Alunos = remaining
	return nil
}

// loaded 返回带关联的副本，模拟 Preload("Professor")/Preload("Alunos")
func (m *mockAtividadeRepo) loaded(a *model.Atividade) *model.Atividade {
	cp := *a
	cp.Alunos = append([]model.Aluno(nil), a.Alunos...)
	if p, ok := m.professores[a.ProfessorID]; ok {
		pcp := *p
		cp.Professor = &pcp
	}
	return &cp
}

// ── Mock ProfessorRepository ──

type mockProfessorRepo struct {
	professores map[int]*model.Professor
	idCounter   int
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{professores: make(map[int]*model.Professor)}
}

func (m *mockProfessorRepo) Create(_ context.Context, professor *model.Professor) error {
	if professor.ID == 0 {
		m.idCounter++
		professor.ID = m.idCounter
	}
	m.professores[professor.ID] = professor
	return nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id int) (*model.Professor, error) {
	if p, ok := m.professores[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) GetByEmail(_ context.Context, email string) (*model.Professor, error) {
	for _, p := range m.professores {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) Update(_ context.Context, professor *model.Professor) error {
	m.professores[professor.ID] = professor
	return nil
}

func (m *mockProfessorRepo) List(_ context.Context) ([]model.Professor, error) {
	var result []model.Professor
	for _, p := range m.professores {
		result = append(result, *p)
	}
	return result, nil
}

// ── Mock AlunoRepository ──

type mockAlunoRepo struct {
	alunos    map[int]*model.Aluno
	idCounter int
}

func newMockAlunoRepo() *mockAlunoRepo {
	return &mockAlunoRepo{alunos: make(map[int]*model.Aluno)}
}

func (m *mockAlunoRepo) Create(_ context.Context, aluno *model.Aluno) error {
	if aluno.ID == 0 {
		m.idCounter++
		aluno.ID = m.idCounter
	}
	m.alunos[aluno.ID] = aluno
	return nil
}

func (m *mockAlunoRepo) GetByID(_ context.Context, id int) (*model.Aluno, error) {
	if a, ok := m.alunos[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlunoRepo) List(_ context.Context) ([]model.Aluno, error) {
	var result []model.Aluno
	for _, a := range m.alunos {
		result = append(result, *a)
	}
	return result, nil
}
