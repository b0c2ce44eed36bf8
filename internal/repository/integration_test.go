//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"apae-digital/backend/internal/model"
	"apae-digital/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=apae password=apae_password dbname=apae_digital_test sslmode=disable TimeZone=America/Sao_Paulo"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Professor{},
		&model.Aluno{},
		&model.Atividade{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (professor *model.Professor, aluno *model.Aluno, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	professor = &model.Professor{
		Nome:      "Professor Teste",
		Email:     fmt.Sprintf("prof%d@apae.org.br", time.Now().UnixNano()),
		SenhaHash: "$2a$10$placeholder",
	}
	if err := testDB.WithContext(ctx).Create(professor).Error; err != nil {
		t.Fatalf("创建教师失败: %v", err)
	}

	aluno = &model.Aluno{
		Nome:  "Aluno Teste",
		Email: fmt.Sprintf("aluno%d@apae.org.br", time.Now().UnixNano()),
	}
	if err := testDB.WithContext(ctx).Create(aluno).Error; err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}

	cleanup = func() {
		testDB.Unscoped().Where("id = ?", aluno.ID).Delete(&model.Aluno{})
		testDB.Unscoped().Where("id = ?", professor.ID).Delete(&model.Professor{})
	}
	return
}

func createAtividade(t *testing.T, repo repository.AtividadeRepository, professorID int) *model.Atividade {
	t.Helper()
	atividade := &model.Atividade{
		Titulo:      "Leitura",
		Descricao:   "Ler capítulo 1",
		Data:        "2024-06-01",
		Hora:        "10:00",
		ProfessorID: professorID,
	}
	if err := repo.Create(context.Background(), atividade); err != nil {
		t.Fatalf("创建活动失败: %v", err)
	}
	return atividade
}

// ═══════════════════════════════════════════════════════════
// AtividadeRepository Tests
// ═══════════════════════════════════════════════════════════

func TestAtividadeRepo_Create_GetByID(t *testing.T) {
	professor, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewAtividadeRepo(testDB)
	atividade := createAtividade(t, repo, professor.ID)
	defer testDB.Unscoped().Where("id = ?", atividade.ID).Delete(&model.Atividade{})

	got, err := repo.GetByID(context.Background(), atividade.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Titulo != "Leitura" {
		t.Errorf("期望Titulo=Leitura，实际=%s", got.Titulo)
	}
	// Preload 填充教师关联
	if got.Professor == nil || got.Professor.ID != professor.ID {
		t.Error("Professor 关联应被填充")
	}
}

func TestAtividadeRepo_AddRemoveAluno(t *testing.T) {
	professor, aluno, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewAtividadeRepo(testDB)
	atividade := createAtividade(t, repo, professor.ID)
	defer testDB.Unscoped().Where("id = ?", atividade.ID).Delete(&model.Atividade{})

	ctx := context.Background()
	if err := repo.AddAluno(ctx, atividade.ID, aluno); err != nil {
		t.Fatalf("AddAluno 应成功: %v", err)
	}

	got, err := repo.GetByID(ctx, atividade.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if len(got.Alunos) != 1 {
		t.Fatalf("期望1名学生，实际=%d", len(got.Alunos))
	}

	// GORM Append 对已存在的关联不产生重复行
	if err := repo.AddAluno(ctx, atividade.ID, aluno); err != nil {
		t.Fatalf("重复 AddAluno 应成功: %v", err)
	}
	got, _ = repo.GetByID(ctx, atividade.ID)
	if len(got.Alunos) != 1 {
		t.Errorf("期望1名学生（无重复），实际=%d", len(got.Alunos))
	}

	if err := repo.RemoveAluno(ctx, atividade.ID, aluno); err != nil {
		t.Fatalf("RemoveAluno 应成功: %v", err)
	}
	got, _ = repo.GetByID(ctx, atividade.ID)
	if len(got.Alunos) != 0 {
		t.Errorf("期望空学生集合，实际=%d", len(got.Alunos))
	}
}

func TestAtividadeRepo_Delete_CascadeJoinRows(t *testing.T) {
	professor, aluno, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewAtividadeRepo(testDB)
	atividade := createAtividade(t, repo, professor.ID)

	ctx := context.Background()
	if err := repo.AddAluno(ctx, atividade.ID, aluno); err != nil {
		t.Fatalf("AddAluno 应成功: %v", err)
	}

	rows, err := repo.Delete(ctx, atividade.ID)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if rows != 1 {
		t.Errorf("期望影响1行，实际=%d", rows)
	}

	// 关联表行被级联删除，不留孤儿行
	var count int64
	testDB.Table("atividade_alunos").Where("atividade_id = ?", atividade.ID).Count(&count)
	if count != 0 {
		t.Errorf("期望关联表无孤儿行，实际=%d", count)
	}

	// 学生本身不受影响
	alunoRepo := repository.NewAlunoRepo(testDB)
	if _, err := alunoRepo.GetByID(ctx, aluno.ID); err != nil {
		t.Errorf("学生不应被级联删除: %v", err)
	}
}

func TestAtividadeRepo_Delete_NotFound(t *testing.T) {
	repo := repository.NewAtividadeRepo(testDB)

	rows, err := repo.Delete(context.Background(), 999999)
	if err != nil {
		t.Fatalf("Delete 不应报错: %v", err)
	}
	if rows != 0 {
		t.Errorf("期望影响0行，实际=%d", rows)
	}
}

func TestAtividadeRepo_ListByProfessor(t *testing.T) {
	professor, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewAtividadeRepo(testDB)
	a1 := createAtividade(t, repo, professor.ID)
	a2 := createAtividade(t, repo, professor.ID)
	defer func() {
		testDB.Unscoped().Where("id IN ?", []int{a1.ID, a2.ID}).Delete(&model.Atividade{})
	}()

	result, err := repo.ListByProfessor(context.Background(), professor.ID)
	if err != nil {
		t.Fatalf("ListByProfessor 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("期望2条活动，实际=%d", len(result))
	}
}

func TestAtividadeRepo_UpdateFields(t *testing.T) {
	professor, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewAtividadeRepo(testDB)
	atividade := createAtividade(t, repo, professor.ID)
	defer testDB.Unscoped().Where("id = ?", atividade.ID).Delete(&model.Atividade{})

	ctx := context.Background()
	err := repo.UpdateFields(ctx, atividade.ID, map[string]interface{}{"titulo": "Escrita"})
	if err != nil {
		t.Fatalf("UpdateFields 应成功: %v", err)
	}

	got, err := repo.GetByID(ctx, atividade.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Titulo != "Escrita" {
		t.Errorf("期望Titulo=Escrita，实际=%s", got.Titulo)
	}
	// 未更新字段保持原值
	if got.Descricao != "Ler capítulo 1" {
		t.Errorf("Descricao 不应改变，实际=%s", got.Descricao)
	}
}

// ═══════════════════════════════════════════════════════════
// ProfessorRepository Tests
// ═══════════════════════════════════════════════════════════

func TestProfessorRepo_GetByEmail(t *testing.T) {
	professor, _, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewProfessorRepo(testDB)
	got, err := repo.GetByEmail(context.Background(), professor.Email)
	if err != nil {
		t.Fatalf("GetByEmail 应成功: %v", err)
	}
	if got.ID != professor.ID {
		t.Errorf("期望ID=%d，实际=%d", professor.ID, got.ID)
	}
}

func TestProfessorRepo_GetByEmail_NotFound(t *testing.T) {
	repo := repository.NewProfessorRepo(testDB)

	_, err := repo.GetByEmail(context.Background(), "inexistente@apae.org.br")
	if err == nil {
		t.Error("期望错误，实际为 nil")
	}
}
