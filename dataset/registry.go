package dataset

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Registry 数据集名称到构造函数的注册表
// 显式构造、显式传递，不提供包级全局实例
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register 注册数据集构造函数
// 名称区分大小写，重复注册时后注册者生效
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Resolve 按名称解析构造函数
// 未注册的名称返回 ErrDatasetNotFound，并列出所有已知名称
func (r *Registry) Resolve(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, errors.WithMessagef(ErrDatasetNotFound,
			"dataset type %q not found, available types: [%s]", name, strings.Join(r.names(), ", "))
	}
	return factory, nil
}

// Names 按字典序返回所有已注册名称
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
