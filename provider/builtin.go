package provider

// BuiltinProviderOptions 内置数据提供者初始化选项
type BuiltinProviderOptions struct {
	// 随机数种子，0 表示按当前时间取种
	Seed int64
}

// BuiltinProvider 使用内置词表的数据提供者
// 不依赖任何外部资源，作为语料不可用时的兜底实现
type BuiltinProvider struct {
	*randSource
}

// NewBuiltinProviderWithOptions 创建内置数据提供者
func NewBuiltinProviderWithOptions(options *BuiltinProviderOptions) (*BuiltinProvider, error) {
	if options == nil {
		options = &BuiltinProviderOptions{}
	}
	return &BuiltinProvider{randSource: newRandSource(defaultTables(), options.Seed)}, nil
}
