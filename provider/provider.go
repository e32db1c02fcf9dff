package provider

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidRange 随机数边界不合法（lo > hi 或时间区间颠倒）
var ErrInvalidRange = errors.New("invalid range")

// WeightedOption 带权重的候选值
type WeightedOption struct {
	Value  string
	Weight int
}

// AddressParts 一组相互匹配的地址要素
type AddressParts struct {
	Street     string
	City       string
	State      string
	PostalCode string
}

// Provider 原子数据提供者接口
// 所有方法从同一个随机数流取值：相同的种子加相同的调用序列产生相同的结果
// 有界取值方法在边界合法时永不失败，边界非法返回 ErrInvalidRange
type Provider interface {
	// Name 生成人名
	Name() string

	// AddressParts 生成一组匹配的地址要素
	AddressParts() AddressParts

	// Email 根据人名派生邮箱地址
	Email(name string) string

	// Word 从指定类目中取词，未知类目回退到通用词表
	Word(category string) string

	// UUID 生成 UUID 字符串
	UUID() string

	// Int 生成 [lo, hi] 内的整数
	Int(lo, hi int) (int, error)

	// Float 生成 [lo, hi] 内保留 decimals 位小数的浮点数
	Float(lo, hi float64, decimals int) (float64, error)

	// Date 生成 [start, end] 内的日期（日精度）
	Date(start, end time.Time) (time.Time, error)

	// Choice 按权重选取一个候选值
	Choice(options []WeightedOption) (string, error)
}

// ProviderOptions 数据提供者初始化选项
type ProviderOptions struct {
	// 实现类型：builtin, corpus
	Type string `validate:"omitempty,oneof=builtin corpus"`

	// 随机数种子，0 表示按当前时间取种
	Seed int64

	// 语料文件路径，仅 corpus 类型使用
	CorpusPath string
}

// NewProviderWithOptions 根据选项选择并创建数据提供者
// 策略在构造期一次性确定，之后的调用不再做可用性分支
// 类型为空时自动选择：语料文件可读用 corpus，否则回退 builtin
func NewProviderWithOptions(options *ProviderOptions) (Provider, error) {
	if options == nil {
		options = &ProviderOptions{}
	}

	switch options.Type {
	case "":
		if options.CorpusPath != "" {
			if _, err := os.Stat(options.CorpusPath); err == nil {
				return NewCorpusProviderWithOptions(&CorpusProviderOptions{
					Seed: options.Seed,
					Path: options.CorpusPath,
				})
			}
		}
		return NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: options.Seed})
	case "builtin":
		return NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: options.Seed})
	case "corpus":
		return NewCorpusProviderWithOptions(&CorpusProviderOptions{
			Seed: options.Seed,
			Path: options.CorpusPath,
		})
	default:
		return nil, errors.Errorf("unsupported provider type: %s", options.Type)
	}
}
