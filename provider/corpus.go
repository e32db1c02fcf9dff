package provider

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CorpusProviderOptions 语料数据提供者初始化选项
type CorpusProviderOptions struct {
	// 随机数种子，0 表示按当前时间取种
	Seed int64

	// 语料文件路径，支持 .yaml/.yml/.toml/.json
	Path string `validate:"required"`
}

// corpusFile 语料文件结构
// 各节都是可选的，缺失的节回退到内置词表
type corpusFile struct {
	FirstNames   []string            `yaml:"firstNames" toml:"firstNames" json:"firstNames"`
	LastNames    []string            `yaml:"lastNames" toml:"lastNames" json:"lastNames"`
	Streets      []string            `yaml:"streets" toml:"streets" json:"streets"`
	Cities       []corpusCity        `yaml:"cities" toml:"cities" json:"cities"`
	EmailDomains []string            `yaml:"emailDomains" toml:"emailDomains" json:"emailDomains"`
	Words        map[string][]string `yaml:"words" toml:"words" json:"words"`
}

type corpusCity struct {
	Name       string `yaml:"name" toml:"name" json:"name"`
	State      string `yaml:"state" toml:"state" json:"state"`
	PostalCode string `yaml:"postalCode" toml:"postalCode" json:"postalCode"`
}

// CorpusProvider 使用外部语料词表的数据提供者
// 词表在构造时一次性加载，之后与内置实现行为完全一致
type CorpusProvider struct {
	*randSource
}

// NewCorpusProviderWithOptions 创建语料数据提供者
func NewCorpusProviderWithOptions(options *CorpusProviderOptions) (*CorpusProvider, error) {
	if options == nil || options.Path == "" {
		return nil, errors.New("corpus path is required")
	}

	corpus, err := loadCorpus(options.Path)
	if err != nil {
		return nil, errors.WithMessage(err, "loadCorpus failed")
	}

	merged := defaultTables().merge(corpus)
	return &CorpusProvider{randSource: newRandSource(merged, options.Seed)}, nil
}

func loadCorpus(path string) (tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tables{}, errors.Wrapf(err, "read corpus file %s failed", path)
	}

	var file corpusFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return tables{}, errors.Wrapf(err, "decode yaml corpus %s failed", path)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return tables{}, errors.Wrapf(err, "decode toml corpus %s failed", path)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return tables{}, errors.Wrapf(err, "decode json corpus %s failed", path)
		}
	default:
		return tables{}, errors.Errorf("unsupported corpus format: %s", filepath.Ext(path))
	}

	cities := make([]city, 0, len(file.Cities))
	for _, c := range file.Cities {
		cities = append(cities, city{Name: c.Name, State: c.State, PostalCode: c.PostalCode})
	}

	return tables{
		FirstNames:   file.FirstNames,
		LastNames:    file.LastNames,
		Streets:      file.Streets,
		Cities:       cities,
		EmailDomains: file.EmailDomains,
		Words:        file.Words,
	}, nil
}
