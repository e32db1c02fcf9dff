package gen

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/hatlonely/tempdataset/codec"
	"github.com/hatlonely/tempdataset/dataset"
	"github.com/hatlonely/tempdataset/frame"
	"github.com/hatlonely/tempdataset/log"
	"github.com/hatlonely/tempdataset/provider"
	"github.com/hatlonely/tempdataset/validator"
)

type Options struct {
	// Seed 随机种子，相同种子产生相同数据
	// 0 表示每次生成都使用时间种子
	Seed int64 `cfg:"seed"`

	// BatchSize 分批生成的批大小，0 表示不分批
	// 分批只影响内存峰值，不影响生成结果
	BatchSize int `cfg:"batchSize" validate:"gte=0"`

	// Provider 基础值生成器配置
	Provider *provider.ProviderOptions `cfg:"provider"`

	// Logger 日志记录器，为空时使用默认 logger
	Logger log.Logger `cfg:"-"`

	// EnableMetrics 是否启用指标收集
	EnableMetrics bool `cfg:"enableMetrics"`

	// EnableTracing 是否启用分布式追踪
	EnableTracing bool `cfg:"enableTracing"`

	// Registerer 指标注册器，为空时使用 prometheus 默认 registry
	Registerer prometheus.Registerer `cfg:"-"`
}

// Engine 数据集生成引擎
// 内置 sales/customers/ecommerce 三个模板，可通过 Register 扩展
// 每次生成使用独立的 provider 实例，可以并发调用
type Engine struct {
	registry        *dataset.Registry
	seed            int64
	batchSize       int
	providerOptions *provider.ProviderOptions

	logger        log.Logger
	metrics       *EngineMetrics
	tracer        trace.Tracer
	enableMetrics bool
	enableTracing bool
}

func NewEngineWithOptions(options *Options) (*Engine, error) {
	if options == nil {
		options = &Options{}
	}
	if err := validator.ValidateStruct(options); err != nil {
		return nil, errors.WithMessage(err, "validate options failed")
	}

	engine := &Engine{
		registry:        dataset.NewRegistry(),
		seed:            options.Seed,
		batchSize:       options.BatchSize,
		providerOptions: options.Provider,
		logger:          options.Logger,
		enableMetrics:   options.EnableMetrics,
		enableTracing:   options.EnableTracing,
	}
	if engine.logger == nil {
		engine.logger = log.Default()
	}

	if options.EnableMetrics {
		registerer := options.Registerer
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}
		engine.metrics = NewEngineMetrics("tempdataset", registerer)
	}

	if options.EnableTracing {
		engine.tracer = otel.Tracer("tempdataset.gen")
	}

	engine.registry.Register("sales", func(p provider.Provider) dataset.Dataset {
		return dataset.NewSalesDataset(p)
	})
	engine.registry.Register("customers", func(p provider.Provider) dataset.Dataset {
		return dataset.NewCustomersDataset(p)
	})
	engine.registry.Register("ecommerce", func(p provider.Provider) dataset.Dataset {
		return dataset.NewEcommerceDataset(p)
	})

	return engine, nil
}

// Register 注册自定义数据集模板，同名覆盖内置模板
func (e *Engine) Register(name string, factory dataset.Factory) {
	e.registry.Register(name, factory)
}

// Datasets 返回所有已注册的模板名，按字典序排列
func (e *Engine) Datasets() []string {
	return e.registry.Names()
}

// Generate 生成指定模板的数据集
//
// datasetType 有两种形式:
//   - 模板名，如 "sales"，返回生成的表格容器
//   - 带扩展名的文件路径，如 "out/sales.csv"，文件名主干是模板名，
//     根据扩展名 (.csv/.json/.jsonl) 写到对应文件，返回 (nil, nil)
func (e *Engine) Generate(datasetType string, rows int) (*frame.TempDataFrame, error) {
	return e.GenerateContext(context.Background(), datasetType, rows)
}

// GenerateContext 带 context 的生成入口，分批生成时每批检查取消状态
func (e *Engine) GenerateContext(ctx context.Context, datasetType string, rows int) (*frame.TempDataFrame, error) {
	ext := strings.ToLower(filepath.Ext(datasetType))
	if ext == "" {
		var df *frame.TempDataFrame
		err := e.observeGenerate(ctx, datasetType, func(ctx context.Context) (int, error) {
			var genErr error
			df, genErr = e.generate(ctx, datasetType, rows)
			if genErr != nil {
				return 0, genErr
			}
			return df.Len(), nil
		})
		if err != nil {
			return nil, err
		}
		return df, nil
	}

	name := strings.TrimSuffix(filepath.Base(datasetType), filepath.Ext(datasetType))
	err := e.observeGenerate(ctx, name, func(ctx context.Context) (int, error) {
		df, genErr := e.generate(ctx, name, rows)
		if genErr != nil {
			return 0, genErr
		}

		switch ext {
		case ".csv":
			genErr = codec.WriteCSV(df, datasetType)
		case ".json":
			genErr = codec.WriteJSON(df, datasetType)
		case ".jsonl":
			genErr = codec.WriteJSONLines(df, datasetType)
		default:
			genErr = errors.Errorf("unsupported file extension %q, supported extensions: [.csv, .json, .jsonl]", ext)
		}
		if genErr != nil {
			return 0, genErr
		}
		return df.Len(), nil
	})
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (e *Engine) generate(ctx context.Context, datasetType string, rows int) (*frame.TempDataFrame, error) {
	if err := dataset.CheckRowCount(rows); err != nil {
		return nil, err
	}

	factory, err := e.registry.Resolve(datasetType)
	if err != nil {
		return nil, err
	}

	p, err := e.newProvider()
	if err != nil {
		return nil, errors.WithMessage(err, "create provider failed")
	}
	ds := factory(p)

	allRows, err := e.generateRows(ctx, ds, rows)
	if err != nil {
		return nil, errors.WithMessagef(err, "generate dataset %q failed", datasetType)
	}

	return frame.New(allRows, ds.Schema().Columns()), nil
}

func (e *Engine) generateRows(ctx context.Context, ds dataset.Dataset, rows int) ([]dataset.Row, error) {
	rds, ok := ds.(dataset.RangeDataset)
	if !ok || e.batchSize <= 0 || rows <= e.batchSize {
		return ds.Generate(rows)
	}

	allRows := make([]dataset.Row, 0, rows)
	for start := 0; start < rows; start += e.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "generation canceled")
		}

		count := e.batchSize
		if start+count > rows {
			count = rows - start
		}
		batch, err := rds.GenerateRange(start, count)
		if err != nil {
			return nil, err
		}
		allRows = append(allRows, batch...)
	}
	return allRows, nil
}

// newProvider 为单次生成创建独立的 provider 实例
// 实例级 seed 保证并发调用互不干扰且结果可复现
func (e *Engine) newProvider() (provider.Provider, error) {
	if e.providerOptions == nil {
		return provider.NewBuiltinProviderWithOptions(&provider.BuiltinProviderOptions{Seed: e.seed})
	}

	options := *e.providerOptions
	if options.Seed == 0 {
		options.Seed = e.seed
	}
	return provider.NewProviderWithOptions(&options)
}
