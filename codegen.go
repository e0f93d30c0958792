// Package codegen 将GraphQL IDL文档翻译为Go源码:
// 每个对象/接口/枚举/输入/标量/联合类型对应一个数据模型,
// 每个查询/变更/订阅根字段对应一个操作接口,
// 外加一个汇总全部对象与接口类型的聚合resolver接口
package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ConfigSupplier 外部配置补充来源
// 返回的键值逐项填充主配置缺失的键,主配置已有的键保持不变
type ConfigSupplier func() map[string]interface{}

// Generator 调度一次完整的生成任务
// 流水线: 准备输出目录 -> 逐schema(解析 -> 标量自动注册 -> 分类分发 -> resolver聚合)
// 单线程同步执行,注册表在标量自动注册之后视为只读
type Generator struct {
	k        *Konfig
	cfg      *internal.Config
	registry *Registry
	renderer Renderer
	skipped  int // 跳过的不支持定义计数
}

// GeneratorOption 自定义生成器装配
type GeneratorOption func(*Generator)

// WithRenderer 替换默认渲染器
func WithRenderer(renderer Renderer) GeneratorOption {
	return func(my *Generator) {
		if renderer != nil {
			my.renderer = renderer
		}
	}
}

// WithConfigSupplier 注入外部配置补充来源
func WithConfigSupplier(supplier ConfigSupplier) GeneratorOption {
	return func(my *Generator) {
		if supplier == nil {
			return
		}
		for path, value := range supplier() {
			my.k.SetDefault(path, value)
		}
	}
}

// NewGenerator 创建生成器
// 配置优先级: 主配置 > 外部补充配置 > 内置默认值
func NewGenerator(k *Konfig, opts ...GeneratorOption) (*Generator, error) {
	my := &Generator{k: k}
	for _, opt := range opts {
		opt(my)
	}

	// 默认值最后落位,只补缺
	k.SetDefault("output.dir", "generated")
	k.SetDefault("output.package", DEFAULT_PACKAGE)
	k.SetDefault("generate.apis", true)
	k.SetDefault("generate.stringer", false)
	k.SetDefault("generate.equal", false)
	k.SetDefault("generate.validation-tag", DEFAULT_VALIDATION_TAG)

	cfg := &internal.Config{}
	if err := k.Unmarshal(cfg); err != nil {
		return nil, err
	}
	my.cfg = cfg

	// 用户显式映射先于一切自动注册写入注册表
	my.registry = NewRegistry(cfg.Mapping)

	if my.renderer == nil {
		my.renderer = NewSourceRenderer(cfg)
	}

	return my, nil
}

// Config 返回生效的配置
func (my *Generator) Config() *internal.Config {
	return my.cfg
}

// Skipped 返回累计跳过的不支持定义数量
func (my *Generator) Skipped() int {
	return my.skipped
}

// Generate 执行完整生成任务
// 输出目录只准备一次,schema文件按配置顺序依次独立处理;
// 任何致命错误立即终止整个任务,此前已生成的文件保留在输出目录中
func (my *Generator) Generate() error {
	if len(my.cfg.Schemas) == 0 {
		return fmt.Errorf("未配置任何schema文件")
	}

	if err := prepareOutputDir(my.cfg.Output.Dir); err != nil {
		return err
	}

	for _, schema := range my.cfg.Schemas {
		if err := my.processSchema(schema); err != nil {
			return fmt.Errorf("处理schema失败: %s: %w", schema, err)
		}
	}

	return nil
}

// processSchema 处理单个schema文件
func (my *Generator) processSchema(path string) error {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取schema文件失败: %s: %w", path, err)
	}

	doc, err := parser.ParseSchema(&ast.Source{Name: path, Input: string(content)})
	if err != nil {
		return &ParseError{Schema: path, Err: err}
	}

	// 标量自动注册先于任何映射执行,只补缺不覆盖
	my.registerScalars(doc)

	resolver := NewTypeResolver(my.registry, doc)
	models := make([]*internal.Model, 0, len(doc.Definitions)+1)

	// 按声明顺序分类分发,顺序稳定保证输出可重现
	for _, def := range doc.Definitions {
		var model *internal.Model
		switch Classify(def) {
		case KindOperation:
			// 操作接口生成被关闭时,根操作类型不产出任何文件
			if !my.cfg.Generate.Apis {
				continue
			}
			ops, err := mapOperation(my.cfg, resolver, def)
			if err != nil {
				return err
			}
			for _, op := range ops {
				if err := my.emit(op); err != nil {
					return err
				}
			}
			models = append(models, ops...)
			continue
		case KindType:
			model, err = mapType(my.cfg, resolver, def, doc)
		case KindInterface:
			model, err = mapInterface(my.cfg, resolver, def)
		case KindEnum:
			model, err = mapEnum(my.cfg, def)
		case KindInput:
			model, err = mapInput(my.cfg, resolver, def)
		case KindUnion:
			model, err = mapUnion(my.cfg, resolver, def)
		case KindUnsupported:
			// 跳过但计数,不中断任务
			my.skipped++
			log.Debug().Str("definition", def.Name).Msg("跳过不支持的定义")
			continue
		}
		if err != nil {
			return err
		}
		if err := my.emit(model); err != nil {
			return err
		}
		models = append(models, model)
	}

	// schema块/扩展/指令定义不在封闭分类集合内,一并计入跳过
	my.skipped += len(doc.Schema) + len(doc.SchemaExtension) + len(doc.Directives) + len(doc.Extensions)

	// resolver聚合模型永远最后构建,依赖文档完整的对象与接口清单
	model, err := mapResolver(my.cfg, resolver, doc)
	if err != nil {
		return err
	}
	if err := my.emit(model); err != nil {
		return err
	}
	models = append(models, model)

	// dev模式转储全部模型便于排查
	if my.cfg.Mode == "dev" {
		if err := my.saveModels(models); err != nil {
			log.Warn().Err(err).Msg("模型转储失败")
		}
	}

	log.Info().
		Str("schema", path).
		Str("dir", my.cfg.Output.Dir).
		Int("definitions", len(doc.Definitions)).
		Int("models", len(models)).
		Dur("elapsed", time.Since(start)).
		Msg("schema处理完成")

	return nil
}

// registerScalars 预扫描文档,为未显式映射的自定义标量注册默认目标类型
// 保证映射开始前每个自定义标量都能解析到某个目标类型
func (my *Generator) registerScalars(doc *ast.SchemaDocument) {
	for _, def := range doc.Definitions {
		if def.Kind != ast.Scalar {
			continue
		}
		my.registry.SetIfAbsent(def.Name, DEFAULT_SCALAR_TYPE)
	}
}

// emit 渲染单个模型并写出文件,每个模型只交给渲染器一次
func (my *Generator) emit(model *internal.Model) error {
	content, err := my.renderer.Render(model)
	if err != nil {
		return err
	}
	return writeFile(my.cfg.Output.Dir, fileName(model.Name), content)
}

// saveModels 将本次构建的全部模型转储到输出目录的models.json
func (my *Generator) saveModels(models []*internal.Model) error {
	data, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化模型失败: %w", err)
	}
	path := filepath.Join(my.cfg.Output.Dir, "models.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入模型文件失败: %w", err)
	}
	log.Debug().Int("models", len(models)).Str("file", path).Msg("模型转储完成")
	return nil
}
