package codegen

import (
	"fmt"

	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/rs/zerolog/log"
	"github.com/vektah/gqlparser/v2/ast"
)

// mapType 将普通对象类型定义映射为Type模型
// 需要完整文档用于核对implements子句引用的接口定义
func mapType(cfg *internal.Config, resolver *TypeResolver, def *ast.Definition, doc *ast.SchemaDocument) (*internal.Model, error) {
	fields, err := buildFields(cfg, resolver, def.Fields)
	if err != nil {
		return nil, fmt.Errorf("类型 %s: %w", def.Name, err)
	}

	// 解析父接口:在文档中找到对应的接口定义,找不到只告警不中断
	implements := make([]string, 0, len(def.Interfaces))
	for _, name := range def.Interfaces {
		if parent := lookupDefinition(doc, name); parent == nil || parent.Kind != ast.Interface {
			log.Warn().Str("type", def.Name).Str("interface", name).Msg("implements引用的接口在文档中不存在")
		}
		implements = append(implements, name)
	}

	return &internal.Model{
		Template:    internal.TemplateType,
		Name:        def.Name,
		Package:     cfg.Output.Package,
		Description: def.Description,
		Imports:     collectImports(fields),
		Implements:  implements,
		Fields:      fields,
	}, nil
}

// lookupDefinition 在文档中按名称查找定义
func lookupDefinition(doc *ast.SchemaDocument, name string) *ast.Definition {
	if doc == nil {
		return nil
	}
	for _, def := range doc.Definitions {
		if def.Name == name {
			return def
		}
	}
	return nil
}
