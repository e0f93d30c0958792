package codegen

import (
	"fmt"

	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/vektah/gqlparser/v2/ast"
)

// mapInterface 将接口类型定义映射为Interface模型
func mapInterface(cfg *internal.Config, resolver *TypeResolver, def *ast.Definition) (*internal.Model, error) {
	fields, err := buildFields(cfg, resolver, def.Fields)
	if err != nil {
		return nil, fmt.Errorf("接口 %s: %w", def.Name, err)
	}

	return &internal.Model{
		Template:    internal.TemplateInterface,
		Name:        def.Name,
		Package:     cfg.Output.Package,
		Description: def.Description,
		Imports:     collectImports(fields),
		Fields:      fields,
	}, nil
}

// mapInput 将输入类型定义映射为Type模型(输入对象与数据类共用结构体形态)
func mapInput(cfg *internal.Config, resolver *TypeResolver, def *ast.Definition) (*internal.Model, error) {
	fields, err := buildFields(cfg, resolver, def.Fields)
	if err != nil {
		return nil, fmt.Errorf("输入类型 %s: %w", def.Name, err)
	}

	return &internal.Model{
		Template:    internal.TemplateType,
		Name:        def.Name,
		Package:     cfg.Output.Package,
		Description: def.Description,
		Imports:     collectImports(fields),
		Fields:      fields,
	}, nil
}
