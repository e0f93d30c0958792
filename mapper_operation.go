package codegen

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/vektah/gqlparser/v2/ast"
)

// mapOperation 将一个根操作类型映射为一组Operation模型
// 每个根字段产出一个独立的操作模型;此外始终追加一个代表根对象本身的模型,
// 兼容按根类型索要请求对象的客户端工具(relay根对象约定)——该规则只作用于
// 三个保留根类型,与字段数量无关,字段为零时也会产出根对象模型
func mapOperation(cfg *internal.Config, resolver *TypeResolver, def *ast.Definition) ([]*internal.Model, error) {
	models := make([]*internal.Model, 0, len(def.Fields)+1)

	for _, fieldDef := range def.Fields {
		field, err := buildField(cfg, resolver, fieldDef)
		if err != nil {
			return nil, fmt.Errorf("根类型 %s: %w", def.Name, err)
		}
		models = append(models, &internal.Model{
			Template:    internal.TemplateOperation,
			Name:        strcase.ToCamel(fieldDef.Name) + def.Name,
			Package:     cfg.Output.Package,
			Description: fieldDef.Description,
			Imports:     collectImports([]*internal.Field{field}),
			Fields:      []*internal.Field{field},
			Operation:   &internal.Operation{Root: def.Name, Field: fieldDef.Name},
		})
	}

	// 根对象模型
	fields, err := buildFields(cfg, resolver, def.Fields)
	if err != nil {
		return nil, fmt.Errorf("根类型 %s: %w", def.Name, err)
	}
	models = append(models, &internal.Model{
		Template:    internal.TemplateOperation,
		Name:        def.Name,
		Package:     cfg.Output.Package,
		Description: def.Description,
		Imports:     collectImports(fields),
		Fields:      fields,
		Operation:   &internal.Operation{Root: def.Name},
	})

	return models, nil
}
