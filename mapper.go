package codegen

import (
	"fmt"
	"sort"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/iancoleman/strcase"
	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/vektah/gqlparser/v2/ast"
)

// 映射器是纯函数:输入配置、解析器和定义,输出规范化模型,调用之间不共享可变状态
// 本文件收敛字段和参数的公共转换逻辑

// buildField 将一个GraphQL字段定义转换为模型字段
func buildField(cfg *internal.Config, resolver *TypeResolver, def *ast.FieldDefinition) (*internal.Field, error) {
	ref, err := resolver.Resolve(def.Type)
	if err != nil {
		return nil, fmt.Errorf("字段 %s: %w", def.Name, err)
	}

	field := &internal.Field{
		Name:           def.Name,
		GoName:         strcase.ToCamel(def.Name),
		Type:           ref.Name,
		GoType:         ref.GoType,
		Import:         ref.Import,
		IsList:         ref.IsList,
		IsRequired:     ref.IsRequired,
		IsItemRequired: ref.IsItemRequired,
		Description:    def.Description,
	}

	// 校验标签只落在非空字段上
	if field.IsRequired && cfg.Generate.ValidationTag != "" {
		field.Tag = cfg.Generate.ValidationTag
	}

	for _, arg := range def.Arguments {
		param, err := buildArgument(resolver, arg)
		if err != nil {
			return nil, fmt.Errorf("字段 %s: %w", def.Name, err)
		}
		field.Arguments = append(field.Arguments, param)
	}

	return field, nil
}

// buildArgument 将一个参数定义转换为模型字段
func buildArgument(resolver *TypeResolver, def *ast.ArgumentDefinition) (*internal.Field, error) {
	ref, err := resolver.Resolve(def.Type)
	if err != nil {
		return nil, fmt.Errorf("参数 %s: %w", def.Name, err)
	}

	return &internal.Field{
		Name:           def.Name,
		GoName:         strcase.ToLowerCamel(def.Name),
		Type:           ref.Name,
		GoType:         ref.GoType,
		Import:         ref.Import,
		IsList:         ref.IsList,
		IsRequired:     ref.IsRequired,
		IsItemRequired: ref.IsItemRequired,
		Description:    def.Description,
	}, nil
}

// buildFields 按声明顺序转换全部字段
func buildFields(cfg *internal.Config, resolver *TypeResolver, defs ast.FieldList) ([]*internal.Field, error) {
	fields := make([]*internal.Field, 0, len(defs))
	for _, def := range defs {
		field, err := buildField(cfg, resolver, def)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// collectImports 汇总字段及其参数携带的导入路径,去重后按字典序排列
func collectImports(lists ...[]*internal.Field) []string {
	var imports []string
	for _, fields := range lists {
		for _, field := range fields {
			if field.Import != "" {
				imports = append(imports, field.Import)
			}
			for _, arg := range field.Arguments {
				if arg.Import != "" {
					imports = append(imports, arg.Import)
				}
			}
		}
	}
	if len(imports) == 0 {
		return nil
	}
	imports = slice.Unique(imports)
	sort.Strings(imports)
	return imports
}
