package codegen

import (
	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/vektah/gqlparser/v2/ast"
)

// mapEnum 将枚举类型定义映射为Enum模型
// 枚举值逐字保留并维持声明顺序,Go常量名用类型名做前缀避免包内冲突
func mapEnum(cfg *internal.Config, def *ast.Definition) (*internal.Model, error) {
	values := make([]*internal.EnumValue, 0, len(def.EnumValues))
	for _, v := range def.EnumValues {
		values = append(values, &internal.EnumValue{
			Name:        v.Name,
			GoName:      def.Name + v.Name,
			Description: v.Description,
		})
	}

	return &internal.Model{
		Template:    internal.TemplateEnum,
		Name:        def.Name,
		Package:     cfg.Output.Package,
		Description: def.Description,
		EnumValues:  values,
	}, nil
}
