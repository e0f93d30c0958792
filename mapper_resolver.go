package codegen

import (
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// mapResolver 构建聚合resolver模型,每个文档只执行一次
// 取文档中全部对象和接口定义,按名称精确排除三个保留根类型后,
// 每个类型贡献一个条目(名称+字段访问器签名),顺序跟随文档声明顺序
func mapResolver(cfg *internal.Config, resolver *TypeResolver, doc *ast.SchemaDocument) (*internal.Model, error) {
	defs := lo.Filter(doc.Definitions, func(def *ast.Definition, _ int) bool {
		if def.Kind != ast.Object && def.Kind != ast.Interface {
			return false
		}
		return !slice.Contain(rootTypes, def.Name)
	})

	entries := make([]*internal.ResolverType, 0, len(defs))
	lists := make([][]*internal.Field, 0, len(defs))
	for _, def := range defs {
		fields, err := buildFields(cfg, resolver, def.Fields)
		if err != nil {
			return nil, fmt.Errorf("resolver聚合 %s: %w", def.Name, err)
		}
		entries = append(entries, &internal.ResolverType{Name: def.Name, Fields: fields})
		lists = append(lists, fields)
	}

	return &internal.Model{
		Template:  internal.TemplateResolver,
		Name:      "Resolver",
		Package:   cfg.Output.Package,
		Imports:   collectImports(lists...),
		Resolvers: entries,
	}, nil
}
