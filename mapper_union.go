package codegen

import (
	"fmt"

	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/vektah/gqlparser/v2/ast"
)

// mapUnion 将联合类型定义映射为Union模型,成员类型名逐个经过类型解析
func mapUnion(cfg *internal.Config, resolver *TypeResolver, def *ast.Definition) (*internal.Model, error) {
	members := make([]string, 0, len(def.Types))
	for _, name := range def.Types {
		target, err := resolver.ResolveName(name)
		if err != nil {
			return nil, fmt.Errorf("联合类型 %s: %w", def.Name, err)
		}
		members = append(members, target)
	}

	return &internal.Model{
		Template:    internal.TemplateUnion,
		Name:        def.Name,
		Package:     cfg.Output.Package,
		Description: def.Description,
		MemberTypes: members,
	}, nil
}
