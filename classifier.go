package codegen

import (
	"github.com/duke-git/lancet/v2/slice"
	"github.com/vektah/gqlparser/v2/ast"
)

// Kind 表示定义的分类结果,封闭集合
// 新增定义种类时必须同步扩展Classify和Generator的分发逻辑
type Kind int

const (
	KindUnsupported Kind = iota // 跳过,不参与生成
	KindOperation               // 根操作类型(Query/Mutation/Subscription)
	KindType                    // 普通对象类型
	KindInterface               // 接口类型
	KindEnum                    // 枚举类型
	KindInput                   // 输入类型
	KindUnion                   // 联合类型
)

// String 返回分类名称
func (my Kind) String() string {
	switch my {
	case KindOperation:
		return "operation"
	case KindType:
		return "type"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindInput:
		return "input"
	case KindUnion:
		return "union"
	default:
		return "unsupported"
	}
}

// Classify 对单个定义做纯结构判定,结果确定且无副作用
// 对象类型按名称精确匹配(大小写敏感)拆分为Operation和Type两类;
// 标量定义由预扫描阶段处理,此处与其他未知变体一样归为Unsupported
func Classify(def *ast.Definition) Kind {
	switch def.Kind {
	case ast.Object:
		if slice.Contain(rootTypes, def.Name) {
			return KindOperation
		}
		return KindType
	case ast.Interface:
		return KindInterface
	case ast.Enum:
		return KindEnum
	case ast.InputObject:
		return KindInput
	case ast.Union:
		return KindUnion
	default:
		return KindUnsupported
	}
}
