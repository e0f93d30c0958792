package codegen

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// TypeRef 表示解包后的扁平类型引用
// 四个布尔组合覆盖GraphQL的全部可空性语义:
// T可空 / T!非空 / [T]可空列表可空元素 / [T!]可空列表非空元素 / [T]!非空列表可空元素 / [T!]!非空列表非空元素
type TypeRef struct {
	Name           string // 目标基础类型名
	GoType         string // 完整Go类型,可空用指针表达,列表用切片表达
	Import         string // 包限定映射引入的导入路径,无则为空
	IsList         bool   // 是否列表
	IsRequired     bool   // 最外层是否非空
	IsItemRequired bool   // 列表元素是否非空
}

// TypeResolver 将GraphQL类型引用解析为目标类型信息
// 命名类型解析顺序: 内置标量固定映射 -> 注册表 -> 文档内定义的同名类型
type TypeResolver struct {
	registry *Registry
	defined  map[string]ast.DefinitionKind // 文档内定义的命名类型及其种类
}

// NewTypeResolver 创建类型解析器,defined来自文档的定义清单
func NewTypeResolver(registry *Registry, doc *ast.SchemaDocument) *TypeResolver {
	defined := make(map[string]ast.DefinitionKind)
	if doc != nil {
		for _, def := range doc.Definitions {
			defined[def.Name] = def.Kind
		}
	}
	return &TypeResolver{registry: registry, defined: defined}
}

// Resolve 逐层解包NonNull/List包装,返回扁平的类型引用
// 最内层必然是命名类型;嵌套列表逐层累积切片
func (my *TypeResolver) Resolve(t *ast.Type) (*TypeRef, error) {
	ref := &TypeRef{IsRequired: t.NonNull}

	// 解包列表层级,最内层的NonNull标记列表元素是否非空
	elem := t
	depth := 0
	for elem.Elem != nil {
		depth++
		elem = elem.Elem
	}
	if depth > 0 {
		ref.IsList = true
		ref.IsItemRequired = elem.NonNull
	}

	name, imp, err := my.resolveNamed(elem.NamedType)
	if err != nil {
		return nil, err
	}
	ref.Name = name
	ref.Import = imp

	// 可空的非列表层用指针表达,切片天然可空不再加指针;
	// 接口和联合类型本身就是nil-able的接口值,不取指针
	goType := name
	if !elem.NonNull && !my.isAbstract(elem.NamedType) {
		goType = "*" + goType
	}
	ref.GoType = strings.Repeat("[]", depth) + goType

	return ref, nil
}

// ResolveName 解析单个命名类型,只需要展示名的调用方使用
func (my *TypeResolver) ResolveName(name string) (string, error) {
	target, _, err := my.resolveNamed(name)
	return target, err
}

// resolveNamed 解析命名类型,返回展示名和需要的导入路径
// 未命中注册表时,仅当名称是文档内定义的兄弟类型才按原名回退,否则视为硬错误
func (my *TypeResolver) resolveNamed(name string) (string, string, error) {
	if target, ok := scalarTypes[name]; ok {
		return target, "", nil
	}
	if target, ok := my.registry.Resolve(name); ok {
		display, imp := splitQualified(target)
		return display, imp, nil
	}
	if _, ok := my.defined[name]; ok {
		return name, "", nil
	}
	return "", "", &UnresolvedTypeError{TypeName: name}
}

// isAbstract 判断GraphQL名称是否指向文档内的接口或联合类型
func (my *TypeResolver) isAbstract(name string) bool {
	kind, ok := my.defined[name]
	return ok && (kind == ast.Interface || kind == ast.Union)
}

// splitQualified 拆解包限定的目标类型,返回展示名和导入路径
// "time.Time"返回("time.Time","time");带完整模块路径时展示名只保留末级包名:
// "github.com/google/uuid.UUID"返回("uuid.UUID","github.com/google/uuid")
func splitQualified(target string) (string, string) {
	idx := strings.LastIndex(target, ".")
	if idx < 0 {
		return target, ""
	}
	imp := target[:idx]
	pkg := imp
	if slash := strings.LastIndex(imp, "/"); slash >= 0 {
		pkg = imp[slash+1:]
	}
	return pkg + "." + target[idx+1:], imp
}
