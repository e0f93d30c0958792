package codegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

// 六种包装组合覆盖GraphQL的全部可空性语义
func TestTypeResolverWrappers(t *testing.T) {
	resolver := NewTypeResolver(NewRegistry(nil), nil)

	named := func(nonNull bool) *ast.Type {
		return &ast.Type{NamedType: "String", NonNull: nonNull}
	}
	list := func(elem *ast.Type, nonNull bool) *ast.Type {
		return &ast.Type{Elem: elem, NonNull: nonNull}
	}

	cases := []struct {
		name           string
		typ            *ast.Type
		goType         string
		isList         bool
		isRequired     bool
		isItemRequired bool
	}{
		{"T可空", named(false), "*string", false, false, false},
		{"T!非空", named(true), "string", false, true, false},
		{"[T]可空列表可空元素", list(named(false), false), "[]*string", true, false, false},
		{"[T!]可空列表非空元素", list(named(true), false), "[]string", true, false, true},
		{"[T]!非空列表可空元素", list(named(false), true), "[]*string", true, true, false},
		{"[T!]!非空列表非空元素", list(named(true), true), "[]string", true, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := resolver.Resolve(tc.typ)
			require.NoError(t, err)
			assert.Equal(t, "string", ref.Name)
			assert.Equal(t, tc.goType, ref.GoType)
			assert.Equal(t, tc.isList, ref.IsList)
			assert.Equal(t, tc.isRequired, ref.IsRequired)
			assert.Equal(t, tc.isItemRequired, ref.IsItemRequired)
		})
	}
}

func TestTypeResolverNestedList(t *testing.T) {
	resolver := NewTypeResolver(NewRegistry(nil), nil)

	// [[Int]] 嵌套列表逐层累积切片
	typ := &ast.Type{Elem: &ast.Type{Elem: &ast.Type{NamedType: "Int"}}}
	ref, err := resolver.Resolve(typ)
	require.NoError(t, err)
	assert.Equal(t, "[][]*int", ref.GoType)
	assert.True(t, ref.IsList)
}

func TestResolveNameOrder(t *testing.T) {
	// 内置标量 -> 注册表 -> 文档内定义
	registry := NewRegistry(map[string]string{"DateTime": "time.Time"})
	doc := parseTestSchema(t, `
scalar DateTime
type Event { id: ID! }
`)
	resolver := NewTypeResolver(registry, doc)

	name, err := resolver.ResolveName("ID")
	require.NoError(t, err)
	assert.Equal(t, "string", name, "内置标量走固定映射")

	name, err = resolver.ResolveName("DateTime")
	require.NoError(t, err)
	assert.Equal(t, "time.Time", name, "注册表命中优先于文档回退")

	name, err = resolver.ResolveName("Event")
	require.NoError(t, err)
	assert.Equal(t, "Event", name, "文档内定义的类型按原名回退")
}

func TestResolveNameUnresolved(t *testing.T) {
	resolver := NewTypeResolver(NewRegistry(nil), nil)

	_, err := resolver.ResolveName("Ghost")
	require.Error(t, err)

	var unresolved *UnresolvedTypeError
	assert.True(t, errors.As(err, &unresolved), "未解析的类型引用应该是硬错误")
	assert.Equal(t, "Ghost", unresolved.TypeName)
}

// 包限定的映射目标拆出导入路径,完整模块路径时展示名只保留末级包名
func TestResolveQualifiedMapping(t *testing.T) {
	registry := NewRegistry(map[string]string{
		"DateTime": "time.Time",
		"Uuid":     "github.com/google/uuid.UUID",
	})
	resolver := NewTypeResolver(registry, nil)

	ref, err := resolver.Resolve(&ast.Type{NamedType: "DateTime"})
	require.NoError(t, err)
	assert.Equal(t, "*time.Time", ref.GoType)
	assert.Equal(t, "time", ref.Import)

	ref, err = resolver.Resolve(&ast.Type{NamedType: "Uuid", NonNull: true})
	require.NoError(t, err)
	assert.Equal(t, "uuid.UUID", ref.GoType)
	assert.Equal(t, "github.com/google/uuid", ref.Import)

	// 无包限定的映射不产生导入
	ref, err = resolver.Resolve(&ast.Type{NamedType: "String", NonNull: true})
	require.NoError(t, err)
	assert.Empty(t, ref.Import)
}

// 接口和联合类型是nil-able的接口值,可空时不再取指针
func TestResolveAbstractNotPointered(t *testing.T) {
	doc := parseTestSchema(t, `
interface Node { id: ID! }
type Event implements Node { id: ID! }
type Venue { name: String }
union Media = Event | Venue
`)
	resolver := NewTypeResolver(NewRegistry(nil), doc)

	ref, err := resolver.Resolve(&ast.Type{NamedType: "Node"})
	require.NoError(t, err)
	assert.Equal(t, "Node", ref.GoType)

	ref, err = resolver.Resolve(&ast.Type{NamedType: "Media"})
	require.NoError(t, err)
	assert.Equal(t, "Media", ref.GoType)

	// 对象类型可空仍然用指针
	ref, err = resolver.Resolve(&ast.Type{NamedType: "Event"})
	require.NoError(t, err)
	assert.Equal(t, "*Event", ref.GoType)

	// 列表元素同理
	ref, err = resolver.Resolve(&ast.Type{Elem: &ast.Type{NamedType: "Node"}})
	require.NoError(t, err)
	assert.Equal(t, "[]Node", ref.GoType)
}

// 内置标量映射即使在注册表被配置为其他目标时也不受影响
func TestResolveNameBuiltinFixed(t *testing.T) {
	registry := NewRegistry(map[string]string{"String": "[]byte"})
	resolver := NewTypeResolver(registry, nil)

	name, err := resolver.ResolveName("String")
	require.NoError(t, err)
	assert.Equal(t, "string", name, "内置标量映射固定,不被自定义映射覆盖")
}
