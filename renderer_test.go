package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderModel 渲染并返回字符串形式的结果
func renderModel(t *testing.T, cfg *internal.Config, model *internal.Model) string {
	t.Helper()
	content, err := NewSourceRenderer(cfg).Render(model)
	require.NoError(t, err)
	return string(content)
}

func TestRenderType(t *testing.T) {
	doc := parseTestSchema(t, `
interface Node { id: ID! }

"音乐活动"
type Event implements Node {
  id: ID!
  name: String
  attendees(limit: Int): [Event!]!
}
`)
	cfg := testConfig()
	resolver := NewTypeResolver(NewRegistry(nil), doc)
	model, err := mapType(cfg, resolver, findDefinition(t, doc, "Event"), doc)
	require.NoError(t, err)

	out := renderModel(t, cfg, model)

	assert.True(t, strings.HasPrefix(out, HEADER_LINE), "生成文件以固定头部开始")
	assert.Contains(t, out, "package model")
	assert.Contains(t, out, "// 音乐活动")
	assert.Contains(t, out, "type Event struct {")
	assert.Contains(t, out, "\tId string `json:\"id\" validate:\"required\"`")
	assert.Contains(t, out, "\tName *string `json:\"name,omitempty\"`")
	assert.Contains(t, out, "func (my *Event) IsNode() {}")
	assert.Contains(t, out, "func (my *Event) GetId() string {")

	// 带参字段不生成访问器
	assert.NotContains(t, out, "GetAttendees")
}

func TestRenderTypeStringerAndEqual(t *testing.T) {
	doc := parseTestSchema(t, `type Event { id: ID! }`)
	cfg := testConfig()
	cfg.Generate.Stringer = true
	cfg.Generate.Equal = true
	resolver := NewTypeResolver(NewRegistry(nil), doc)
	model, err := mapType(cfg, resolver, findDefinition(t, doc, "Event"), doc)
	require.NoError(t, err)

	out := renderModel(t, cfg, model)
	assert.Contains(t, out, "\t\"fmt\"")
	assert.Contains(t, out, "\t\"reflect\"")
	assert.Contains(t, out, "func (my *Event) String() string {")
	assert.Contains(t, out, "func (my *Event) Equal(other *Event) bool {")
	assert.Contains(t, out, "reflect.DeepEqual(my, other)")
}

// 模型携带的导入渲染进文件头,生成文件可独立编译
func TestRenderTypeQualifiedImports(t *testing.T) {
	doc := parseTestSchema(t, `
scalar DateTime
type Event { startsAt: DateTime }
`)
	cfg := testConfig()
	cfg.Generate.Stringer = true
	registry := NewRegistry(map[string]string{"DateTime": "time.Time"})
	resolver := NewTypeResolver(registry, doc)
	model, err := mapType(cfg, resolver, findDefinition(t, doc, "Event"), doc)
	require.NoError(t, err)

	out := renderModel(t, cfg, model)
	assert.Contains(t, out, "import (\n\t\"fmt\"\n\t\"time\"\n)", "模型导入与按需标准库合并后按字典序排列")
	assert.Contains(t, out, "StartsAt *time.Time")
}

func TestRenderInterface(t *testing.T) {
	doc := parseTestSchema(t, `
interface Node {
  id: ID!
  related(limit: Int): [Node!]
}
`)
	cfg := testConfig()
	resolver := NewTypeResolver(NewRegistry(nil), doc)
	model, err := mapInterface(cfg, resolver, findDefinition(t, doc, "Node"))
	require.NoError(t, err)

	out := renderModel(t, cfg, model)
	assert.Contains(t, out, "type Node interface {")
	assert.Contains(t, out, "\tIsNode()")
	assert.Contains(t, out, "\tGetId() string")
	assert.NotContains(t, out, "GetRelated", "带参字段不进入访问器签名")
}

func TestRenderEnum(t *testing.T) {
	doc := parseTestSchema(t, `enum EventStatus { OPEN CLOSED }`)
	cfg := testConfig()
	model, err := mapEnum(cfg, findDefinition(t, doc, "EventStatus"))
	require.NoError(t, err)

	out := renderModel(t, cfg, model)
	assert.Contains(t, out, "type EventStatus string")
	assert.Contains(t, out, "\tEventStatusOPEN EventStatus = \"OPEN\"")
	assert.Contains(t, out, "\tEventStatusCLOSED EventStatus = \"CLOSED\"")

	// 声明顺序保持
	assert.Less(t, strings.Index(out, "EventStatusOPEN"), strings.Index(out, "EventStatusCLOSED"))
}

func TestRenderUnion(t *testing.T) {
	cfg := testConfig()
	model := &internal.Model{
		Template:    internal.TemplateUnion,
		Name:        "Media",
		Package:     "model",
		MemberTypes: []string{"Photo", "time.Time", "string"},
	}

	out := renderModel(t, cfg, model)
	assert.Contains(t, out, "type Media interface {")
	assert.Contains(t, out, "\tIsMedia()")
	assert.Contains(t, out, "func (my *Photo) IsMedia() {}")

	// 包外类型和标量无法挂方法
	assert.NotContains(t, out, "time.Time) IsMedia")
	assert.NotContains(t, out, "*string) IsMedia")
}

func TestRenderOperation(t *testing.T) {
	doc := parseTestSchema(t, `
type Event { id: ID! }
type Query {
  events(limit: Int): [Event!]!
}
`)
	cfg := testConfig()
	resolver := NewTypeResolver(NewRegistry(nil), doc)
	models, err := mapOperation(cfg, resolver, findDefinition(t, doc, "Query"))
	require.NoError(t, err)
	require.Len(t, models, 2)

	// 根字段模型产出单方法接口
	out := renderModel(t, cfg, models[0])
	assert.Contains(t, out, "type EventsQuery interface {")
	assert.Contains(t, out, "\tEvents(limit *int) ([]Event, error)")

	// 根对象模型产出请求结构体
	out = renderModel(t, cfg, models[1])
	assert.Contains(t, out, "type Query struct {")
	assert.Contains(t, out, "\tEvents []Event `json:\"events\" validate:\"required\"`")
}

func TestRenderResolver(t *testing.T) {
	doc := parseTestSchema(t, `
type Query { events: [Event!]! }
interface Node { id: ID! }
type Event implements Node {
  id: ID!
  attendees(limit: Int): [Event!]!
}
`)
	cfg := testConfig()
	resolver := NewTypeResolver(NewRegistry(nil), doc)
	model, err := mapResolver(cfg, resolver, doc)
	require.NoError(t, err)

	out := renderModel(t, cfg, model)
	assert.Contains(t, out, "type NodeResolver interface {")
	assert.Contains(t, out, "type EventResolver interface {")
	assert.Contains(t, out, "\tAttendees(limit *int) []Event")
	assert.Contains(t, out, "type Resolver interface {")
	assert.Contains(t, out, "\tNodeResolver")
	assert.Contains(t, out, "\tEventResolver")
	assert.NotContains(t, out, "QueryResolver", "根类型不参与聚合")
}

// 相同模型的渲染结果必须逐字节一致
func TestRenderDeterministic(t *testing.T) {
	doc := parseTestSchema(t, `
type Event {
  id: ID!
  name: String
}
`)
	cfg := testConfig()
	resolver := NewTypeResolver(NewRegistry(nil), doc)
	model, err := mapType(cfg, resolver, findDefinition(t, doc, "Event"), doc)
	require.NoError(t, err)

	renderer := NewSourceRenderer(cfg)
	first, err := renderer.Render(model)
	require.NoError(t, err)
	second, err := renderer.Render(model)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderUnknownTemplate(t *testing.T) {
	cfg := testConfig()
	_, err := NewSourceRenderer(cfg).Render(&internal.Model{Template: "mystery", Name: "X"})
	require.Error(t, err)

	var renderErr *RenderError
	assert.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "X", renderErr.Name)
}
