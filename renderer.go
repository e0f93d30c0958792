package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/ichaly/ideabase/codegen/internal"
	"github.com/samber/lo"
)

// 生成文件头
const HEADER_LINE = "// Code generated by ideabase codegen. DO NOT EDIT."

// Renderer 将生成模型渲染为目标源码
// 契约:相同模型和模板的渲染结果必须逐字节一致,保证构建可重现
type Renderer interface {
	Render(model *internal.Model) ([]byte, error)
}

// SourceRenderer 内置的Go源码渲染器
type SourceRenderer struct {
	cfg *internal.Config
	sb  *strings.Builder
}

// NewSourceRenderer 创建Go源码渲染器
func NewSourceRenderer(cfg *internal.Config) *SourceRenderer {
	return &SourceRenderer{cfg: cfg, sb: &strings.Builder{}}
}

// Render 按模板标识分发渲染
func (my *SourceRenderer) Render(model *internal.Model) ([]byte, error) {
	// 每个模型使用全新的字符串构建器
	my.sb = &strings.Builder{}
	my.renderHeader(model)

	var err error
	switch model.Template {
	case internal.TemplateType:
		err = my.renderType(model)
	case internal.TemplateInterface:
		err = my.renderInterface(model)
	case internal.TemplateEnum:
		err = my.renderEnum(model)
	case internal.TemplateUnion:
		err = my.renderUnion(model)
	case internal.TemplateOperation:
		err = my.renderOperation(model)
	case internal.TemplateResolver:
		err = my.renderResolver(model)
	default:
		err = fmt.Errorf("未知模板: %s", model.Template)
	}
	if err != nil {
		return nil, &RenderError{Template: model.Template, Name: model.Name, Err: err}
	}

	return []byte(my.sb.String()), nil
}

// writeLine 写入一行文本(自动添加换行符)
// 支持可变参数,避免字符串相加操作,提高性能
func (my *SourceRenderer) writeLine(parts ...string) {
	my.write(parts...)
	my.write("\n")
}

// write 直接写入文本
func (my *SourceRenderer) write(parts ...string) {
	for _, part := range parts {
		my.sb.WriteString(part)
	}
}

// renderHeader 渲染文件头和包声明
func (my *SourceRenderer) renderHeader(model *internal.Model) {
	my.writeLine(HEADER_LINE)
	my.writeLine()
	my.writeLine("package ", model.Package)
	my.writeLine()

	// 模型携带的导入加上按需引入的标准库,统一去重排序保证输出稳定
	imports := append([]string(nil), model.Imports...)
	if model.Template == internal.TemplateType && my.cfg.Generate.Stringer {
		imports = append(imports, "fmt")
	}
	if model.Template == internal.TemplateType && my.cfg.Generate.Equal {
		imports = append(imports, "reflect")
	}
	imports = slice.Unique(imports)
	sort.Strings(imports)
	if len(imports) > 0 {
		my.writeLine("import (")
		for _, pkg := range imports {
			my.writeLine("\t\"", pkg, "\"")
		}
		my.writeLine(")")
		my.writeLine()
	}
}

// renderComment 渲染类型前的文档注释
func (my *SourceRenderer) renderComment(name, desc string) {
	if desc == "" {
		return
	}
	for _, line := range strings.Split(desc, "\n") {
		my.writeLine("// ", line)
	}
}

// renderType 渲染对象和输入类型:结构体+接口标记+访问器+可选String/Equal
func (my *SourceRenderer) renderType(model *internal.Model) error {
	my.renderComment(model.Name, model.Description)
	my.writeLine("type ", model.Name, " struct {")
	for _, field := range model.Fields {
		my.writeField(field)
	}
	my.writeLine("}")

	// 接口标记方法,配合Interface模板生成的标记接口
	for _, parent := range model.Implements {
		my.writeLine()
		my.writeLine("func (my *", model.Name, ") Is", parent, "() {}")
	}

	// 无参字段的访问器,满足接口模板声明的签名
	for _, field := range model.Fields {
		if len(field.Arguments) > 0 {
			continue
		}
		my.writeLine()
		my.writeLine("func (my *", model.Name, ") Get", field.GoName, "() ", field.GoType, " {")
		my.writeLine("\treturn my.", field.GoName)
		my.writeLine("}")
	}

	if my.cfg.Generate.Stringer {
		my.writeLine()
		my.writeLine("// String 返回可读表示")
		my.writeLine("func (my *", model.Name, ") String() string {")
		my.writeLine("\treturn fmt.Sprintf(\"", model.Name, "%+v\", *my)")
		my.writeLine("}")
	}

	if my.cfg.Generate.Equal {
		my.writeLine()
		my.writeLine("// Equal 深度比较两个实例")
		my.writeLine("func (my *", model.Name, ") Equal(other *", model.Name, ") bool {")
		my.writeLine("\treturn reflect.DeepEqual(my, other)")
		my.writeLine("}")
	}

	return nil
}

// writeField 渲染结构体的一个字段,带json标签和可选校验标签
func (my *SourceRenderer) writeField(field *internal.Field) {
	tag := "`json:\"" + field.Name + lo.Ternary(field.IsRequired, "", ",omitempty") + "\""
	if field.Tag != "" {
		tag += " " + field.Tag
	}
	tag += "`"
	my.writeLine("\t", field.GoName, " ", field.GoType, " ", tag)
}

// renderInterface 渲染接口类型:标记方法+无参字段的访问器签名
func (my *SourceRenderer) renderInterface(model *internal.Model) error {
	my.renderComment(model.Name, model.Description)
	my.writeLine("type ", model.Name, " interface {")
	my.writeLine("\tIs", model.Name, "()")
	for _, field := range model.Fields {
		if len(field.Arguments) > 0 {
			continue
		}
		my.writeLine("\tGet", field.GoName, "() ", field.GoType)
	}
	my.writeLine("}")
	return nil
}

// renderEnum 渲染枚举类型:字符串类型+有序常量
func (my *SourceRenderer) renderEnum(model *internal.Model) error {
	my.renderComment(model.Name, model.Description)
	my.writeLine("type ", model.Name, " string")
	my.writeLine()
	my.writeLine("// ", model.Name, " 的全部取值,顺序与schema声明一致")
	my.writeLine("const (")
	for _, value := range model.EnumValues {
		my.writeLine("\t", value.GoName, " ", model.Name, " = \"", value.Name, "\"")
	}
	my.writeLine(")")

	if my.cfg.Generate.Stringer {
		my.writeLine()
		my.writeLine("// String 返回枚举原始值")
		my.writeLine("func (my ", model.Name, ") String() string {")
		my.writeLine("\treturn string(my)")
		my.writeLine("}")
	}

	return nil
}

// renderUnion 渲染联合类型:标记接口+本包成员的标记实现
func (my *SourceRenderer) renderUnion(model *internal.Model) error {
	my.renderComment(model.Name, model.Description)
	my.writeLine("type ", model.Name, " interface {")
	my.writeLine("\tIs", model.Name, "()")
	my.writeLine("}")

	for _, member := range model.MemberTypes {
		// 映射到包外类型(如time.Time)或标量的成员无法挂方法,跳过标记实现
		if !isLocalTypeName(member) {
			continue
		}
		my.writeLine()
		my.writeLine("func (my *", member, ") Is", model.Name, "() {}")
	}

	return nil
}

// renderOperation 渲染操作模型
// 根字段模型产出单方法接口;根对象模型产出请求结构体(relay根对象兼容规则)
func (my *SourceRenderer) renderOperation(model *internal.Model) error {
	if model.Operation == nil {
		return fmt.Errorf("操作模型缺少元数据: %s", model.Name)
	}

	if model.Operation.Field == "" {
		my.writeLine("// ", model.Name, " 根对象,兼容需要根请求对象的客户端工具")
		my.writeLine("type ", model.Name, " struct {")
		for _, field := range model.Fields {
			my.writeField(field)
		}
		my.writeLine("}")
		return nil
	}

	field := model.Fields[0]
	my.writeLine("// ", model.Name, " ", model.Operation.Root, "根字段", model.Operation.Field, "的操作契约")
	my.writeLine("type ", model.Name, " interface {")
	my.write("\t", field.GoName, "(")
	my.writeParams(field.Arguments)
	my.writeLine(") (", field.GoType, ", error)")
	my.writeLine("}")
	return nil
}

// renderResolver 渲染聚合resolver:每个类型一个访问器接口,最后聚合嵌入
func (my *SourceRenderer) renderResolver(model *internal.Model) error {
	for _, entry := range model.Resolvers {
		my.writeLine("// ", entry.Name, "Resolver ", entry.Name, " 类型的字段访问器")
		my.writeLine("type ", entry.Name, "Resolver interface {")
		for _, field := range entry.Fields {
			my.write("\t", field.GoName, "(")
			my.writeParams(field.Arguments)
			my.writeLine(") ", field.GoType)
		}
		my.writeLine("}")
		my.writeLine()
	}

	my.writeLine("// ", model.Name, " 聚合全部对象与接口类型的字段访问器")
	my.writeLine("type ", model.Name, " interface {")
	for _, entry := range model.Resolvers {
		my.writeLine("\t", entry.Name, "Resolver")
	}
	my.writeLine("}")
	return nil
}

// writeParams 渲染参数列表
func (my *SourceRenderer) writeParams(params []*internal.Field) {
	for i, param := range params {
		if i > 0 {
			my.write(", ")
		}
		my.write(param.GoName, " ", param.GoType)
	}
}

// isLocalTypeName 判断是否本包内可挂方法的类型名
func isLocalTypeName(name string) bool {
	if name == "" || strings.Contains(name, ".") {
		return false
	}
	first := name[0]
	return first >= 'A' && first <= 'Z'
}
