package internal

// Template 表示渲染模板标识,渲染器按此选择输出形态
type Template string

// 模板常量,与定义分类一一对应
const (
	TemplateType      Template = "type"
	TemplateInterface Template = "interface"
	TemplateEnum      Template = "enum"
	TemplateUnion     Template = "union"
	TemplateOperation Template = "operation"
	TemplateResolver  Template = "resolver"
)

// Config 表示一次生成任务的完整配置
type Config struct {
	// 运行模式,dev模式下额外转储模型到models.json
	Mode string `mapstructure:"mode"`

	// schema文件路径列表,按声明顺序依次处理
	Schemas []string `mapstructure:"schemas"`

	// 输出配置
	Output OutputConfig `mapstructure:"output"`

	// 自定义类型映射(GraphQL类型名 -> 目标类型名),优先级最高
	Mapping map[string]string `mapstructure:"mapping"`

	// 生成内容开关
	Generate GenerateConfig `mapstructure:"generate"`
}

// OutputConfig 表示输出相关配置
type OutputConfig struct {
	// 输出目录
	Dir string `mapstructure:"dir"`

	// 生成代码的包名
	Package string `mapstructure:"package"`
}

// GenerateConfig 控制生成内容的开关
type GenerateConfig struct {
	// 是否生成操作接口,关闭后根操作类型不产出任何文件
	Apis bool `mapstructure:"apis"`

	// 是否生成String方法
	Stringer bool `mapstructure:"stringer"`

	// 是否生成Equal方法
	Equal bool `mapstructure:"equal"`

	// 非空字段的校验标签,空串表示不生成
	ValidationTag string `mapstructure:"validation-tag"`
}

// Model 表示单个定义的规范化生成模型
// 每个定义构建一次,交给渲染器后即丢弃,不跨定义复用
type Model struct {
	Template    Template        `json:"template"`
	Name        string          `json:"name"`                  // 目标类型名
	Package     string          `json:"package"`               // 目标包名
	Description string          `json:"description,omitempty"` // 描述信息
	Imports     []string        `json:"imports,omitempty"`     // 包限定映射引入的导入路径,去重且有序
	Implements  []string        `json:"implements,omitempty"`  // Type专有:实现的接口名
	Fields      []*Field        `json:"fields,omitempty"`      // 有序字段列表
	EnumValues  []*EnumValue    `json:"enumValues,omitempty"`  // Enum专有:有序常量列表
	MemberTypes []string        `json:"memberTypes,omitempty"` // Union专有:成员类型名
	Operation   *Operation      `json:"operation,omitempty"`   // Operation专有元数据
	Resolvers   []*ResolverType `json:"resolvers,omitempty"`   // Resolver专有:聚合条目
}

// Field 表示模型的一个字段
type Field struct {
	Name           string   `json:"name"`                // GraphQL字段名
	GoName         string   `json:"goName"`              // Go导出名
	Type           string   `json:"type"`                // 解析后的目标基础类型名
	GoType         string   `json:"goType"`              // 完整Go类型(含切片和指针)
	Import         string   `json:"import,omitempty"`    // 包限定映射引入的导入路径
	IsList         bool     `json:"isList"`              // 是否列表
	IsRequired     bool     `json:"isRequired"`          // 是否非空
	IsItemRequired bool     `json:"isItemRequired"`      // 列表元素是否非空
	Tag            string   `json:"tag,omitempty"`       // 校验标签
	Description    string   `json:"description,omitempty"`
	Arguments      []*Field `json:"arguments,omitempty"` // 字段参数列表
}

// EnumValue 表示枚举的一个常量
type EnumValue struct {
	Name        string `json:"name"`   // GraphQL原始值,逐字保留
	GoName      string `json:"goName"` // Go常量名
	Description string `json:"description,omitempty"`
}

// Operation 表示操作模型的专有元数据
type Operation struct {
	Root  string `json:"root"`            // 所属根类型:Query/Mutation/Subscription
	Field string `json:"field,omitempty"` // 根字段名,根对象模型为空
}

// ResolverType 表示resolver聚合中的一个类型条目
type ResolverType struct {
	Name   string   `json:"name"`
	Fields []*Field `json:"fields"`
}
