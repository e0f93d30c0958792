package codegen

import (
	"github.com/iancoleman/strcase"

	jsoniter "github.com/json-iterator/go"
)

// 全局JSON处理实例，使用jsoniter替代标准库
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	strcase.ConfigureAcronym("ID", "Id")
}

// 内置标量名称
const (
	SCALAR_ID      = "ID"
	SCALAR_INT     = "Int"
	SCALAR_FLOAT   = "Float"
	SCALAR_STRING  = "String"
	SCALAR_BOOLEAN = "Boolean"
)

// 保留的根操作类型名称,大小写敏感精确匹配
const (
	ROOT_QUERY        = "Query"
	ROOT_MUTATION     = "Mutation"
	ROOT_SUBSCRIPTION = "Subscription"
)

// DEFAULT_SCALAR_TYPE 自定义标量未配置映射时的默认目标类型
const DEFAULT_SCALAR_TYPE = "string"

// 生成代码默认值
const (
	DEFAULT_PACKAGE        = "model"
	DEFAULT_VALIDATION_TAG = `validate:"required"`
)

// 根操作类型集合
var rootTypes = []string{ROOT_QUERY, ROOT_MUTATION, ROOT_SUBSCRIPTION}

// 内置标量到Go类型的固定映射
var scalarTypes = map[string]string{
	SCALAR_ID:      "string",
	SCALAR_INT:     "int",
	SCALAR_FLOAT:   "float64",
	SCALAR_STRING:  "string",
	SCALAR_BOOLEAN: "bool",
}
