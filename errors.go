package codegen

import (
	"fmt"

	"github.com/ichaly/ideabase/codegen/internal"
)

// ParseError SDL语法错误,立即终止整个任务
type ParseError struct {
	Schema string // 出错的schema文件路径
	Err    error
}

func (my *ParseError) Error() string {
	return fmt.Sprintf("解析schema文件失败: %s: %v", my.Schema, my.Err)
}

func (my *ParseError) Unwrap() error { return my.Err }

// UnresolvedTypeError 字段引用的命名类型在注册表和文档内定义中均不存在
// 此错误终止整个任务,而不是仅跳过当前schema文件
type UnresolvedTypeError struct {
	TypeName string // 无法解析的类型名
}

func (my *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("无法解析类型引用: %s", my.TypeName)
}

// RenderError 渲染失败,携带模板和模型上下文
type RenderError struct {
	Template internal.Template
	Name     string
	Err      error
}

func (my *RenderError) Error() string {
	return fmt.Sprintf("渲染失败: 模板=%s 模型=%s: %v", my.Template, my.Name, my.Err)
}

func (my *RenderError) Unwrap() error { return my.Err }

// WriteError 输出文件写入失败
type WriteError struct {
	File string
	Err  error
}

func (my *WriteError) Error() string {
	return fmt.Sprintf("写入文件失败: %s: %v", my.File, my.Err)
}

func (my *WriteError) Unwrap() error { return my.Err }
