package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog/log"
)

// prepareOutputDir 准备输出目录,整个任务只执行一次
// 非破坏策略:目录不存在则创建,已存在时只覆盖同名文件,不清理无关文件
func prepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %s: %w", dir, err)
	}
	return nil
}

// writeFile 写出单个生成文件
func writeFile(dir, name string, content []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &WriteError{File: path, Err: err}
	}
	log.Debug().Str("file", path).Msg("生成文件已写出")
	return nil
}

// fileName 由模型名推导生成文件名
func fileName(name string) string {
	return strcase.ToSnake(name) + ".go"
}
