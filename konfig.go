package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// Konfig 配置管理器,包装koanf.Koanf
// 加载顺序: 内置默认 -> .env环境文件 -> 配置文件 -> 环境变量
type Konfig struct {
	k       *koanf.Koanf
	options *konfigOptions
}

// KonfigOption 定义配置选项函数类型
type KonfigOption func(*konfigOptions)

// konfigOptions 保存koanf的配置选项
type konfigOptions struct {
	configType string
	envPrefix  string
	filePath   string
	delim      string
}

// WithFilePath 设置配置文件路径,同时按扩展名解析文件类型
func WithFilePath(filePath string) KonfigOption {
	return func(options *konfigOptions) {
		if filePath != "" {
			options.filePath = filePath
			ext := filepath.Ext(filePath)
			options.configType = strings.TrimPrefix(ext, ".")
		}
	}
}

// WithEnvPrefix 设置环境变量前缀
func WithEnvPrefix(prefix string) KonfigOption {
	return func(options *konfigOptions) {
		options.envPrefix = prefix
	}
}

// NewKonfig 创建新的配置管理器
func NewKonfig(opts ...KonfigOption) (*Konfig, error) {
	options := &konfigOptions{
		configType: "yaml", // 默认使用yaml
		envPrefix:  "APP",
		delim:      ".",
	}
	for _, opt := range opts {
		opt(options)
	}

	k := koanf.New(options.delim)

	// 基础默认配置
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"mode": "dev",
	}, options.delim), nil); err != nil {
		return nil, fmt.Errorf("加载默认配置失败: %w", err)
	}

	// 加载环境变量文件(可选)
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	// 如果提供了配置文件路径,加载配置
	if options.filePath != "" {
		switch options.configType {
		case "yaml", "yml":
		default:
			return nil, fmt.Errorf("不支持的配置文件类型: %s", options.configType)
		}
		if err := k.Load(file.Provider(options.filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("加载配置文件失败: %w", err)
		}
		log.Info().Str("file", options.filePath).Msg("配置文件已加载")
	}

	// 环境变量优先级最高,前缀剥离后映射为小写点分路径
	envProvider := env.Provider(options.envPrefix+"_", options.delim, func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, options.envPrefix+"_")), "_", options.delim, -1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("加载环境变量失败: %w", err)
	}

	return &Konfig{k: k, options: options}, nil
}

// loadEnvFile 加载环境变量文件(可选)
func loadEnvFile() error {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// .env 文件不存在,跳过加载
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("加载.env文件失败: %w", err)
	}
	return nil
}

// Get 获取配置项
func (my *Konfig) Get(path string) interface{} {
	return my.k.Get(path)
}

// Set 设置配置项
func (my *Konfig) Set(path string, value interface{}) {
	my.k.Set(path, value)
}

// IsSet 判断配置项是否存在
func (my *Konfig) IsSet(path string) bool {
	return my.k.Exists(path)
}

// GetString 获取字符串配置
func (my *Konfig) GetString(path string) string {
	return my.k.String(path)
}

// GetBool 获取布尔配置
func (my *Konfig) GetBool(path string) bool {
	return my.k.Bool(path)
}

// GetStringSlice 获取字符串切片配置
func (my *Konfig) GetStringSlice(path string) []string {
	return my.k.Strings(path)
}

// SetDefault 仅在配置项不存在时设置,已有配置保持不变
func (my *Konfig) SetDefault(path string, value interface{}) {
	if !my.IsSet(path) {
		my.Set(path, value)
	}
}

// Unmarshal 将配置解析到结构体
func (my *Konfig) Unmarshal(val interface{}) error {
	return my.UnmarshalKey("", val)
}

// UnmarshalKey 将配置键解析到结构体
func (my *Konfig) UnmarshalKey(path string, val interface{}) error {
	err := my.k.UnmarshalWithConf(path, val, koanf.UnmarshalConf{
		Tag: "mapstructure",
	})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("配置解析失败")
	}
	return err
}
