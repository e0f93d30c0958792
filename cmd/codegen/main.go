package main

import (
	"fmt"
	"os"

	"github.com/ichaly/ideabase/codegen"
	"github.com/spf13/cobra"
)

var (
	schemas    []string
	configFile string
	outputDir  string
	pkgName    string
	watch      bool
	noApis     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "codegen",
		Short: "GraphQL Schema代码生成工具",
		Long: `GraphQL Schema代码生成工具
读取GraphQL IDL文档,为每个类型生成Go数据模型,
为每个查询/变更/订阅根字段生成操作接口,并汇总生成聚合resolver接口`,
		RunE: run,
	}

	rootCmd.Flags().StringSliceVarP(&schemas, "schema", "s", []string{}, "schema文件路径(多个用逗号分隔)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "配置文件路径(yaml)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "输出目录")
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "", "生成代码的包名")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "监听schema变更并自动重新生成")
	rootCmd.Flags().BoolVar(&noApis, "no-apis", false, "不生成操作接口")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var opts []codegen.KonfigOption
	if configFile != "" {
		opts = append(opts, codegen.WithFilePath(configFile))
	}
	k, err := codegen.NewKonfig(opts...)
	if err != nil {
		return err
	}
	codegen.SetupLogger(k.GetString("mode"))

	// 命令行参数优先于配置文件
	if len(schemas) > 0 {
		k.Set("schemas", schemas)
	}
	if outputDir != "" {
		k.Set("output.dir", outputDir)
	}
	if pkgName != "" {
		k.Set("output.package", pkgName)
	}
	if noApis {
		k.Set("generate.apis", false)
	}

	gen, err := codegen.NewGenerator(k)
	if err != nil {
		return err
	}

	if err := gen.Generate(); err != nil {
		return err
	}

	if watch {
		return gen.Watch(cmd.Context())
	}

	return nil
}
