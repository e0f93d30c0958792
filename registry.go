package codegen

import "github.com/duke-git/lancet/v2/maputil"

// Registry 保存单次生成任务的类型映射配置
// 写入只有SetIfAbsent和SetOverride两种途径,不支持删除;查询确定且无副作用
type Registry struct {
	mapping map[string]string
}

// NewRegistry 创建类型映射注册表
// overrides为用户显式配置的自定义映射,先于任何自动注册写入,因此永远占优
func NewRegistry(overrides map[string]string) *Registry {
	my := &Registry{mapping: make(map[string]string, len(overrides))}
	for name, target := range overrides {
		my.SetOverride(name, target)
	}
	return my
}

// Resolve 查询映射,返回目标类型名和是否命中
func (my *Registry) Resolve(name string) (string, bool) {
	target, ok := my.mapping[name]
	return target, ok
}

// SetIfAbsent 仅在条目不存在时写入,已有条目永不覆盖
// 标量自动注册只允许走这个入口,保证用户配置不被默认值顶掉
func (my *Registry) SetIfAbsent(name, target string) {
	maputil.GetOrSet(my.mapping, name, target)
}

// SetOverride 写入或替换条目,仅供用户显式配置使用
func (my *Registry) SetOverride(name, target string) {
	my.mapping[name] = target
}

// Len 返回条目数量
func (my *Registry) Len() int {
	return len(my.mapping)
}
