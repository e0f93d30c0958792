package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// 防抖时间,短时间内的连续写入合并为一次重新生成
const watchDebounce = 200 * time.Millisecond

// Watch 监听schema文件变更并自动重新生成,阻塞直到ctx取消
// 监听目录而不是文件本身,部分编辑器以重命名方式保存文件
func (my *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建文件监视器失败: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(my.cfg.Schemas))
	dirs := make(map[string]bool)
	for _, schema := range my.cfg.Schemas {
		watched[filepath.Clean(schema)] = true
		dir := filepath.Dir(schema)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("监听目录失败: %s: %w", dir, err)
		}
	}

	log.Info().Strs("schemas", my.cfg.Schemas).Msg("进入监听模式")

	// 退出时结束尚未触发的防抖定时器
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	trigger := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("退出监听模式")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("文件监视器错误")
		case <-trigger:
			log.Info().Msg("检测到schema变更,重新生成")
			if err := my.Generate(); err != nil {
				// 监听模式下生成失败不退出,等待下一次变更
				log.Error().Err(err).Msg("重新生成失败")
			}
		}
	}
}
