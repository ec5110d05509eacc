package ecs

import (
	"errors"

	"github.com/rotisserie/eris"
)

// 使用错误和容量错误
// 管理器通过 panic 抛出这些错误：出现即说明调用方违反了约束，重试没有意义。
var (
	ErrEntityNotAlive         = errors.New("entity is not alive")
	ErrTooManyEntities        = errors.New("too many living entities")
	ErrComponentRegistered    = errors.New("component type already registered")
	ErrComponentNotRegistered = errors.New("component type not registered")
	ErrTooManyComponents      = errors.New("too many component types")
	ErrComponentExists        = errors.New("entity already has component")
	ErrComponentMissing       = errors.New("entity does not have component")
	ErrSystemRegistered       = errors.New("system already registered")
	ErrSystemNotRegistered    = errors.New("system not registered")
)

// fatalf 用格式化的上下文包装 err 并 panic
func fatalf(err error, format string, args ...any) {
	panic(eris.Wrapf(err, format, args...))
}
