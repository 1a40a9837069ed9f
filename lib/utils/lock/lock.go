// Package lock сериализует конкурирующие мутации одной сущности внутри
// процесса. Ключ собирается из типа и идентификатора сущности
// ("job:<id>", "interview:<id>", "interviewer:<id>").
package lock

import (
	"context"
	"sync"
	"time"
)

var lockMap sync.Map

const retryInterval = 50 * time.Millisecond

// WithDelay выполняет safeCode под блокировкой ключа key. Если блокировку
// не удалось получить за wait, возвращает success=false без выполнения.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			defer lockMap.Delete(key)
			return true, safeCode()
		}
		select {
		case <-timeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		default:
			time.Sleep(retryInterval)
		}
	}
}
