package usecase

import "sync"

// AccountLock serializes mutating wallet operations against the same account
// number within this process. It gives no guarantee across multiple service
// instances sharing one store.
//
// Mutexes are created lazily per key and never removed; the map grows with
// the number of distinct accounts seen, not with request volume.
type AccountLock struct {
	locks sync.Map
}

// NewAccountLock creates an empty lock table.
func NewAccountLock() *AccountLock {
	return &AccountLock{}
}

func (l *AccountLock) mutex(key string) *sync.Mutex {
	m, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// Lock blocks until exclusive ownership of key is granted and returns the
// release func. Callers must defer the release so every exit path, including
// business rejections and store failures, unlocks.
func (l *AccountLock) Lock(key string) func() {
	m := l.mutex(key)
	m.Lock()

	return m.Unlock
}
