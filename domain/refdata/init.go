package refdata

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Setting struct {
	Logger *logrus.Logger
	Path   string
}

var (
	globalSetting Setting

	currentLock sync.RWMutex
	current     = emptyLookups()
)

func Init(setting *Setting) {
	globalSetting = *setting
	Reload()
}

// Get returns the current lookups. The returned value is immutable; callers
// may hold it across an entire pipeline run.
func Get() *Lookups {
	currentLock.RLock()
	defer currentLock.RUnlock()
	return current
}

// Reload rebuilds the lookups from the configured path and swaps them in.
// In-flight pipeline runs keep the value they already hold.
func Reload() {
	lookups := loadLookups(&globalSetting)

	currentLock.Lock()
	current = lookups
	currentLock.Unlock()
}
