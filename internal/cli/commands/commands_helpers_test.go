package commands

import (
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательский каталог конфигурации на время теста,
// чтобы файл токена создавался в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}
