// Package version хранит сведения о сборке estore.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	unsetVersion = "dev"
	unsetValue   = "unknown"
	develVersion = "(devel)"
)

// Значения подставляются через -ldflags "-X .../internal/version.version=...".
var (
	version = unsetVersion
	commit  = unsetValue
	date    = unsetValue
)

var readBuildInfo = debug.ReadBuildInfo

// BuildInfo — сведения о сборке бинарника.
type BuildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Get возвращает сведения о сборке. Не заданные через -ldflags поля берутся из
// метаданных модуля: версия при go install ...@vX, коммит и время из vcs.*.
func Get() BuildInfo {
	info := BuildInfo{Version: version, Commit: commit, Date: date, GoVersion: runtime.Version()}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == unsetVersion && bi.Main.Version != "" && bi.Main.Version != develVersion {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unsetValue {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unsetValue {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String форматирует сведения о сборке одной строкой.
func (b BuildInfo) String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s go=%s", b.Version, b.Commit, b.Date, b.GoVersion)
}

// String возвращает строку сведений о текущей сборке.
func String() string {
	return Get().String()
}
