// Package buildinfo описывает версию сборки сервиса поиска экспонатов.
// Значения заполняются при сборке через ldflags и попадают в стартовый лог.
package buildinfo

import "go.uber.org/zap"

// Info содержит информацию о сборке сервиса
type Info struct {
	Version string
	Date    string
	Commit  string
}

// NewInfo создает информацию о сборке, подставляя "N/A" вместо пустых значений
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

// Fields возвращает поля сборки для структурированного лога запуска
func (info *Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("build_version", info.Version),
		zap.String("build_date", info.Date),
		zap.String("build_commit", info.Commit),
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
