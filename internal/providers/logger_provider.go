package providers

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"aurad/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

func (t TypeEnum) String() string {
	switch t {
	case TypeGet:
		return "get"
	case TypePost:
		return "post"
	default:
		return "app"
	}
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	app    zerolog.Logger
	access zerolog.Logger
	files  []*os.File
}

// NewLogProvider opens app.log and access.log under Logger.Dir. App-typed
// messages go to app.log, request-typed ones to access.log. With the debug
// flag set everything is mirrored to stderr as well.
func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	mode := os.FileMode(conf.Logger.Mode)
	appFile, err := os.OpenFile(filepath.Join(conf.Logger.Dir, "app.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
	if err != nil {
		return nil, err
	}
	accessFile, err := os.OpenFile(filepath.Join(conf.Logger.Dir, "access.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	var appWriter, accessWriter zerolog.LevelWriter
	if conf.Debug {
		console := zerolog.ConsoleWriter{Out: os.Stderr}
		appWriter = zerolog.MultiLevelWriter(appFile, console)
		accessWriter = zerolog.MultiLevelWriter(accessFile, console)
	} else {
		appWriter = zerolog.MultiLevelWriter(appFile)
		accessWriter = zerolog.MultiLevelWriter(accessFile)
	}

	return &LogProvider{
		app:    zerolog.New(appWriter).Level(level).With().Timestamp().Logger(),
		access: zerolog.New(accessWriter).Level(level).With().Timestamp().Logger(),
		files:  []*os.File{appFile, accessFile},
	}, nil
}

func (l *LogProvider) loggerFor(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &l.app
	}
	return &l.access
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Debug().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Info().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Warn().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Error().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.loggerFor(t).Fatal().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}
