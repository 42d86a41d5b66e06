package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options describe where log output goes.
type Options struct {
	// Console receives every entry. Defaults to os.Stderr.
	Console io.Writer
	// File is appended to as well when set. It is rotated once it
	// grows past MaxSizeMB.
	File      string
	MaxSizeMB int
	Verbose   bool
}

// New returns a logger writing timestamped, level tagged lines to the
// console and the log file. Close the returned io.Closer on exit.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	log.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if opts.File == "" {
		log.SetOutput(console)
		return log, nopCloser{}, nil
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, errors.Annotatef(err, "creating log directory %s", dir)
		}
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize, // megabytes
		MaxBackups: 2,
	}
	log.SetOutput(io.MultiWriter(console, file))
	return log, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
