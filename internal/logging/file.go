package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/installation/storage"
)

var defaultMaxEntries = 1000

// maxLogFiles is the number of per-invocation log files kept around
const maxLogFiles = 10

type safeBool struct {
	mu sync.Mutex
	v  bool
}

func (s *safeBool) value() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

func (s *safeBool) setValue(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
}

type entry struct {
	ctx     *MessageContext
	message string
	args    []interface{}
}

type fileHandler struct {
	formatter Formatter
	file      *os.File
	mu        sync.Mutex
	verbose   safeBool
	wg        *sync.WaitGroup
	queue     chan entry
	quit      chan struct{}
}

func newFileHandler() *fileHandler {
	handler := &fileHandler{
		formatter: DefaultFormatter,
		wg:        &sync.WaitGroup{},
		queue:     make(chan entry, defaultMaxEntries),
		quit:      make(chan struct{}),
	}
	handler.wg.Add(1)
	go func() {
		defer handler.wg.Done()
		handler.start()
	}()
	return handler
}

func (l *fileHandler) start() {
	defer handlePanics(recover())
	for {
		select {
		case entry := <-l.queue:
			l.emit(entry.ctx, entry.message, entry.args...)
		case <-l.quit:
			close(l.queue)
			for entry := range l.queue {
				l.emit(entry.ctx, entry.message, entry.args...)
			}
			return
		}
	}
}

func (l *fileHandler) SetFormatter(f Formatter) {
	l.formatter = f
}

func (l *fileHandler) SetVerbose(v bool) {
	l.verbose.setValue(v)
}

func (l *fileHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	l.queue <- entry{ctx, message, args}
	return nil
}

func (l *fileHandler) emit(ctx *MessageContext, message string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message = l.formatter.Format(ctx, message, args...)
	if l.verbose.value() {
		fmt.Fprintln(os.Stderr, message)
	}

	if l.file == nil {
		var err error
		l.file, err = openLogFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			return
		}
		rotateLogFiles()
	}

	if _, err := l.file.WriteString(message + "\n"); err != nil {
		fmt.Fprintf(os.Stderr, "Could not write log entry: %v\n", err)
	}
}

func (l *fileHandler) Close() {
	close(l.quit)
	l.wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}

// FileName returns the name of the log file for the current invocation
func FileName() string {
	return fmt.Sprintf("%s-%d.log", constants.CommandName, os.Getpid())
}

// FilePath returns the full path of the log file for the current invocation
func FilePath() string {
	return filepath.Join(storage.LogsPath(), FileName())
}

// ReadTail returns the trailing portion of the current log file, used to
// attach context to error reports.
func ReadTail() string {
	const tailSize = 8192

	f, err := os.Open(FilePath())
	if err != nil {
		return ""
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ""
	}

	offset := int64(0)
	if info.Size() > tailSize {
		offset = info.Size() - tailSize
	}

	buf := make([]byte, info.Size()-offset)
	if _, err := f.ReadAt(buf, offset); err != nil {
		return ""
	}
	return string(buf)
}

func openLogFile() (*os.File, error) {
	dir := storage.LogsPath()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(FilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// rotateLogFiles drops all but the newest log files so the log dir doesn't grow unbounded
func rotateLogFiles() {
	dir := storage.LogsPath()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	logs := []os.DirEntry{}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), constants.CommandName+"-") && strings.HasSuffix(e.Name(), ".log") {
			logs = append(logs, e)
		}
	}
	if len(logs) <= maxLogFiles {
		return
	}

	sort.Slice(logs, func(i, j int) bool {
		ii, err1 := logs[i].Info()
		ji, err2 := logs[j].Info()
		if err1 != nil || err2 != nil {
			return false
		}
		return ii.ModTime().After(ji.ModTime())
	})

	for _, e := range logs[maxLogFiles:] {
		os.Remove(filepath.Join(dir, e.Name()))
	}
}
