package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = Logger{}

type entry struct {
	level   zapcore.Level
	message string
}

// Logger writes to the file named by TABEDIT_LOG and does nothing when it is unset.
type Logger struct {
	isEnabled bool
	file      *os.File
	stream    chan entry
	done      chan struct{}
	logger    *zap.Logger
}

func (this *Logger) Start() error {
	logfilename, exists := os.LookupEnv("TABEDIT_LOG")
	if !exists { this.isEnabled = false; return nil }

	file, err := os.OpenFile(logfilename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil { return fmt.Errorf("error opening log file: %w", err) }
	this.file = file

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(file), zapcore.DebugLevel)
	this.logger = zap.New(core)

	this.stream = make(chan entry, 64)
	this.done = make(chan struct{})
	this.isEnabled = true

	go func() {
		defer close(this.done)
		for e := range this.stream {
			this.log(e)
		}
	}()

	return nil
}

func (this *Logger) log(e entry) {
	if ce := this.logger.Check(e.level, e.message); ce != nil { ce.Write() }
}

func (this *Logger) Info(args ...string) {
	if !this.isEnabled { return }
	this.stream <- entry{zapcore.InfoLevel, strings.Join(args, " ")}
}

func (this *Logger) Error(args ...string) {
	if !this.isEnabled { return }
	this.stream <- entry{zapcore.ErrorLevel, strings.Join(args, " ")}
}

// Stop drains pending messages and closes the log file.
func (this *Logger) Stop() {
	if !this.isEnabled { return }
	this.isEnabled = false
	close(this.stream)
	<-this.done
	_ = this.logger.Sync()
	_ = this.file.Close()
}
