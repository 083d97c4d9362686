package logs

import (
	"io"
	"os"
	"time"

	"github.com/faceswap-tools/faceswap/internal/paths"
	"github.com/faceswap-tools/faceswap/internal/ui"
)

type Deps struct {
	LogFilePath  func() string
	Printf       func(string, ...any) (int, error)
	Println      func(...any) (int, error)
	ReadFile     func(string) ([]byte, error)
	WriteFile    func(string, []byte, os.FileMode) error
	Stat         func(string) (os.FileInfo, error)
	Open         func(string) (*os.File, error)
	Out          io.Writer
	PollInterval time.Duration
}

func DefaultDeps() Deps {
	return Deps{
		LogFilePath:  paths.LogFilePath,
		Printf:       ui.Printf,
		Println:      ui.Println,
		ReadFile:     os.ReadFile,
		WriteFile:    os.WriteFile,
		Stat:         os.Stat,
		Open:         os.Open,
		Out:          os.Stdout,
		PollInterval: 500 * time.Millisecond,
	}
}
