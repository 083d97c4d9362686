package config

import (
	"github.com/faceswap-tools/faceswap/internal/config"
	"github.com/faceswap-tools/faceswap/internal/ui"
)

type Deps struct {
	Get     func(string) (string, bool)
	IsSet   func(string) bool
	GetAll  func() (map[string]string, error)
	Set     func(string, string) error
	Unset   func(string) error
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	provider, err := config.NewProvider()
	if err != nil {
		return failingDeps(err)
	}
	return DepsFor(provider)
}

// DepsFor binds the actions to an explicit rc file provider.
func DepsFor(p *config.Provider) Deps {
	return Deps{
		Get:     p.Get,
		IsSet:   p.IsSet,
		GetAll:  p.GetAll,
		Set:     p.Set,
		Unset:   p.Unset,
		Printf:  ui.Printf,
		Println: ui.Println,
	}
}

func failingDeps(err error) Deps {
	return Deps{
		Get:     func(string) (string, bool) { return "", false },
		IsSet:   func(string) bool { return false },
		GetAll:  func() (map[string]string, error) { return nil, err },
		Set:     func(string, string) error { return err },
		Unset:   func(string) error { return err },
		Printf:  ui.Printf,
		Println: ui.Println,
	}
}
