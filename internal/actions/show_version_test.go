package actions

import (
	"fmt"
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShowVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "1.2.3", want: "faceswap version 1.2.3"},
		{version: "dev", want: "faceswap version dev"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			var printed string
			deps := actionDependencies{
				Printf: func(format string, a ...any) (int, error) {
					printed = fmt.Sprintf(format, a...)
					return len(printed), nil
				},
				Version: func() string { return tt.version },
			}

			require.NoError(t, showVersion(nil, nil, deps))
			require.Equal(t, fmt.Sprintf("%s (%s/%s)\n", tt.want, goruntime.GOOS, goruntime.GOARCH), printed)
		})
	}
}
