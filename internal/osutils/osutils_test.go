package osutils

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmdString(t *testing.T) {
	cmd := exec.Command("/usr/bin/uv", "pip", "install", "requests")
	assert.Equal(t, "/usr/bin/uv pip install requests", CmdString(cmd))
}
