package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepCwd restores the test process working directory afterwards; cd mutates
// it for the whole process.
func keepCwd(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestPwd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	out, errOut := runBuiltin(t, "pwd", nil)
	assert.Equal(t, wd+"\n", out)
	assert.Empty(t, errOut)
}

func TestCd_ChangesDirectory(t *testing.T) {
	keepCwd(t)

	target, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	out, errOut := runBuiltin(t, "cd", []string{target})
	assert.Empty(t, out)
	assert.Empty(t, errOut)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, target, wd)
}

func TestCd_TildeGoesHome(t *testing.T) {
	keepCwd(t)

	home, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)

	_, errOut := runBuiltin(t, "cd", []string{"~"})
	assert.Empty(t, errOut)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, home, wd)
}

func TestCd_MissingArgument(t *testing.T) {
	out, errOut := runBuiltin(t, "cd", nil)
	assert.Empty(t, out)
	assert.Equal(t, "cd: missing argument\n", errOut)
}

func TestCd_NoSuchDirectory(t *testing.T) {
	keepCwd(t)

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	out, errOut := runBuiltin(t, "cd", []string{missing})
	assert.Empty(t, out)
	assert.Equal(t, "cd: "+missing+": No such file or directory\n", errOut)
}

func TestCd_ErrorKeepsDirectory(t *testing.T) {
	keepCwd(t)

	before, err := os.Getwd()
	require.NoError(t, err)

	_, errOut := runBuiltin(t, "cd", []string{filepath.Join(t.TempDir(), "missing")})
	require.True(t, strings.HasPrefix(errOut, "cd: "))

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
