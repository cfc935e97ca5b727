package root_test

import (
	"testing"

	"paisaparse/cmd/root"
	"paisaparse/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "paisaparse", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "categorized transactions")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
}

func TestBuildEngine(t *testing.T) {
	originalCfg := root.Cfg
	defer func() { root.Cfg = originalCfg }()

	root.Cfg = &config.Config{}
	root.Cfg.CSV.Delimiter = ";"

	sms, imp, err := root.BuildEngine()
	require.NoError(t, err)
	assert.NotNil(t, sms)
	assert.NotNil(t, imp)
	assert.Equal(t, ';', imp.Delimiter)
}

func TestLogger(t *testing.T) {
	assert.NotNil(t, root.Logger())
}
