package show_rules

import (
	"bytes"
	"testing"

	"github.com/mediaroulette/resmanifest/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestShowRules(t *testing.T) {
	buf := &bytes.Buffer{}
	Cmd.SetOut(buf)
	Cmd.SetArgs([]string{})
	require.NoError(t, Cmd.Execute())

	tbl := rules.Table{}
	require.NoError(t, yaml.UnmarshalStrict(buf.Bytes(), &tbl))
	assert.Equal(t, rules.Current(), tbl)
}
