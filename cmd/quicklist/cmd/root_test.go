package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/quicklist/cmd/quicklist/cmd"
)

func TestRoot_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"serve"}, want: "serve"},
		{args: []string{"migrate"}, want: "migrate"},
		{args: []string{"version"}, want: "version"},
		{args: []string{"token", "status"}, want: "status"},
		{args: []string{"token", "refresh"}, want: "refresh"},
	}

	root := cmd.Root()
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			c, _, err := root.Find(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.RunE)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
